// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"iter"

	"github.com/gx-org/glstyle/base/ordered"
)

// Unknown is the index of a string which has not been registered as a category.
const Unknown = -1

// Categories maps strings to numbers so that strings can be compared in shaders.
// Indices are assigned in order of registration, starting at 0.
//
// Once frozen, the table is read-only and can be used concurrently.
type Categories struct {
	index  *ordered.Map[string, int]
	frozen bool
}

func newCategories() *Categories {
	return &Categories{index: ordered.NewMap[string, int]()}
}

func (c *Categories) register(s string) int {
	if c.frozen {
		return c.Index(s)
	}
	idx, _ := c.index.LoadOrStore(s, c.index.Size())
	return idx
}

// Index returns the index of a category or Unknown.
func (c *Categories) Index(s string) int {
	idx, ok := c.index.Load(s)
	if !ok {
		return Unknown
	}
	return idx
}

// Size returns the number of categories.
func (c *Categories) Size() int {
	return c.index.Size()
}

// All returns all the categories with their index.
func (c *Categories) All() iter.Seq2[string, int] {
	return c.index.Iter()
}
