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

package style

import (
	"maps"
	"sync"
)

// Variables stores the current values of style variables.
// Values can be updated after compilation: uniform providers read
// the store every time they are called.
// The zero value is an empty store.
type Variables struct {
	mu   sync.RWMutex
	vals map[string]any
}

// NewVariables returns a store initialized with a copy of vals.
func NewVariables(vals map[string]any) *Variables {
	v := &Variables{vals: make(map[string]any, len(vals))}
	maps.Copy(v.vals, vals)
	return v
}

// Set the value of a variable.
func (v *Variables) Set(name string, val any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.vals == nil {
		v.vals = make(map[string]any)
	}
	v.vals[name] = val
}

// Get returns the value of a variable.
func (v *Variables) Get(name string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.vals[name]
	return val, ok
}

// Snapshot returns a copy of all the values.
func (v *Variables) Snapshot() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return maps.Clone(v.vals)
}
