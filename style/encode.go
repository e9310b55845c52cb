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
	"github.com/gx-org/glstyle/base/numeric"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/color"
	"github.com/gx-org/glstyle/glsl"
)

// encoder converts values of a given type into the floats
// stored in an attribute or a uniform.
// Encoding never fails: invalid or missing values are encoded as zeros,
// or as an unknown category for strings.
type encoder struct {
	typ  ir.Type
	cats *registry.Categories
}

func (e encoder) size() int {
	return glsl.StorageSize(e.typ)
}

func (e encoder) encode(val any, ok bool) []float64 {
	switch e.typ.Kind {
	case irkind.Number:
		f, _ := numeric.Float(val)
		return []float64{f}
	case irkind.Boolean:
		if ok && truthy(val) {
			return []float64{1}
		}
		return []float64{0}
	case irkind.String:
		s, isString := val.(string)
		if !isString {
			return []float64{registry.Unknown}
		}
		return []float64{float64(e.cats.Index(s))}
	case irkind.Color:
		if !ok {
			return []float64{0, 0}
		}
		c, err := color.Parse(val)
		if err != nil {
			return []float64{0, 0}
		}
		return color.Pack(c).Slice()
	case irkind.NumberArray:
		vals := make([]float64, e.typ.Size)
		fs, _ := numeric.Floats(val)
		copy(vals, fs)
		return vals
	}
	return make([]float64, e.size())
}

func truthy(val any) bool {
	switch valT := val.(type) {
	case bool:
		return valT
	case string:
		return valT != ""
	case nil:
		return false
	}
	if f, ok := numeric.Float(val); ok {
		return f != 0
	}
	return true
}
