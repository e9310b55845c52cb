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

// Package numeric converts dynamically typed numbers, as decoded from
// JSON or YAML or stored in feature properties, to float64.
package numeric

import (
	"encoding/json"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

func toFloat[T number](v T) float64 {
	return float64(v)
}

func sliceToFloats[T number](vs []T) []float64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = float64(v)
	}
	return fs
}

// Float returns the value of a number as a float64.
// It returns false if the value is not a number.
func Float(v any) (float64, bool) {
	switch vT := v.(type) {
	case float64:
		return vT, true
	case float32:
		return toFloat(vT), true
	case int:
		return toFloat(vT), true
	case int8:
		return toFloat(vT), true
	case int16:
		return toFloat(vT), true
	case int32:
		return toFloat(vT), true
	case int64:
		return toFloat(vT), true
	case uint:
		return toFloat(vT), true
	case uint8:
		return toFloat(vT), true
	case uint16:
		return toFloat(vT), true
	case uint32:
		return toFloat(vT), true
	case uint64:
		return toFloat(vT), true
	case json.Number:
		f, err := vT.Float64()
		return f, err == nil
	}
	return 0, false
}

// IsNumber returns true if the value is a number.
func IsNumber(v any) bool {
	_, ok := Float(v)
	return ok
}

// Floats returns the elements of an array of numbers as float64.
// It returns false if the value is not an array or if one of its element is not a number.
func Floats(v any) ([]float64, bool) {
	switch vT := v.(type) {
	case []float64:
		return append([]float64{}, vT...), true
	case []float32:
		return sliceToFloats(vT), true
	case []int:
		return sliceToFloats(vT), true
	case []int64:
		return sliceToFloats(vT), true
	case []any:
		fs := make([]float64, len(vT))
		for i, el := range vT {
			f, ok := Float(el)
			if !ok {
				return nil, false
			}
			fs[i] = f
		}
		return fs, true
	}
	return nil, false
}
