// Copyright 2024 Google LLC
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

// Package irkind defines the kinds of values of the style expression language.
package irkind

// Kind of a value.
type Kind uint8

// Kind of values supported by style expressions.
// The order of the constants is the priority used to pick a kind
// when the surrounding context does not decide between several kinds.
const (
	Invalid Kind = iota

	// Number is a scalar float.
	Number
	// Boolean is stored as 0 or 1 outside of expressions.
	Boolean
	// String is a category: strings are replaced by an integer index.
	String
	// Color is a RGBA color. Packed into two floats outside of expressions.
	Color
	// NumberArray is a fixed-size array of 2, 3 or 4 numbers.
	NumberArray

	// Max value for a Kind constant.
	Max
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Color:
		return "color"
	case NumberArray:
		return "number[]"
	}
	return "invalid"
}

// IsVector returns true if the kind is represented by a GLSL vector in expressions.
func IsVector(k Kind) bool {
	return k == Color || k == NumberArray
}
