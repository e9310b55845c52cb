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

package ir

// Op is an operator with a fixed signature.
type Op uint8

// Operators supported by CallExpr.
const (
	InvalidOp Op = iota

	// Arithmetic.
	Mul
	Add
	Sub
	Div
	Mod
	Pow
	Clamp
	Abs
	Floor
	Ceil
	Round
	Sin
	Cos
	Sqrt
	Atan

	// Comparisons.
	Greater
	GreaterEq
	Less
	LessEq
	Equal
	NotEqual

	// Logic.
	Not
	All
	Any
	Between

	// Constructors.
	Array
	Color
)

var opNames = [...]string{
	InvalidOp: "invalid",
	Mul:       "*",
	Add:       "+",
	Sub:       "-",
	Div:       "/",
	Mod:       "%",
	Pow:       "^",
	Clamp:     "clamp",
	Abs:       "abs",
	Floor:     "floor",
	Ceil:      "ceil",
	Round:     "round",
	Sin:       "sin",
	Cos:       "cos",
	Sqrt:      "sqrt",
	Atan:      "atan",
	Greater:   ">",
	GreaterEq: ">=",
	Less:      "<",
	LessEq:    "<=",
	Equal:     "==",
	NotEqual:  "!=",
	Not:       "!",
	All:       "all",
	Any:       "any",
	Between:   "between",
	Array:     "array",
	Color:     "color",
}

var nameToOp = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, name := range opNames {
		if Op(op) == InvalidOp {
			continue
		}
		m[name] = Op(op)
	}
	return m
}()

// OpFromName returns the operator given its name in a style.
func OpFromName(name string) (Op, bool) {
	op, ok := nameToOp[name]
	return op, ok
}

// String returns the name of the operator in a style.
func (op Op) String() string {
	if int(op) >= len(opNames) {
		return opNames[InvalidOp]
	}
	return opNames[op]
}

// IsArithmetic returns true if the operator accepts vectors mixed with numbers.
func (op Op) IsArithmetic() bool {
	switch op {
	case Mul, Add, Sub, Div:
		return true
	}
	return false
}
