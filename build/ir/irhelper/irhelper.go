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
// Package irhelper provides helper functions to build IR programmatically.
// Nodes built by the helpers have no source position.
package irhelper

import (
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/color"
)

// Number returns a number literal.
func Number(v float64) *ir.NumberLit {
	return &ir.NumberLit{Val: v}
}

// Bool returns a boolean literal.
func Bool(v bool) *ir.BoolLit {
	return &ir.BoolLit{Val: v}
}

// String returns a string literal.
func String(v string) *ir.StringLit {
	return &ir.StringLit{Val: v}
}

// Color returns a color literal.
func Color(c color.RGBA) *ir.ColorLit {
	return &ir.ColorLit{Val: c}
}

// Array returns a literal array of numbers.
func Array(vals ...float64) *ir.ArrayLit {
	return &ir.ArrayLit{Vals: vals}
}

// Get returns a reference to a feature property.
func Get(name string, typ ir.Type) *ir.GetExpr {
	return &ir.GetExpr{Name: name, Typ: typ}
}

// Var returns a reference to a style variable.
func Var(name string, typ ir.Type) *ir.VarExpr {
	return &ir.VarExpr{Name: name, Typ: typ}
}

// Builtin returns a reference to a value provided by the renderer.
func Builtin(name string) *ir.BuiltinUniform {
	return &ir.BuiltinUniform{Name: name}
}

// Call returns an operator call.
func Call(op ir.Op, typ ir.Type, args ...ir.Expr) *ir.CallExpr {
	return &ir.CallExpr{Op: op, Args: args, Typ: typ}
}

// Widen returns a number converted into a vector type.
func Widen(x ir.Expr, typ ir.Type) *ir.WidenExpr {
	return &ir.WidenExpr{X: x, Typ: typ}
}

// Case returns a conditional expression given pairs of conditions and outputs.
func Case(typ ir.Type, fallback ir.Expr, pairs ...ir.Expr) *ir.CaseExpr {
	expr := &ir.CaseExpr{Fallback: fallback, Typ: typ}
	for i := 0; i+1 < len(pairs); i += 2 {
		expr.Conds = append(expr.Conds, pairs[i])
		expr.Outputs = append(expr.Outputs, pairs[i+1])
	}
	return expr
}
