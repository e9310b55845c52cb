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

// Package ir is the intermediate representation of a style expression.
//
// Every node of the representation has been type checked:
// its type is resolved to exactly one Type.
package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/color"
)

type (
	// Node in the intermediate representation.
	Node interface {
		node()
	}

	// Expr is a typed expression.
	Expr interface {
		Node
		// Source returns the path of the expression in the style.
		Source() fmterr.Path
		// Type returns the type of the expression.
		Type() Type
		// String representation of the expression, close to its style syntax.
		String() string
	}
)

// ----------------------------------------------------------------------------
// Literals.

// NumberLit is a number literal.
type NumberLit struct {
	Src fmterr.Path
	Val float64
}

var _ Expr = (*NumberLit)(nil)

func (*NumberLit) node() {}

// Source of the literal.
func (n *NumberLit) Source() fmterr.Path { return n.Src }

// Type of the literal.
func (n *NumberLit) Type() Type { return NumberType() }

func (n *NumberLit) String() string {
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Src fmterr.Path
	Val bool
}

var _ Expr = (*BoolLit)(nil)

func (*BoolLit) node() {}

// Source of the literal.
func (n *BoolLit) Source() fmterr.Path { return n.Src }

// Type of the literal.
func (n *BoolLit) Type() Type { return BoolType() }

func (n *BoolLit) String() string {
	return strconv.FormatBool(n.Val)
}

// StringLit is a string used as a category.
type StringLit struct {
	Src fmterr.Path
	Val string
}

var _ Expr = (*StringLit)(nil)

func (*StringLit) node() {}

// Source of the literal.
func (n *StringLit) Source() fmterr.Path { return n.Src }

// Type of the literal.
func (n *StringLit) Type() Type { return StringType() }

func (n *StringLit) String() string {
	return strconv.Quote(n.Val)
}

// ColorLit is a color given as a string or an array.
type ColorLit struct {
	Src fmterr.Path
	Val color.RGBA
}

var _ Expr = (*ColorLit)(nil)

func (*ColorLit) node() {}

// Source of the literal.
func (n *ColorLit) Source() fmterr.Path { return n.Src }

// Type of the literal.
func (n *ColorLit) Type() Type { return ColorType() }

func (n *ColorLit) String() string {
	return fmt.Sprintf("color%v", n.Val.Array())
}

// ArrayLit is a literal array of numbers.
type ArrayLit struct {
	Src  fmterr.Path
	Vals []float64
}

var _ Expr = (*ArrayLit)(nil)

func (*ArrayLit) node() {}

// Source of the literal.
func (n *ArrayLit) Source() fmterr.Path { return n.Src }

// Type of the literal.
func (n *ArrayLit) Type() Type { return ArrayType(len(n.Vals)) }

func (n *ArrayLit) String() string {
	return fmt.Sprint(n.Vals)
}

// ----------------------------------------------------------------------------
// References.

// GetExpr reads the property of a feature.
type GetExpr struct {
	Src  fmterr.Path
	Name string
	Typ  Type
}

var _ Expr = (*GetExpr)(nil)

func (*GetExpr) node() {}

// Source of the reference.
func (n *GetExpr) Source() fmterr.Path { return n.Src }

// Type of the property.
func (n *GetExpr) Type() Type { return n.Typ }

func (n *GetExpr) String() string {
	return fmt.Sprintf("get(%q):%s", n.Name, n.Typ)
}

// VarExpr reads a style variable.
type VarExpr struct {
	Src  fmterr.Path
	Name string
	Typ  Type
}

var _ Expr = (*VarExpr)(nil)

func (*VarExpr) node() {}

// Source of the reference.
func (n *VarExpr) Source() fmterr.Path { return n.Src }

// Type of the variable.
func (n *VarExpr) Type() Type { return n.Typ }

func (n *VarExpr) String() string {
	return fmt.Sprintf("var(%q):%s", n.Name, n.Typ)
}

// BuiltinUniform is a number provided by the renderer, for example the current zoom level.
type BuiltinUniform struct {
	Src fmterr.Path
	// Name of the builtin in a style, for example "zoom".
	Name string
}

var _ Expr = (*BuiltinUniform)(nil)

func (*BuiltinUniform) node() {}

// Source of the builtin.
func (n *BuiltinUniform) Source() fmterr.Path { return n.Src }

// Type of the builtin.
func (n *BuiltinUniform) Type() Type { return NumberType() }

func (n *BuiltinUniform) String() string {
	return n.Name + "()"
}

// ----------------------------------------------------------------------------
// Operators.

// CallExpr calls an operator with a fixed signature.
type CallExpr struct {
	Src  fmterr.Path
	Op   Op
	Args []Expr
	Typ  Type
}

var _ Expr = (*CallExpr)(nil)

func (*CallExpr) node() {}

// Source of the call.
func (n *CallExpr) Source() fmterr.Path { return n.Src }

// Type returned by the operator.
func (n *CallExpr) Type() Type { return n.Typ }

func (n *CallExpr) String() string {
	return n.Op.String() + exprList(n.Args)
}

// InterpolateExpr interpolates outputs between stops.
type InterpolateExpr struct {
	Src fmterr.Path
	// Exponent of the interpolation. 1 is a linear interpolation.
	Exponent float64
	Input    Expr
	Stops    []Expr
	Outputs  []Expr
	Typ      Type
}

var _ Expr = (*InterpolateExpr)(nil)

func (*InterpolateExpr) node() {}

// Source of the interpolation.
func (n *InterpolateExpr) Source() fmterr.Path { return n.Src }

// Type of the interpolated values.
func (n *InterpolateExpr) Type() Type { return n.Typ }

func (n *InterpolateExpr) String() string {
	return fmt.Sprintf("interpolate[%v](%s, %s->%s)", n.Exponent, n.Input.String(), exprList(n.Stops), exprList(n.Outputs))
}

// MatchExpr returns the output of the first label equal to the input,
// or the fallback if no label matches.
type MatchExpr struct {
	Src      fmterr.Path
	Input    Expr
	Labels   []Expr
	Outputs  []Expr
	Fallback Expr
	Typ      Type
}

var _ Expr = (*MatchExpr)(nil)

func (*MatchExpr) node() {}

// Source of the match.
func (n *MatchExpr) Source() fmterr.Path { return n.Src }

// Type of the outputs.
func (n *MatchExpr) Type() Type { return n.Typ }

func (n *MatchExpr) String() string {
	return fmt.Sprintf("match(%s, %s->%s, %s)", n.Input.String(), exprList(n.Labels), exprList(n.Outputs), n.Fallback.String())
}

// CaseExpr returns the output of the first true condition,
// or the fallback if all conditions are false.
type CaseExpr struct {
	Src      fmterr.Path
	Conds    []Expr
	Outputs  []Expr
	Fallback Expr
	Typ      Type
}

var _ Expr = (*CaseExpr)(nil)

func (*CaseExpr) node() {}

// Source of the case.
func (n *CaseExpr) Source() fmterr.Path { return n.Src }

// Type of the outputs.
func (n *CaseExpr) Type() Type { return n.Typ }

func (n *CaseExpr) String() string {
	return fmt.Sprintf("case(%s->%s, %s)", exprList(n.Conds), exprList(n.Outputs), n.Fallback.String())
}

// WidenExpr converts a number into a vector with all components equal to the number.
type WidenExpr struct {
	X   Expr
	Typ Type
}

var _ Expr = (*WidenExpr)(nil)

func (*WidenExpr) node() {}

// Source of the number.
func (n *WidenExpr) Source() fmterr.Path { return n.X.Source() }

// Type of the vector.
func (n *WidenExpr) Type() Type { return n.Typ }

func (n *WidenExpr) String() string {
	return fmt.Sprintf("%s(%s)", n.Typ, n.X.String())
}

func exprList(exprs []Expr) string {
	ss := make([]string, len(exprs))
	for i, expr := range exprs {
		ss[i] = expr.String()
	}
	return "(" + strings.Join(ss, ", ") + ")"
}
