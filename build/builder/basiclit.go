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

package builder

import (
	"math"

	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/color"
)

// numberLit is the literal of a number.
type numberLit struct {
	src fmterr.Path
	val float64
}

var _ exprNode = (*numberLit)(nil)

func processNumberLit(pscope procScope, src fmterr.Path, val float64) (exprNode, bool) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "cannot use non-finite number %v", val)
	}
	return &numberLit{src: src, val: val}, true
}

func (n *numberLit) source() fmterr.Path { return n.src }

func (n *numberLit) types(resolveScope) ir.TypeSet { return numberSet }

func (n *numberLit) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if _, ok := pickKind(rscope, n, expected); !ok {
		return nil, false
	}
	return &ir.NumberLit{Src: n.src, Val: n.val}, true
}

// boolLit is the literal of a boolean.
type boolLit struct {
	src fmterr.Path
	val bool
}

var _ exprNode = (*boolLit)(nil)

func (n *boolLit) source() fmterr.Path { return n.src }

func (n *boolLit) types(resolveScope) ir.TypeSet { return boolSet }

func (n *boolLit) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if _, ok := pickKind(rscope, n, expected); !ok {
		return nil, false
	}
	return &ir.BoolLit{Src: n.src, Val: n.val}, true
}

// stringLit is a string used either as a category or as a color.
type stringLit struct {
	src     fmterr.Path
	val     string
	isColor bool
	col     color.RGBA
}

var _ exprNode = (*stringLit)(nil)

func processStringLit(src fmterr.Path, val string) *stringLit {
	col, err := color.ParseString(val)
	return &stringLit{src: src, val: val, isColor: err == nil, col: col}
}

func (n *stringLit) source() fmterr.Path { return n.src }

func (n *stringLit) types(resolveScope) ir.TypeSet {
	if n.isColor {
		return ir.SetOf(irkind.String, irkind.Color)
	}
	return ir.SetOf(irkind.String)
}

func (n *stringLit) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	if kind == irkind.Color {
		return &ir.ColorLit{Src: n.src, Val: n.col}, true
	}
	return &ir.StringLit{Src: n.src, Val: n.val}, true
}

// arrayLit is a literal array of numbers, used either as a color or as a vector.
type arrayLit struct {
	src  fmterr.Path
	vals []float64
}

var _ exprNode = (*arrayLit)(nil)

func processArrayLit(pscope procScope, src fmterr.Path, vals []float64) (exprNode, bool) {
	if len(vals) < 2 || len(vals) > 4 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "array literal of %d numbers: arrays require 2 to 4 numbers", len(vals))
	}
	for i, val := range vals {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, pscope.Err().Appendf(src.Index(i), fmterr.ErrStructure, "cannot use non-finite number %v", val)
		}
	}
	return &arrayLit{src: src, vals: vals}, true
}

func (n *arrayLit) source() fmterr.Path { return n.src }

func (n *arrayLit) types(resolveScope) ir.TypeSet {
	if len(n.vals) >= 3 {
		return ir.SetOf(irkind.Color, irkind.NumberArray)
	}
	return ir.SetOf(irkind.NumberArray)
}

func (n *arrayLit) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	if kind == irkind.Color {
		col, err := color.FromArray(n.vals)
		if err != nil {
			return nil, rscope.Err().AppendAt(n.src, fmterr.ErrType, err)
		}
		return &ir.ColorLit{Src: n.src, Val: col}, true
	}
	return &ir.ArrayLit{Src: n.src, Vals: n.vals}, true
}
