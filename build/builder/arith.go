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
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
)

// arithExpr is an arithmetic operator accepting numbers and vectors.
// Vectors can be mixed with numbers, but all vectors must have the same type.
type arithExpr struct {
	src  fmterr.Path
	op   ir.Op
	args []exprNode
}

var _ exprNode = (*arithExpr)(nil)

func (n *arithExpr) source() fmterr.Path { return n.src }

func (n *arithExpr) types(rscope resolveScope) ir.TypeSet {
	argTypes := make([]ir.TypeSet, len(n.args))
	allNumbers := true
	for i, arg := range n.args {
		argTypes[i] = arg.types(rscope).Intersect(mixableSet)
		allNumbers = allNumbers && argTypes[i].Has(irkind.Number)
	}
	var set ir.TypeSet
	if allNumbers {
		set = numberSet
	}
	for _, vec := range []irkind.Kind{irkind.Color, irkind.NumberArray} {
		someVec, allOk := false, true
		for _, argType := range argTypes {
			someVec = someVec || argType.Has(vec)
			allOk = allOk && (argType.Has(vec) || argType.Has(irkind.Number))
		}
		if someVec && allOk {
			set = set.Union(ir.SetOf(vec))
		}
	}
	return set
}

func (n *arithExpr) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if n.types(rscope).Empty() {
		return nil, rscope.Err().Appendf(n.src, fmterr.ErrType, "operator %s requires numbers, or vectors of the same type mixed with numbers", n.op)
	}
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	expr := &ir.CallExpr{Src: n.src, Op: n.op, Typ: ir.NumberType()}
	if kind == irkind.Number {
		if expr.Args, ok = buildAll(rscope, n.args, numberSet); !ok {
			return nil, false
		}
		return expr, true
	}
	// Once an operand can only be a vector, operands which can be numbers
	// (like feature properties without a type hint) are numbers.
	fixed := false
	for _, arg := range n.args {
		set := arg.types(rscope).Intersect(mixableSet)
		fixed = fixed || (set.Has(kind) && !set.Has(irkind.Number))
	}
	expr.Args = make([]ir.Expr, len(n.args))
	var vectors []ir.Expr
	allOk := true
	for i, arg := range n.args {
		set := arg.types(rscope)
		argExpected := numberSet
		if set.Has(kind) && !(fixed && set.Has(irkind.Number)) {
			argExpected = ir.SetOf(kind)
		}
		expr.Args[i], ok = buildExpr(rscope, arg, argExpected)
		if !ok {
			allOk = false
			continue
		}
		if expr.Args[i].Type().Kind != irkind.Number {
			vectors = append(vectors, expr.Args[i])
		}
	}
	if !allOk {
		return nil, false
	}
	if len(vectors) == 0 {
		return nil, rscope.Err().AppendInternalf(n.src, "operator %s returns %s without vector operand", n.op, kind)
	}
	if expr.Typ, ok = sameType(rscope, vectors); !ok {
		return nil, false
	}
	return expr, true
}
