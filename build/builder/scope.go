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

type (
	// procScope is the scope used to process raw values into nodes.
	procScope interface {
		fmterr.ErrAppender
	}

	// resolveScope is the scope used to resolve the type of nodes.
	resolveScope interface {
		procScope
		// variable returns the value of a style variable given at compile time.
		variable(name string) (any, bool)
		// arraySize returns the number of components of arrays
		// for which no size is given.
		arraySize() int
	}

	// exprNode is a processed expression for which types have not been resolved yet.
	exprNode interface {
		// source returns the path of the expression in the style.
		source() fmterr.Path
		// types returns the set of types the expression can take.
		// The returned set may be empty if the operands are not compatible:
		// the error is then reported by buildExpr.
		types(resolveScope) ir.TypeSet
		// buildExpr resolves the type of the expression given the set
		// of types accepted by the context.
		buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool)
	}
)

var (
	numberSet  = ir.SetOf(irkind.Number)
	boolSet    = ir.SetOf(irkind.Boolean)
	vectorSet  = ir.SetOf(irkind.Color, irkind.NumberArray)
	mixableSet = ir.SetOf(irkind.Number, irkind.Color, irkind.NumberArray)
)

// buildExpr builds a node. Numbers used where only vectors are accepted
// are widened to vectors.
func buildExpr(rscope resolveScope, node exprNode, expected ir.TypeSet) (ir.Expr, bool) {
	avail := node.types(rscope)
	if avail.Intersect(expected).Empty() && avail.Has(irkind.Number) {
		if target, ok := widenTarget(rscope, expected); ok {
			x, ok := node.buildExpr(rscope, numberSet)
			if !ok {
				return nil, false
			}
			return &ir.WidenExpr{X: x, Typ: target}, true
		}
	}
	return node.buildExpr(rscope, expected)
}

func widenTarget(rscope resolveScope, expected ir.TypeSet) (ir.Type, bool) {
	vecs := expected.Intersect(vectorSet)
	if vecs.Empty() {
		return ir.InvalidType(), false
	}
	return typeFromKind(rscope, vecs.Pick()), true
}

// typeFromKind returns the type of a kind in the scope.
// Arrays take the size of the scope.
func typeFromKind(rscope resolveScope, kind irkind.Kind) ir.Type {
	if kind == irkind.NumberArray {
		return ir.ArrayType(rscope.arraySize())
	}
	return ir.TypeFromKind(kind)
}

// pickKind returns the kind of a node with the highest priority given the kinds
// accepted by the context.
func pickKind(rscope resolveScope, node exprNode, expected ir.TypeSet) (irkind.Kind, bool) {
	avail := node.types(rscope)
	cands := avail.Intersect(expected)
	if cands.Empty() {
		return irkind.Invalid, rscope.Err().Appendf(node.source(), fmterr.ErrType, "cannot use a value of type %s as %s", avail, expected)
	}
	return cands.Pick(), true
}

// buildAll builds a list of nodes with the same expected set of types.
func buildAll(rscope resolveScope, nodes []exprNode, expected ir.TypeSet) ([]ir.Expr, bool) {
	exprs := make([]ir.Expr, len(nodes))
	allOk := true
	for i, node := range nodes {
		var ok bool
		exprs[i], ok = buildExpr(rscope, node, expected)
		allOk = allOk && ok
	}
	return exprs, allOk
}

// sameType checks that all the expressions have the same type and returns it.
func sameType(rscope resolveScope, exprs []ir.Expr) (ir.Type, bool) {
	typ := exprs[0].Type()
	for _, expr := range exprs[1:] {
		if !expr.Type().Equal(typ) {
			return ir.InvalidType(), rscope.Err().Appendf(expr.Source(), fmterr.ErrType, "mismatched types %s and %s", typ, expr.Type())
		}
	}
	return typ, true
}

// intersectTypes returns the types all nodes can take.
func intersectTypes(rscope resolveScope, nodes []exprNode) ir.TypeSet {
	set := ir.AnySet
	for _, node := range nodes {
		set = set.Intersect(node.types(rscope))
	}
	return set
}
