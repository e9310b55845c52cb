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
	"github.com/gx-org/glstyle/base/numeric"
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
)

// interpolateExpr interpolates numbers, colors or arrays between stops:
//
//	["interpolate", ["linear"], input, stop1, output1, stop2, output2, ...]
//	["interpolate", ["exponential", base], input, stop1, output1, ...]
type interpolateExpr struct {
	src      fmterr.Path
	exponent float64
	input    exprNode
	stops    []exprNode
	outputs  []exprNode
}

var _ exprNode = (*interpolateExpr)(nil)

func processInterpolationType(pscope procScope, src fmterr.Path, raw any) (float64, bool) {
	typ, ok := raw.([]any)
	if !ok || len(typ) == 0 {
		return 0, pscope.Err().Appendf(src, fmterr.ErrStructure, "invalid interpolation type %v: want [\"linear\"] or [\"exponential\", base]", raw)
	}
	name, _ := typ[0].(string)
	switch {
	case name == "linear" && len(typ) == 1:
		return 1, true
	case name == "exponential" && len(typ) == 2:
		base, ok := numeric.Float(typ[1])
		if !ok {
			return 0, pscope.Err().Appendf(src.Index(1), fmterr.ErrStructure, "exponential interpolation requires a number base but got %v", typ[1])
		}
		return base, true
	}
	return 0, pscope.Err().Appendf(src, fmterr.ErrStructure, "invalid interpolation type %v: want [\"linear\"] or [\"exponential\", base]", raw)
}

func processInterpolate(pscope procScope, src fmterr.Path, raw []any) (exprNode, bool) {
	if len(raw) < 6 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "interpolate requires an interpolation type, an input and at least 2 stops but got %d operands", len(raw))
	}
	if len(raw)%2 != 0 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "interpolate requires stops and outputs to come in pairs")
	}
	exponent, expOk := processInterpolationType(pscope, src.Index(1), raw[0])
	args, argsOk := processArgsFrom(pscope, src, raw, 1)
	if !expOk || !argsOk {
		return nil, false
	}
	n := &interpolateExpr{
		src:      src,
		exponent: exponent,
		input:    args[0],
	}
	for i := 1; i < len(args); i += 2 {
		n.stops = append(n.stops, args[i])
		n.outputs = append(n.outputs, args[i+1])
	}
	if !checkStops(pscope, n.stops) {
		return nil, false
	}
	return n, true
}

// checkStops checks that consecutive literal stops are strictly increasing.
// Stops computed from references or operators are not checked.
func checkStops(pscope procScope, stops []exprNode) bool {
	for i := 1; i < len(stops); i++ {
		prev, prevOk := stops[i-1].(*numberLit)
		next, nextOk := stops[i].(*numberLit)
		if !prevOk || !nextOk {
			continue
		}
		if next.val <= prev.val {
			return pscope.Err().Appendf(next.src, fmterr.ErrStructure, "interpolation stops must be strictly increasing: got %v after %v", next.val, prev.val)
		}
	}
	return true
}

func (n *interpolateExpr) source() fmterr.Path { return n.src }

func (n *interpolateExpr) types(rscope resolveScope) ir.TypeSet {
	return intersectTypes(rscope, n.outputs).Intersect(mixableSet)
}

func (n *interpolateExpr) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	input, inputOk := buildExpr(rscope, n.input, numberSet)
	stops, stopsOk := buildAll(rscope, n.stops, numberSet)
	outputs, outputsOk := buildAll(rscope, n.outputs, ir.SetOf(kind))
	if !inputOk || !stopsOk || !outputsOk {
		return nil, false
	}
	typ, ok := sameType(rscope, outputs)
	if !ok {
		return nil, false
	}
	return &ir.InterpolateExpr{
		Src:      n.src,
		Exponent: n.exponent,
		Input:    input,
		Stops:    stops,
		Outputs:  outputs,
		Typ:      typ,
	}, true
}
