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
	"github.com/gx-org/glstyle/build/ir/irkind"
)

// matchExpr compares an input with literal labels:
//
//	["match", input, label1, output1, label2, output2, ..., fallback]
type matchExpr struct {
	src       fmterr.Path
	input     exprNode
	labelKind irkind.Kind
	labels    []exprNode
	outputs   []exprNode
	fallback  exprNode
}

var _ exprNode = (*matchExpr)(nil)

func processLabel(pscope procScope, src fmterr.Path, raw any) (exprNode, irkind.Kind, bool) {
	if val, ok := numeric.Float(raw); ok {
		node, ok := processNumberLit(pscope, src, val)
		return node, irkind.Number, ok
	}
	switch rawT := raw.(type) {
	case string:
		return processStringLit(src, rawT), irkind.String, true
	case bool:
		return &boolLit{src: src, val: rawT}, irkind.Boolean, true
	}
	return nil, irkind.Invalid, pscope.Err().Appendf(src, fmterr.ErrStructure, "match labels must be literal numbers, strings or booleans but got %v", raw)
}

func processMatch(pscope procScope, src fmterr.Path, raw []any) (exprNode, bool) {
	if len(raw) < 4 || len(raw)%2 != 0 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "match requires an input, pairs of labels and outputs, and a fallback: missing fallback")
	}
	n := &matchExpr{src: src}
	var inputOk, fallbackOk bool
	n.input, inputOk = processExpr(pscope, src.Index(1), raw[0])
	n.fallback, fallbackOk = processExpr(pscope, src.Index(len(raw)), raw[len(raw)-1])
	allOk := inputOk && fallbackOk
	for i := 1; i < len(raw)-1; i += 2 {
		label, kind, labelOk := processLabel(pscope, src.Index(i+1), raw[i])
		output, outputOk := processExpr(pscope, src.Index(i+2), raw[i+1])
		allOk = allOk && labelOk && outputOk
		if !labelOk {
			continue
		}
		if n.labelKind == irkind.Invalid {
			n.labelKind = kind
		} else if kind != n.labelKind {
			allOk = pscope.Err().Appendf(label.source(), fmterr.ErrType, "match label of type %s but previous labels are of type %s", kind, n.labelKind)
		}
		n.labels = append(n.labels, label)
		n.outputs = append(n.outputs, output)
	}
	return n, allOk
}

func (n *matchExpr) source() fmterr.Path { return n.src }

func (n *matchExpr) types(rscope resolveScope) ir.TypeSet {
	return intersectTypes(rscope, n.outputs).Intersect(n.fallback.types(rscope))
}

func (n *matchExpr) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	labelSet := ir.SetOf(n.labelKind)
	input, inputOk := buildExpr(rscope, n.input, labelSet)
	labels, labelsOk := buildAll(rscope, n.labels, labelSet)
	outputs, outputsOk := buildAll(rscope, append(n.outputs, n.fallback), ir.SetOf(kind))
	if !inputOk || !labelsOk || !outputsOk {
		return nil, false
	}
	typ, ok := sameType(rscope, outputs)
	if !ok {
		return nil, false
	}
	return &ir.MatchExpr{
		Src:      n.src,
		Input:    input,
		Labels:   labels,
		Outputs:  outputs[:len(outputs)-1],
		Fallback: outputs[len(outputs)-1],
		Typ:      typ,
	}, true
}

// caseExpr returns the output of the first true condition:
//
//	["case", condition1, output1, condition2, output2, ..., fallback]
type caseExpr struct {
	src      fmterr.Path
	conds    []exprNode
	outputs  []exprNode
	fallback exprNode
}

var _ exprNode = (*caseExpr)(nil)

func processCase(pscope procScope, src fmterr.Path, raw []any) (exprNode, bool) {
	if len(raw) < 3 || len(raw)%2 != 1 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "case requires pairs of conditions and outputs, and a fallback: missing fallback")
	}
	args, ok := processArgs(pscope, src, raw)
	if !ok {
		return nil, false
	}
	n := &caseExpr{src: src, fallback: args[len(args)-1]}
	for i := 0; i < len(args)-1; i += 2 {
		n.conds = append(n.conds, args[i])
		n.outputs = append(n.outputs, args[i+1])
	}
	return n, true
}

func (n *caseExpr) source() fmterr.Path { return n.src }

func (n *caseExpr) types(rscope resolveScope) ir.TypeSet {
	return intersectTypes(rscope, n.outputs).Intersect(n.fallback.types(rscope))
}

func (n *caseExpr) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	conds, condsOk := buildAll(rscope, n.conds, boolSet)
	outputs, outputsOk := buildAll(rscope, append(n.outputs, n.fallback), ir.SetOf(kind))
	if !condsOk || !outputsOk {
		return nil, false
	}
	typ, ok := sameType(rscope, outputs)
	if !ok {
		return nil, false
	}
	return &ir.CaseExpr{
		Src:      n.src,
		Conds:    conds,
		Outputs:  outputs[:len(outputs)-1],
		Fallback: outputs[len(outputs)-1],
		Typ:      typ,
	}, true
}
