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
)

func processExpr(pscope procScope, src fmterr.Path, raw any) (exprNode, bool) {
	if val, ok := numeric.Float(raw); ok {
		return processNumberLit(pscope, src, val)
	}
	switch rawT := raw.(type) {
	case bool:
		return &boolLit{src: src, val: rawT}, true
	case string:
		return processStringLit(src, rawT), true
	case []any:
		return processArray(pscope, src, rawT)
	case nil:
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "missing value")
	}
	if vals, ok := numeric.Floats(raw); ok {
		return processArrayLit(pscope, src, vals)
	}
	return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "value of type %T not supported", raw)
}

// processArray processes an array which is either an operator call,
// when the first element is a string, or an array literal.
func processArray(pscope procScope, src fmterr.Path, raw []any) (exprNode, bool) {
	if len(raw) == 0 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "empty array")
	}
	if name, ok := raw[0].(string); ok {
		return processCall(pscope, src, name, raw[1:])
	}
	vals, ok := numeric.Floats(raw)
	if !ok {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "array literal can only contain numbers (use the array operator to build an array from expressions)")
	}
	return processArrayLit(pscope, src, vals)
}

// processArgs processes the operands of an operator.
// The first operand is at index 1 in the style.
func processArgs(pscope procScope, src fmterr.Path, raw []any) ([]exprNode, bool) {
	return processArgsFrom(pscope, src, raw, 0)
}

// processArgsFrom processes the operands of an operator, skipping the first ones.
func processArgsFrom(pscope procScope, src fmterr.Path, raw []any, from int) ([]exprNode, bool) {
	nodes := make([]exprNode, len(raw)-from)
	allOk := true
	for i, arg := range raw[from:] {
		var ok bool
		nodes[i], ok = processExpr(pscope, src.Index(from+i+1), arg)
		allOk = allOk && ok
	}
	return nodes, allOk
}
