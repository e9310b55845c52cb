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

// signature of an operator.
type signature struct {
	// minArgs and maxArgs are the number of operands accepted by the operator.
	// maxArgs is negative if the operator accepts any number of operands.
	minArgs, maxArgs int
	// args is the kind of all the operands.
	// Invalid if operands can be of any kind but must all have the same type.
	args irkind.Kind
	// result returns the type of the result given the number of operands.
	result func(numArgs int) ir.Type
}

func returns(typ ir.Type) func(int) ir.Type {
	return func(int) ir.Type { return typ }
}

var (
	unaryNumber = signature{
		minArgs: 1, maxArgs: 1,
		args:   irkind.Number,
		result: returns(ir.NumberType()),
	}
	binaryNumber = signature{
		minArgs: 2, maxArgs: 2,
		args:   irkind.Number,
		result: returns(ir.NumberType()),
	}
	comparison = signature{
		minArgs: 2, maxArgs: 2,
		args:   irkind.Number,
		result: returns(ir.BoolType()),
	}
	equality = signature{
		minArgs: 2, maxArgs: 2,
		args:   irkind.Invalid,
		result: returns(ir.BoolType()),
	}
	logical = signature{
		minArgs: 2, maxArgs: -1,
		args:   irkind.Boolean,
		result: returns(ir.BoolType()),
	}
)

var signatures = map[ir.Op]signature{
	ir.Mul:       {minArgs: 2, maxArgs: -1},
	ir.Add:       {minArgs: 2, maxArgs: -1},
	ir.Sub:       {minArgs: 2, maxArgs: 2},
	ir.Div:       {minArgs: 2, maxArgs: 2},
	ir.Mod:       binaryNumber,
	ir.Pow:       binaryNumber,
	ir.Clamp:     {minArgs: 3, maxArgs: 3, args: irkind.Number, result: returns(ir.NumberType())},
	ir.Abs:       unaryNumber,
	ir.Floor:     unaryNumber,
	ir.Ceil:      unaryNumber,
	ir.Round:     unaryNumber,
	ir.Sin:       unaryNumber,
	ir.Cos:       unaryNumber,
	ir.Sqrt:      unaryNumber,
	ir.Atan:      {minArgs: 1, maxArgs: 2, args: irkind.Number, result: returns(ir.NumberType())},
	ir.Greater:   comparison,
	ir.GreaterEq: comparison,
	ir.Less:      comparison,
	ir.LessEq:    comparison,
	ir.Equal:     equality,
	ir.NotEqual:  equality,
	ir.Not:       {minArgs: 1, maxArgs: 1, args: irkind.Boolean, result: returns(ir.BoolType())},
	ir.All:       logical,
	ir.Any:       logical,
	ir.Between:   {minArgs: 3, maxArgs: 3, args: irkind.Number, result: returns(ir.BoolType())},
	ir.Array:     {minArgs: 2, maxArgs: 4, args: irkind.Number, result: ir.ArrayType},
	ir.Color:     {minArgs: 3, maxArgs: 4, args: irkind.Number, result: returns(ir.ColorType())},
}

func processCall(pscope procScope, src fmterr.Path, name string, raw []any) (exprNode, bool) {
	switch name {
	case "get":
		return processGet(pscope, src, raw)
	case "var":
		return processVar(pscope, src, raw)
	case "interpolate":
		return processInterpolate(pscope, src, raw)
	case "match":
		return processMatch(pscope, src, raw)
	case "case":
		return processCase(pscope, src, raw)
	}
	if builtins[name] {
		return processBuiltin(pscope, src, name, raw)
	}
	op, ok := ir.OpFromName(name)
	if !ok {
		return nil, pscope.Err().Appendf(src.Index(0), fmterr.ErrStructure, "unknown operator %q", name)
	}
	sig := signatures[op]
	if !checkArity(pscope, src, name, sig.minArgs, sig.maxArgs, len(raw)) {
		return nil, false
	}
	args, ok := processArgs(pscope, src, raw)
	if !ok {
		return nil, false
	}
	if op.IsArithmetic() {
		return &arithExpr{src: src, op: op, args: args}, true
	}
	return &callExpr{src: src, op: op, sig: sig, args: args}, true
}

func checkArity(pscope procScope, src fmterr.Path, name string, minArgs, maxArgs, got int) bool {
	switch {
	case minArgs == maxArgs && got != minArgs:
		return pscope.Err().Appendf(src, fmterr.ErrStructure, "%s requires %d operands but got %d", name, minArgs, got)
	case got < minArgs:
		return pscope.Err().Appendf(src, fmterr.ErrStructure, "%s requires at least %d operands but got %d", name, minArgs, got)
	case maxArgs >= 0 && got > maxArgs:
		return pscope.Err().Appendf(src, fmterr.ErrStructure, "%s requires at most %d operands but got %d", name, maxArgs, got)
	}
	return true
}

// callExpr calls an operator with a fixed signature.
type callExpr struct {
	src  fmterr.Path
	op   ir.Op
	sig  signature
	args []exprNode
}

var _ exprNode = (*callExpr)(nil)

func (n *callExpr) source() fmterr.Path { return n.src }

func (n *callExpr) types(resolveScope) ir.TypeSet {
	return n.sig.result(len(n.args)).Set()
}

func (n *callExpr) buildArgs(rscope resolveScope) ([]ir.Expr, bool) {
	if n.sig.args != irkind.Invalid {
		return buildAll(rscope, n.args, ir.SetOf(n.sig.args))
	}
	// All operands must have the same type.
	common := intersectTypes(rscope, n.args)
	if common.Empty() {
		return nil, rscope.Err().Appendf(n.src, fmterr.ErrType, "operator %s cannot compare values of types %s and %s", n.op, n.args[0].types(rscope), n.args[1].types(rscope))
	}
	args, ok := buildAll(rscope, n.args, ir.SetOf(common.Pick()))
	if !ok {
		return nil, false
	}
	if _, ok := sameType(rscope, args); !ok {
		return nil, false
	}
	return args, true
}

func (n *callExpr) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if _, ok := pickKind(rscope, n, expected); !ok {
		return nil, false
	}
	args, ok := n.buildArgs(rscope)
	if !ok {
		return nil, false
	}
	return &ir.CallExpr{
		Src:  n.src,
		Op:   n.op,
		Args: args,
		Typ:  n.sig.result(len(args)),
	}, true
}
