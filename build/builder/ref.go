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
	"github.com/gx-org/glstyle/color"
)

// typeHints are the types that can be given to a feature property.
// Arrays of size 0 take their size from the scope.
var typeHints = map[string]ir.Type{
	"number":    ir.NumberType(),
	"string":    ir.StringType(),
	"color":     ir.ColorType(),
	"boolean":   ir.BoolType(),
	"number[]":  {Kind: irkind.NumberArray},
	"number[2]": ir.ArrayType(2),
	"number[3]": ir.ArrayType(3),
	"number[4]": ir.ArrayType(4),
}

func processName(pscope procScope, src fmterr.Path, op string, args []any) (string, bool) {
	if len(args) == 0 {
		return "", pscope.Err().Appendf(src, fmterr.ErrStructure, "%s requires a name", op)
	}
	name, ok := args[0].(string)
	if !ok {
		return "", pscope.Err().Appendf(src.Index(1), fmterr.ErrStructure, "%s requires a string name but got %v", op, args[0])
	}
	return name, true
}

// getRef reads a property of a feature.
type getRef struct {
	src  fmterr.Path
	name string
	hint *ir.Type
}

var _ exprNode = (*getRef)(nil)

func processGet(pscope procScope, src fmterr.Path, args []any) (exprNode, bool) {
	name, ok := processName(pscope, src, "get", args)
	if !ok {
		return nil, false
	}
	ref := &getRef{src: src, name: name}
	switch len(args) {
	case 1:
		return ref, true
	case 2:
		hint, ok := args[1].(string)
		if !ok {
			return nil, pscope.Err().Appendf(src.Index(2), fmterr.ErrStructure, "type hint must be a string but got %v", args[1])
		}
		typ, ok := typeHints[hint]
		if !ok {
			return nil, pscope.Err().Appendf(src.Index(2), fmterr.ErrStructure, "unknown type hint %q", hint)
		}
		ref.hint = &typ
		return ref, true
	}
	return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "get requires a name and an optional type hint but got %d operands", len(args))
}

func (n *getRef) source() fmterr.Path { return n.src }

func (n *getRef) types(resolveScope) ir.TypeSet {
	if n.hint != nil {
		return n.hint.Set()
	}
	return ir.AnySet
}

func (n *getRef) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if n.hint != nil {
		if _, ok := pickKind(rscope, n, expected); !ok {
			return nil, false
		}
		typ := *n.hint
		if typ.Kind == irkind.NumberArray && typ.Size == 0 {
			typ = typeFromKind(rscope, typ.Kind)
		}
		return &ir.GetExpr{Src: n.src, Name: n.name, Typ: typ}, true
	}
	kind, ok := expected.Unique()
	if !ok {
		kind = irkind.Number
		if !expected.Has(irkind.Number) {
			kind = expected.Pick()
		}
	}
	if kind == irkind.Invalid {
		return nil, rscope.Err().Appendf(n.src, fmterr.ErrType, "cannot infer the type of feature property %q", n.name)
	}
	return &ir.GetExpr{Src: n.src, Name: n.name, Typ: typeFromKind(rscope, kind)}, true
}

// varRef reads a style variable.
type varRef struct {
	src  fmterr.Path
	name string
}

var _ exprNode = (*varRef)(nil)

func processVar(pscope procScope, src fmterr.Path, args []any) (exprNode, bool) {
	name, ok := processName(pscope, src, "var", args)
	if !ok {
		return nil, false
	}
	if len(args) != 1 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "var requires exactly one name but got %d operands", len(args))
	}
	return &varRef{src: src, name: name}, true
}

// ValueTypes returns the set of types a style variable can take given its value.
func ValueTypes(val any) ir.TypeSet {
	if numeric.IsNumber(val) {
		return numberSet
	}
	switch valT := val.(type) {
	case bool:
		return boolSet
	case string:
		if color.IsColorString(valT) {
			return ir.SetOf(irkind.String, irkind.Color)
		}
		return ir.SetOf(irkind.String)
	}
	vals, ok := numeric.Floats(val)
	if !ok {
		return 0
	}
	var set ir.TypeSet
	if len(vals) >= 2 && len(vals) <= 4 {
		set = set.Union(ir.SetOf(irkind.NumberArray))
	}
	if len(vals) == 3 || len(vals) == 4 {
		set = set.Union(ir.SetOf(irkind.Color))
	}
	return set
}

func (n *varRef) source() fmterr.Path { return n.src }

func (n *varRef) types(rscope resolveScope) ir.TypeSet {
	val, ok := rscope.variable(n.name)
	if !ok {
		// The error is reported when the expression is built.
		return ir.AnySet
	}
	return ValueTypes(val)
}

func (n *varRef) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	val, ok := rscope.variable(n.name)
	if !ok {
		return nil, rscope.Err().Appendf(n.src, fmterr.ErrResolution, "undefined variable %q", n.name)
	}
	if ValueTypes(val).Empty() {
		return nil, rscope.Err().Appendf(n.src, fmterr.ErrType, "variable %q has a value %v of type %T which cannot be used in an expression", n.name, val, val)
	}
	kind, ok := pickKind(rscope, n, expected)
	if !ok {
		return nil, false
	}
	return &ir.VarExpr{Src: n.src, Name: n.name, Typ: typeFromKind(rscope, kind)}, true
}

// builtinRef reads a value provided by the renderer.
type builtinRef struct {
	src  fmterr.Path
	name string
}

var _ exprNode = (*builtinRef)(nil)

// builtins are the names of the values provided by the renderer.
var builtins = map[string]bool{
	"time":       true,
	"zoom":       true,
	"resolution": true,
}

func processBuiltin(pscope procScope, src fmterr.Path, name string, args []any) (exprNode, bool) {
	if len(args) != 0 {
		return nil, pscope.Err().Appendf(src, fmterr.ErrStructure, "%s requires no operand but got %d", name, len(args))
	}
	return &builtinRef{src: src, name: name}, true
}

func (n *builtinRef) source() fmterr.Path { return n.src }

func (n *builtinRef) types(resolveScope) ir.TypeSet { return numberSet }

func (n *builtinRef) buildExpr(rscope resolveScope, expected ir.TypeSet) (ir.Expr, bool) {
	if _, ok := pickKind(rscope, n, expected); !ok {
		return nil, false
	}
	return &ir.BuiltinUniform{Src: n.src, Name: n.name}, true
}
