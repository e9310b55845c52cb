// Copyright 2025 Google LLC
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

// Package codegen generates GLSL expressions from typed style expressions.
//
// References to feature properties and style variables are registered
// while the code is generated, in the order in which they are emitted.
package codegen

import (
	"fmt"
	"strings"

	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/color"
	"github.com/gx-org/glstyle/glsl"
	"github.com/gx-org/glstyle/shader"
)

// builtinUniforms maps builtin names to the uniforms declared by the renderer.
var builtinUniforms = map[string]string{
	"time":       "u_time",
	"zoom":       "u_zoom",
	"resolution": "u_resolution",
}

type emitter struct {
	reg   *registry.Registry
	stage shader.Stage
}

// Emit returns the GLSL source of an expression evaluated in a given shader stage.
func Emit(reg *registry.Registry, stage shader.Stage, expr ir.Expr) (string, error) {
	e := emitter{reg: reg, stage: stage}
	return e.emit(expr)
}

func (e *emitter) emit(expr ir.Expr) (string, error) {
	switch exprT := expr.(type) {
	case *ir.NumberLit:
		return e.number(exprT.Src, exprT.Val)
	case *ir.BoolLit:
		return glsl.Bool(exprT.Val), nil
	case *ir.StringLit:
		return e.number(exprT.Src, float64(e.reg.Category(exprT.Val)))
	case *ir.ColorLit:
		s, err := glsl.Color(exprT.Val)
		if err != nil {
			return "", fmterr.Position(exprT.Src, fmterr.ErrStructure, err)
		}
		return s, nil
	case *ir.ArrayLit:
		s, err := glsl.Array(exprT.Vals)
		if err != nil {
			return "", fmterr.Position(exprT.Src, fmterr.ErrStructure, err)
		}
		return s, nil
	case *ir.GetExpr:
		return e.get(exprT)
	case *ir.VarExpr:
		return e.variable(exprT)
	case *ir.BuiltinUniform:
		name, ok := builtinUniforms[exprT.Name]
		if !ok {
			return "", fmterr.Internalf(exprT.Src, "unknown builtin %q", exprT.Name)
		}
		return name, nil
	case *ir.CallExpr:
		return e.call(exprT)
	case *ir.InterpolateExpr:
		return e.interpolate(exprT)
	case *ir.MatchExpr:
		return e.match(exprT)
	case *ir.CaseExpr:
		return e.cases(exprT)
	case *ir.WidenExpr:
		x, err := e.emit(exprT.X)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("vec%d(%s)", exprT.Typ.NumComponents(), x), nil
	}
	return "", fmterr.Internalf(expr.Source(), "expression %T not supported", expr)
}

func (e *emitter) number(src fmterr.Path, val float64) (string, error) {
	s, err := glsl.Number(val)
	if err != nil {
		return "", fmterr.Position(src, fmterr.ErrStructure, err)
	}
	return s, nil
}

func (e *emitter) emitAll(exprs []ir.Expr) ([]string, error) {
	ss := make([]string, len(exprs))
	for i, expr := range exprs {
		var err error
		if ss[i], err = e.emit(expr); err != nil {
			return nil, err
		}
	}
	return ss, nil
}

// read converts the value of an attribute or a uniform to its expression type.
func read(ident string, typ ir.Type) string {
	if typ.Kind == irkind.Boolean {
		return "(" + ident + " > 0.0)"
	}
	return ident
}

func (e *emitter) get(expr *ir.GetExpr) (string, error) {
	ident, err := e.reg.Attribute(expr.Src, expr.Name, expr.Typ, e.stage)
	if err != nil {
		return "", err
	}
	if expr.Typ.Kind == irkind.Color && e.stage == shader.Vertex {
		e.reg.Builder().AddVertexShaderFunction(color.UnpackFunction)
		return color.Unpack(ident), nil
	}
	return read(ident, expr.Typ), nil
}

func (e *emitter) variable(expr *ir.VarExpr) (string, error) {
	ident, err := e.reg.Variable(expr.Src, expr.Name, expr.Typ)
	if err != nil {
		return "", err
	}
	if expr.Typ.Kind == irkind.Color {
		e.reg.Builder().AddFunction(e.stage, color.UnpackFunction)
		return color.Unpack(ident), nil
	}
	return read(ident, expr.Typ), nil
}

func (e *emitter) call(expr *ir.CallExpr) (string, error) {
	args, err := e.emitAll(expr.Args)
	if err != nil {
		return "", err
	}
	switch expr.Op {
	case ir.Mul, ir.Add:
		return "(" + strings.Join(args, " "+expr.Op.String()+" ") + ")", nil
	case ir.Sub, ir.Div, ir.Greater, ir.GreaterEq, ir.Less, ir.LessEq, ir.Equal, ir.NotEqual:
		return fmt.Sprintf("(%s %s %s)", args[0], expr.Op, args[1]), nil
	case ir.Mod:
		return fmt.Sprintf("mod(%s, %s)", args[0], args[1]), nil
	case ir.Pow:
		return fmt.Sprintf("pow(%s, %s)", args[0], args[1]), nil
	case ir.Clamp, ir.Abs, ir.Floor, ir.Ceil, ir.Sin, ir.Cos, ir.Sqrt, ir.Atan:
		return expr.Op.String() + "(" + strings.Join(args, ", ") + ")", nil
	case ir.Round:
		return fmt.Sprintf("floor(%s + 0.5)", args[0]), nil
	case ir.Not:
		return "(!" + args[0] + ")", nil
	case ir.All:
		return "(" + strings.Join(args, " && ") + ")", nil
	case ir.Any:
		return "(" + strings.Join(args, " || ") + ")", nil
	case ir.Between:
		return fmt.Sprintf("(%s >= %s && %s <= %s)", args[0], args[1], args[0], args[2]), nil
	case ir.Array:
		return glsl.Vector(args), nil
	case ir.Color:
		rgb := fmt.Sprintf("vec4(vec3(%s, %s, %s) / 255.0, 1.0)", args[0], args[1], args[2])
		if len(args) == 3 {
			return rgb, nil
		}
		return fmt.Sprintf("(%s * %s)", rgb, args[3]), nil
	}
	return "", fmterr.Internalf(expr.Src, "operator %s not supported", expr.Op)
}

// interpolate chains linear interpolations between consecutive stops.
// Stops and outputs are emitted in order.
func (e *emitter) interpolate(expr *ir.InterpolateExpr) (string, error) {
	exponent, err := e.number(expr.Src, expr.Exponent)
	if err != nil {
		return "", err
	}
	input, err := e.emit(expr.Input)
	if err != nil {
		return "", err
	}
	stops := make([]string, len(expr.Stops))
	outputs := make([]string, len(expr.Outputs))
	for i := range expr.Stops {
		if stops[i], err = e.emit(expr.Stops[i]); err != nil {
			return "", err
		}
		if outputs[i], err = e.emit(expr.Outputs[i]); err != nil {
			return "", err
		}
	}
	result := outputs[0]
	for i := 1; i < len(stops); i++ {
		result = fmt.Sprintf("mix(%s, %s, pow(clamp((%s - %s) / (%s - %s), 0.0, 1.0), %s))",
			result, outputs[i],
			input, stops[i-1], stops[i], stops[i-1],
			exponent)
	}
	return result, nil
}

// match emits the input, the fallback and then the labels with their
// outputs from the last one to the first one.
func (e *emitter) match(expr *ir.MatchExpr) (string, error) {
	input, err := e.emit(expr.Input)
	if err != nil {
		return "", err
	}
	result, err := e.emit(expr.Fallback)
	if err != nil {
		return "", err
	}
	for i := len(expr.Labels) - 1; i >= 0; i-- {
		label, err := e.emit(expr.Labels[i])
		if err != nil {
			return "", err
		}
		output, err := e.emit(expr.Outputs[i])
		if err != nil {
			return "", err
		}
		result = fmt.Sprintf("(%s == %s ? %s : %s)", input, label, output, result)
	}
	return result, nil
}

// cases emits the fallback and then the conditions with their outputs
// from the last one to the first one.
func (e *emitter) cases(expr *ir.CaseExpr) (string, error) {
	result, err := e.emit(expr.Fallback)
	if err != nil {
		return "", err
	}
	for i := len(expr.Conds) - 1; i >= 0; i-- {
		cond, err := e.emit(expr.Conds[i])
		if err != nil {
			return "", err
		}
		output, err := e.emit(expr.Outputs[i])
		if err != nil {
			return "", err
		}
		result = fmt.Sprintf("(%s ? %s : %s)", cond, output, result)
	}
	return result, nil
}
