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

package codegen_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/build/builder"
	"github.com/gx-org/glstyle/build/codegen"
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irhelper"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/color"
	"github.com/gx-org/glstyle/shader"
)

var (
	numberSet = ir.SetOf(irkind.Number)
	boolSet   = ir.SetOf(irkind.Boolean)
	colorSet  = ir.SetOf(irkind.Color)
	arraySet  = ir.SetOf(irkind.NumberArray)
	vars      = map[string]any{
		"width": 1,
		"ratio": 0.5,
		"fill":  "pink",
		"flag":  true,
	}
)

func emit(t *testing.T, reg *registry.Registry, stage shader.Stage, raw any, expected ir.TypeSet) string {
	t.Helper()
	b := builder.New(vars)
	expr, ok := b.Build("expr", raw, expected)
	if !ok {
		t.Fatalf("cannot build %v: %v", raw, b.Errors())
	}
	s, err := codegen.Emit(reg, stage, expr)
	if err != nil {
		t.Fatalf("cannot emit %v: %v", raw, err)
	}
	return s
}

func TestEmit(t *testing.T) {
	tests := []struct {
		raw      any
		expected ir.TypeSet
		stage    shader.Stage
		want     string
	}{
		{raw: 1, expected: numberSet, want: "1.0"},
		{raw: true, expected: boolSet, want: "true"},
		{raw: "#336699", expected: colorSet, want: "vec4(0.2, 0.4, 0.6, 1.0)"},
		{raw: []any{4, 8}, expected: arraySet, want: "vec2(4.0, 8.0)"},
		{raw: 2, expected: colorSet, want: "vec4(2.0)"},
		{raw: []any{"*", []any{"var", "width"}, 3}, expected: numberSet, want: "(u_var_width * 3.0)"},
		{raw: []any{"+", 1, 2, 3}, expected: numberSet, want: "(1.0 + 2.0 + 3.0)"},
		{raw: []any{"-", 1, 2}, expected: numberSet, want: "(1.0 - 2.0)"},
		{raw: []any{"/", 1, 2}, expected: numberSet, want: "(1.0 / 2.0)"},
		{raw: []any{"%", 1, 2}, expected: numberSet, want: "mod(1.0, 2.0)"},
		{raw: []any{"^", 1, 2}, expected: numberSet, want: "pow(1.0, 2.0)"},
		{raw: []any{"clamp", 1, 0, 2}, expected: numberSet, want: "clamp(1.0, 0.0, 2.0)"},
		{raw: []any{"abs", -1}, expected: numberSet, want: "abs(-1.0)"},
		{raw: []any{"round", 1.5}, expected: numberSet, want: "floor(1.5 + 0.5)"},
		{raw: []any{"atan", 1, 2}, expected: numberSet, want: "atan(1.0, 2.0)"},
		{raw: []any{">", []any{"zoom"}, 10}, expected: boolSet, want: "(u_zoom > 10.0)"},
		{raw: []any{"!=", 1, 2}, expected: boolSet, want: "(1.0 != 2.0)"},
		{raw: []any{"!", []any{"var", "flag"}}, expected: boolSet, want: "(!(u_var_flag > 0.0))"},
		{raw: []any{"all", true, false, true}, expected: boolSet, want: "(true && false && true)"},
		{raw: []any{"any", true, false}, expected: boolSet, want: "(true || false)"},
		{
			raw:      []any{"between", []any{"get", "attr0"}, 0, 10},
			expected: boolSet,
			stage:    shader.Fragment,
			want:     "(v_attr0 >= 0.0 && v_attr0 <= 10.0)",
		},
		{raw: []any{"array", 1, 2, 3}, expected: arraySet, want: "vec3(1.0, 2.0, 3.0)"},
		{raw: []any{"color", 255, 0, 0}, expected: colorSet, want: "vec4(vec3(255.0, 0.0, 0.0) / 255.0, 1.0)"},
		{raw: []any{"color", 255, 0, 0, 0.5}, expected: colorSet, want: "(vec4(vec3(255.0, 0.0, 0.0) / 255.0, 1.0) * 0.5)"},
		{raw: []any{"*", "red", 0.5}, expected: colorSet, want: "(vec4(1.0, 0.0, 0.0, 1.0) * 0.5)"},
		{raw: []any{"get", "c"}, expected: colorSet, want: "unpackColor(a_c)"},
		{raw: []any{"get", "c"}, expected: colorSet, stage: shader.Fragment, want: "v_c"},
		{raw: []any{"var", "fill"}, expected: colorSet, stage: shader.Fragment, want: "unpackColor(u_var_fill)"},
		{
			raw:      []any{"interpolate", []any{"linear"}, []any{"var", "ratio"}, 0, []any{255, 255, 0}, 1, "red"},
			expected: colorSet,
			want:     "mix(vec4(1.0, 1.0, 0.0, 1.0), vec4(1.0, 0.0, 0.0, 1.0), pow(clamp((u_var_ratio - 0.0) / (1.0 - 0.0), 0.0, 1.0), 1.0))",
		},
		{
			raw:      []any{"interpolate", []any{"exponential", 2}, []any{"zoom"}, 0, 1, 10, 2, 20, 4},
			expected: numberSet,
			want:     "mix(mix(1.0, 2.0, pow(clamp((u_zoom - 0.0) / (10.0 - 0.0), 0.0, 1.0), 2.0)), 4.0, pow(clamp((u_zoom - 10.0) / (20.0 - 10.0), 0.0, 1.0), 2.0))",
		},
		{
			raw:      []any{"match", []any{"get", "attr3"}, "red", []any{6, 0}, "green", []any{3, 0}, []any{0, 0}},
			expected: arraySet,
			want:     "(a_attr3 == 1.0 ? vec2(6.0, 0.0) : (a_attr3 == 0.0 ? vec2(3.0, 0.0) : vec2(0.0, 0.0)))",
		},
		{
			raw:      []any{"case", []any{"get", "transparent"}, "transparent", []any{"get", "fillColor"}},
			expected: colorSet,
			stage:    shader.Fragment,
			want:     "((v_transparent > 0.0) ? vec4(0.0, 0.0, 0.0, 0.0) : v_fillColor)",
		},
	}
	for i, test := range tests {
		reg := registry.New(shader.NewBuilder())
		got := emit(t, reg, test.stage, test.raw, test.expected)
		if got != test.want {
			t.Errorf("test %d: emit %v:\ngot:  %s\nwant: %s", i, test.raw, got, test.want)
		}
	}
}

func TestRegistrationOrder(t *testing.T) {
	b := shader.NewBuilder()
	reg := registry.New(b)
	// Fallback first, then the alternatives from the last one to the first one.
	emit(t, reg, shader.Fragment, []any{"case", []any{"get", "transparent"}, "transparent", []any{"get", "fillColor"}}, colorSet)
	emit(t, reg, shader.Vertex, []any{"match", []any{"get", "lineType"}, "low", []any{"get", "lineWidth"}, "high", 2, 1.5}, numberSet)
	wantAttrs := []string{"vec2 a_fillColor", "float a_transparent", "float a_lineType", "float a_lineWidth"}
	if diff := cmp.Diff(wantAttrs, b.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	wantVaryings := []shader.Varying{
		{Name: "v_fillColor", Type: "vec4", Expression: "unpackColor(a_fillColor)"},
		{Name: "v_transparent", Type: "float", Expression: "a_transparent"},
	}
	if diff := cmp.Diff(wantVaryings, b.Varyings()); diff != "" {
		t.Errorf("varyings mismatch (-want +got):\n%s", diff)
	}
	if got := reg.Category("high"); got != 0 {
		t.Errorf("category of %q is %d but want 0", "high", got)
	}
	if got := reg.Category("low"); got != 1 {
		t.Errorf("category of %q is %d but want 1", "low", got)
	}
}

func TestSingleRegistration(t *testing.T) {
	b := shader.NewBuilder()
	reg := registry.New(b)
	first := emit(t, reg, shader.Vertex, []any{"*", []any{"get", "size"}, []any{"var", "width"}}, numberSet)
	second := emit(t, reg, shader.Vertex, []any{"*", []any{"get", "size"}, []any{"var", "width"}}, numberSet)
	if first != second {
		t.Errorf("same expression emitted as %q and %q", first, second)
	}
	if diff := cmp.Diff([]string{"float a_size"}, b.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"float u_var_width"}, b.Uniforms()); diff != "" {
		t.Errorf("uniforms mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeConflict(t *testing.T) {
	reg := registry.New(shader.NewBuilder())
	emit(t, reg, shader.Vertex, []any{"get", "x"}, numberSet)
	b := builder.New(vars)
	expr, ok := b.Build("fill-color", []any{"get", "x"}, colorSet)
	if !ok {
		t.Fatal(b.Errors())
	}
	_, err := codegen.Emit(reg, shader.Fragment, expr)
	if !errors.Is(err, fmterr.ErrType) {
		t.Errorf("got error %v but want a type error", err)
	}
}

func TestEmitIR(t *testing.T) {
	tests := []struct {
		expr  ir.Expr
		stage shader.Stage
		want  string
	}{
		{expr: irhelper.Widen(irhelper.Builtin("zoom"), ir.ArrayType(3)), want: "vec3(u_zoom)"},
		{expr: irhelper.Call(ir.Atan, ir.NumberType(), irhelper.Number(1)), want: "atan(1.0)"},
		{
			expr: irhelper.Case(ir.ColorType(),
				irhelper.Var("tint", ir.ColorType()),
				irhelper.Var("on", ir.BoolType()), irhelper.Color(color.RGBA{R: 255, A: 0.5})),
			stage: shader.Fragment,
			want:  "((u_var_on > 0.0) ? vec4(0.5, 0.0, 0.0, 0.5) : unpackColor(u_var_tint))",
		},
		{
			expr: irhelper.Call(ir.Equal, ir.BoolType(), irhelper.Get("kind", ir.StringType()), irhelper.String("road")),
			want: "(a_kind == 0.0)",
		},
	}
	for i, test := range tests {
		b := shader.NewBuilder()
		got, err := codegen.Emit(registry.New(b), test.stage, test.expr)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got != test.want {
			t.Errorf("test %d:\ngot:  %s\nwant: %s", i, got, test.want)
		}
	}
}

func TestEmitIRErrors(t *testing.T) {
	reg := registry.New(shader.NewBuilder())
	_, err := codegen.Emit(reg, shader.Vertex, irhelper.Number(math.Inf(1)))
	if !errors.Is(err, fmterr.ErrStructure) {
		t.Errorf("got error %v but want a structural error", err)
	}
	_, err = codegen.Emit(reg, shader.Vertex, irhelper.Builtin("pitch"))
	if err == nil {
		t.Error("expected an internal error for an unknown builtin")
	}
	_, err = codegen.Emit(reg, shader.Vertex, irhelper.Call(ir.InvalidOp, ir.NumberType()))
	if err == nil {
		t.Error("expected an internal error for an invalid operator")
	}
}
