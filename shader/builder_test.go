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

package shader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/shader"
)

func TestDefaults(t *testing.T) {
	b := shader.NewBuilder()
	got := map[string]string{
		"size":         b.SymbolSizeExpression(),
		"sizeFragment": b.SymbolSizeFragmentExpression(),
		"rotation":     b.SymbolRotationExpression(),
		"offset":       b.SymbolOffsetExpression(),
		"color":        b.SymbolColorExpression(),
		"texCoord":     b.TextureCoordinateExpression(),
		"discard":      b.FragmentDiscardExpression(),
		"strokeColor":  b.StrokeColorExpression(),
		"strokeWidth":  b.StrokeWidthExpression(),
		"strokeFrag":   b.StrokeWidthFragmentExpression(),
		"fillColor":    b.FillColorExpression(),
	}
	want := map[string]string{
		"size":         "vec2(1.0)",
		"sizeFragment": "vec2(1.0)",
		"rotation":     "0.0",
		"offset":       "vec2(0.0)",
		"color":        "vec4(1.0)",
		"texCoord":     "vec4(0.0, 0.0, 1.0, 1.0)",
		"discard":      "false",
		"strokeColor":  "vec4(1.0)",
		"strokeWidth":  "1.0",
		"strokeFrag":   "1.0",
		"fillColor":    "vec4(1.0)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default expressions mismatch (-want +got):\n%s", diff)
	}
	if b.SymbolRotateWithView() {
		t.Errorf("symbol rotates with view by default")
	}
	if diff := cmp.Diff([]string{}, b.Uniforms()); diff != "" {
		t.Errorf("uniforms mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]shader.Varying{}, b.Varyings()); diff != "" {
		t.Errorf("varyings mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarations(t *testing.T) {
	b := shader.NewBuilder()
	for _, decl := range []struct{ name, typ string }{
		{"u_var_width", "float"},
		{"u_var_color", "vec2"},
		{"u_var_width", "float"},
	} {
		if err := b.AddUniform(decl.name, decl.typ); err != nil {
			t.Fatal(err)
		}
	}
	if err := b.AddUniform("u_var_width", "vec2"); err == nil {
		t.Errorf("redeclaring a uniform with a different type returned no error")
	}
	if diff := cmp.Diff([]string{"float u_var_width", "vec2 u_var_color"}, b.Uniforms()); diff != "" {
		t.Errorf("uniforms mismatch (-want +got):\n%s", diff)
	}

	if err := b.AddAttribute("a_size", "vec4"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddAttribute("a_size", "vec4"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddAttribute("a_size", "float"); err == nil {
		t.Errorf("redeclaring an attribute with a different type returned no error")
	}
	if diff := cmp.Diff([]string{"vec4 a_size"}, b.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}

	if err := b.AddVarying("v_color", "vec4", "unpackColor(a_color)"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddVarying("v_color", "vec4", "unpackColor(a_color)"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddVarying("v_color", "float", "a_color"); err == nil {
		t.Errorf("redeclaring a varying with a different type returned no error")
	}
	wantVaryings := []shader.Varying{{Name: "v_color", Type: "vec4", Expression: "unpackColor(a_color)"}}
	if diff := cmp.Diff(wantVaryings, b.Varyings()); diff != "" {
		t.Errorf("varyings mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctions(t *testing.T) {
	b := shader.NewBuilder()
	b.AddFunction(shader.Vertex, "float f() { return 1.0; }")
	b.AddVertexShaderFunction("float f() { return 1.0; }")
	b.AddFunction(shader.Fragment, "float g() { return 2.0; }")
	b.AddFunction(shader.Fragment, "float f() { return 1.0; }")
	if diff := cmp.Diff([]string{"float f() { return 1.0; }"}, b.VertexShaderFunctions()); diff != "" {
		t.Errorf("vertex functions mismatch (-want +got):\n%s", diff)
	}
	want := []string{"float g() { return 2.0; }", "float f() { return 1.0; }"}
	if diff := cmp.Diff(want, b.FragmentShaderFunctions()); diff != "" {
		t.Errorf("fragment functions mismatch (-want +got):\n%s", diff)
	}
}
