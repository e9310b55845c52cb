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

package registry_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/shader"
)

func TestAttribute(t *testing.T) {
	b := shader.NewBuilder()
	reg := registry.New(b)
	refs := []struct {
		name  string
		typ   ir.Type
		stage shader.Stage
		want  string
	}{
		{name: "size", typ: ir.ArrayType(4), stage: shader.Vertex, want: "a_size"},
		{name: "color", typ: ir.ColorType(), stage: shader.Fragment, want: "v_color"},
		{name: "size", typ: ir.ArrayType(4), stage: shader.Fragment, want: "v_size"},
		{name: "color", typ: ir.ColorType(), stage: shader.Vertex, want: "a_color"},
		{name: "color", typ: ir.ColorType(), stage: shader.Fragment, want: "v_color"},
		{name: "width", typ: ir.NumberType(), stage: shader.Vertex, want: "a_width"},
	}
	for _, ref := range refs {
		got, err := reg.Attribute("expr", ref.name, ref.typ, ref.stage)
		if err != nil {
			t.Fatalf("cannot register %s: %v", ref.name, err)
		}
		if got != ref.want {
			t.Errorf("Attribute(%q, %s) = %q but want %q", ref.name, ref.stage, got, ref.want)
		}
	}
	wantAttrs := []string{"vec4 a_size", "vec2 a_color", "float a_width"}
	if diff := cmp.Diff(wantAttrs, b.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
	wantVaryings := []shader.Varying{
		{Name: "v_color", Type: "vec4", Expression: "unpackColor(a_color)"},
		{Name: "v_size", Type: "vec4", Expression: "a_size"},
	}
	if diff := cmp.Diff(wantVaryings, b.Varyings()); diff != "" {
		t.Errorf("varyings mismatch (-want +got):\n%s", diff)
	}
	if got := len(b.VertexShaderFunctions()); got != 1 {
		t.Errorf("got %d vertex functions but want 1", got)
	}
	if got := reg.NumAttributes(); got != 3 {
		t.Errorf("got %d attributes but want 3", got)
	}
}

func TestVariable(t *testing.T) {
	b := shader.NewBuilder()
	reg := registry.New(b)
	for range 2 {
		got, err := reg.Variable("expr", "width", ir.NumberType())
		if err != nil {
			t.Fatal(err)
		}
		if want := "u_var_width"; got != want {
			t.Errorf("Variable() = %q but want %q", got, want)
		}
	}
	if _, err := reg.Variable("expr", "fill", ir.ColorType()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"float u_var_width", "vec2 u_var_fill"}, b.Uniforms()); diff != "" {
		t.Errorf("uniforms mismatch (-want +got):\n%s", diff)
	}
}

func TestConflicts(t *testing.T) {
	reg := registry.New(shader.NewBuilder())
	if _, err := reg.Attribute("a", "x", ir.NumberType(), shader.Vertex); err != nil {
		t.Fatal(err)
	}
	_, err := reg.Attribute("fill-color", "x", ir.ColorType(), shader.Fragment)
	if !errors.Is(err, fmterr.ErrType) {
		t.Errorf("conflicting attribute type: got error %v but want a type error", err)
	}
	if _, err := reg.Variable("b", "v", ir.StringType()); err != nil {
		t.Fatal(err)
	}
	_, err = reg.Variable("c", "v", ir.BoolType())
	if !errors.Is(err, fmterr.ErrType) {
		t.Errorf("conflicting variable type: got error %v but want a type error", err)
	}
	// "a-b" and "a_x2Db" are both mangled into a_a_x2Db.
	if _, err := reg.Attribute("d", "a-b", ir.NumberType(), shader.Vertex); err != nil {
		t.Fatal(err)
	}
	_, err = reg.Attribute("e", "a_x2Db", ir.NumberType(), shader.Vertex)
	if !errors.Is(err, fmterr.ErrResolution) {
		t.Errorf("colliding identifiers: got error %v but want a resolution error", err)
	}
}

func TestCategories(t *testing.T) {
	reg := registry.New(shader.NewBuilder())
	for i, s := range []string{"green", "red", "green", "blue"} {
		want := []int{0, 1, 0, 2}[i]
		if got := reg.Category(s); got != want {
			t.Errorf("Category(%q) = %d but want %d", s, got, want)
		}
	}
	cats := reg.Freeze()
	if got := reg.Category("yellow"); got != registry.Unknown {
		t.Errorf("Category(%q) after freeze = %d but want %d", "yellow", got, registry.Unknown)
	}
	if got := cats.Index("red"); got != 1 {
		t.Errorf("Index(%q) = %d but want 1", "red", got)
	}
	if got := cats.Size(); got != 3 {
		t.Errorf("got %d categories but want 3", got)
	}
}
