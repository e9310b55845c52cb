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

package glsl_test

import (
	"math"
	"testing"

	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/color"
	"github.com/gx-org/glstyle/glsl"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{val: 1, want: "1.0"},
		{val: -2.5, want: "-2.5"},
		{val: 0, want: "0.0"},
		{val: 0.1, want: "0.1"},
		{val: 65280, want: "65280.0"},
		{val: 1e21, want: "1000000000000000000000.0"},
		{val: 0.0625, want: "0.0625"},
	}
	for _, test := range tests {
		got, err := glsl.Number(test.val)
		if err != nil {
			t.Errorf("Number(%v) returned an error: %v", test.val, err)
			continue
		}
		if got != test.want {
			t.Errorf("Number(%v) = %q but want %q", test.val, got, test.want)
		}
	}
	for _, val := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := glsl.Number(val); err == nil {
			t.Errorf("Number(%v) returned no error", val)
		}
	}
}

func TestLiterals(t *testing.T) {
	arr, err := glsl.Array([]float64{4, 8})
	if err != nil {
		t.Fatal(err)
	}
	if want := "vec2(4.0, 8.0)"; arr != want {
		t.Errorf("Array() = %q but want %q", arr, want)
	}
	col, err := glsl.Color(color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := "vec4(0.2, 0.4, 0.6, 1.0)"; col != want {
		t.Errorf("Color() = %q but want %q", col, want)
	}
	col, err = glsl.Color(color.RGBA{R: 255, G: 127.5, B: 63.75, A: 0.25})
	if err != nil {
		t.Fatal(err)
	}
	if want := "vec4(0.25, 0.125, 0.0625, 0.25)"; col != want {
		t.Errorf("Color() = %q but want %q", col, want)
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		typ           ir.Type
		name, storage string
		storageSize   int
	}{
		{typ: ir.NumberType(), name: "float", storage: "float", storageSize: 1},
		{typ: ir.BoolType(), name: "float", storage: "float", storageSize: 1},
		{typ: ir.StringType(), name: "float", storage: "float", storageSize: 1},
		{typ: ir.ColorType(), name: "vec4", storage: "vec2", storageSize: 2},
		{typ: ir.ArrayType(3), name: "vec3", storage: "vec3", storageSize: 3},
		{typ: ir.ArrayType(4), name: "vec4", storage: "vec4", storageSize: 4},
	}
	for _, test := range tests {
		if got := glsl.TypeName(test.typ); got != test.name {
			t.Errorf("TypeName(%s) = %q but want %q", test.typ, got, test.name)
		}
		if got := glsl.StorageTypeName(test.typ); got != test.storage {
			t.Errorf("StorageTypeName(%s) = %q but want %q", test.typ, got, test.storage)
		}
		if got := glsl.StorageSize(test.typ); got != test.storageSize {
			t.Errorf("StorageSize(%s) = %d but want %d", test.typ, got, test.storageSize)
		}
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{got: glsl.AttributeName("population"), want: "a_population"},
		{got: glsl.UniformNameForVariable("width"), want: "u_var_width"},
		{got: glsl.VaryingName("attr0"), want: "v_attr0"},
		{got: glsl.AttributeName("line-type"), want: "a_line_x2Dtype"},
		{got: glsl.UniformNameForVariable("my var"), want: "u_var_my_x20var"},
		{got: glsl.Mangle("é"), want: "_xE9"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("got %q but want %q", test.got, test.want)
		}
	}
}
