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

package numeric_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/base/numeric"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		val  any
		want float64
		ok   bool
	}{
		{val: 1.5, want: 1.5, ok: true},
		{val: float32(0.25), want: 0.25, ok: true},
		{val: 3, want: 3, ok: true},
		{val: int64(-7), want: -7, ok: true},
		{val: uint8(255), want: 255, ok: true},
		{val: json.Number("12.5"), want: 12.5, ok: true},
		{val: json.Number("abc")},
		{val: "3"},
		{val: true},
		{val: nil},
	}
	for i, test := range tests {
		got, ok := numeric.Float(test.val)
		if ok != test.ok || got != test.want {
			t.Errorf("test %d: Float(%#v) = (%v, %v) but want (%v, %v)", i, test.val, got, ok, test.want, test.ok)
		}
	}
}

func TestFloats(t *testing.T) {
	tests := []struct {
		val  any
		want []float64
		ok   bool
	}{
		{val: []any{12, 18.5}, want: []float64{12, 18.5}, ok: true},
		{val: []int{1, 2, 3}, want: []float64{1, 2, 3}, ok: true},
		{val: []float32{0.5}, want: []float64{0.5}, ok: true},
		{val: []any{}, want: []float64{}, ok: true},
		{val: []any{1, "a"}},
		{val: "1,2"},
	}
	for i, test := range tests {
		got, ok := numeric.Floats(test.val)
		if ok != test.ok {
			t.Errorf("test %d: Floats(%#v) returned ok=%v but want %v", i, test.val, ok, test.ok)
			continue
		}
		if !cmp.Equal(got, test.want) {
			t.Errorf("test %d: Floats(%#v) = %v but want %v", i, test.val, got, test.want)
		}
	}
}
