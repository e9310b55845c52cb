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

package color

// Packed is a color packed into two floats:
// red and green in the first one, blue and alpha in the second one.
type Packed [2]float64

// Pack packs a color into two floats.
// All channels are first rounded to 8 bits.
func Pack(c RGBA) Packed {
	q := c.Quantize()
	return Packed{
		q.R*256 + q.G,
		q.B*256 + alpha8(c.A),
	}
}

// Slice returns the packed color as a slice.
func (p Packed) Slice() []float64 {
	return []float64{p[0], p[1]}
}

// UnpackFunctionName is the name of the GLSL function unpacking a color.
const UnpackFunctionName = "unpackColor"

// UnpackFunction is the GLSL source of the function unpacking a packed color
// into a premultiplied vec4 color.
const UnpackFunction = `vec4 unpackColor(vec2 packedColor) {
  return vec4(
    floor(packedColor[0] / 256.0) / 255.0,
    mod(packedColor[0], 256.0) / 255.0,
    floor(packedColor[1] / 256.0) / 255.0,
    1.0
  ) * (mod(packedColor[1], 256.0) / 255.0);
}`

// Unpack returns the GLSL expression unpacking a packed color.
func Unpack(expr string) string {
	return UnpackFunctionName + "(" + expr + ")"
}
