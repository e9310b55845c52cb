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

// Package color parses style colors and packs them into two floats
// so that a color fits in a vec2 attribute or uniform.
//
// Colors can be given as:
//   - a CSS color name, for example "red" or "transparent",
//   - a hexadecimal string: "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa",
//   - a functional notation: "rgb(r, g, b)" or "rgba(r, g, b, a)",
//   - an array of numbers: [r, g, b] or [r, g, b, a].
//
// Red, green and blue channels are in [0, 255], alpha is in [0, 1].
package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/gx-org/glstyle/base/numeric"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// RGBA is a color. R, G, B are in [0, 255] and A is in [0, 1].
// Channels of colors given as arrays are not rounded.
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the fully transparent black color.
var Transparent = RGBA{}

// Quantize rounds all the channels to 8 bits.
func (c RGBA) Quantize() RGBA {
	return RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: alpha8(c.A) / 255,
	}
}

// Premultiplied returns the channels normalized in [0, 1]
// with red, green and blue multiplied by alpha.
func (c RGBA) Premultiplied() [4]float64 {
	return [4]float64{
		c.R / 255 * c.A,
		c.G / 255 * c.A,
		c.B / 255 * c.A,
		c.A,
	}
}

// Array returns the channels as an array.
func (c RGBA) Array() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

func channel8(v float64) float64 {
	return math.Min(math.Max(math.Round(v), 0), 255)
}

func alpha8(a float64) float64 {
	return math.Round(math.Min(math.Max(a, 0), 1) * 255)
}

// Parse returns the color of a value: a string or an array of 3 or 4 numbers.
func Parse(v any) (RGBA, error) {
	if s, ok := v.(string); ok {
		return ParseString(s)
	}
	vals, ok := numeric.Floats(v)
	if !ok {
		return RGBA{}, errors.Errorf("cannot use %v (type %T) as a color", v, v)
	}
	return FromArray(vals)
}

// FromArray returns a color from an array of 3 or 4 numbers.
// Alpha defaults to 1.
func FromArray(vals []float64) (RGBA, error) {
	switch len(vals) {
	case 3:
		return RGBA{R: vals[0], G: vals[1], B: vals[2], A: 1}, nil
	case 4:
		return RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
	}
	return RGBA{}, errors.Errorf("a color array requires 3 or 4 components but got %d", len(vals))
}

// IsColorString returns true if a string can be parsed as a color.
func IsColorString(s string) bool {
	_, err := ParseString(s)
	return err == nil
}

// ParseString parses a color string.
func ParseString(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s, s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s, s[len("rgb("):len(s)-1], 3)
	}
	named, ok := colornames.Map[s]
	if !ok {
		return RGBA{}, errors.Errorf("invalid color %q", s)
	}
	return RGBA{
		R: float64(named.R),
		G: float64(named.G),
		B: float64(named.B),
		A: float64(named.A) / 255,
	}, nil
}

func parseHex(s string) (RGBA, error) {
	hex := s[1:]
	var digits []string
	switch len(hex) {
	case 3, 4:
		for _, c := range hex {
			digits = append(digits, string([]rune{c, c}))
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			digits = append(digits, hex[i:i+2])
		}
	default:
		return RGBA{}, errors.Errorf("invalid hexadecimal color %q", s)
	}
	vals := make([]float64, len(digits))
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return RGBA{}, errors.Errorf("invalid hexadecimal color %q", s)
		}
		vals[i] = float64(v)
	}
	c := RGBA{R: vals[0], G: vals[1], B: vals[2], A: 1}
	if len(vals) == 4 {
		c.A = vals[3] / 255
	}
	return c, nil
}

func parseFunctional(s, args string, numArgs int) (RGBA, error) {
	parts := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != numArgs {
		return RGBA{}, errors.Errorf("invalid color %q: want %d components but got %d", s, numArgs, len(parts))
	}
	vals := make([]float64, numArgs)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return RGBA{}, errors.Errorf("invalid color %q: cannot parse component %q", s, part)
		}
		vals[i] = v
	}
	c := RGBA{
		R: channel8(vals[0]),
		G: channel8(vals[1]),
		B: channel8(vals[2]),
		A: 1,
	}
	if numArgs == 4 {
		c.A = math.Min(math.Max(vals[3], 0), 1)
	}
	return c, nil
}
