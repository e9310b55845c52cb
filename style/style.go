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

// Package style compiles style descriptions into GLSL expressions
// and the tables the renderer needs to feed them.
//
// A style is a set of expressions, one per visual channel (size, color,
// width, ...). Every expression is a literal or an array whose first
// element names an operator, for example:
//
//	symbol:
//	  symbolType: circle
//	  size: [interpolate, [linear], [get, population], 0, 4, 1000, 12]
//	  color: [match, [get, kind], park, green, gray]
package style

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// Style describes how features are drawn.
	// Channels are raw expressions as decoded from JSON or YAML.
	Style struct {
		// Filter is a boolean expression. Fragments of features for which
		// the filter is false are discarded.
		Filter any `json:"filter,omitempty" yaml:"filter,omitempty"`
		// Symbol draws a symbol at the position of point features.
		Symbol *Symbol `json:"symbol,omitempty" yaml:"symbol,omitempty"`

		StrokeColor any `json:"stroke-color,omitempty" yaml:"stroke-color,omitempty"`
		StrokeWidth any `json:"stroke-width,omitempty" yaml:"stroke-width,omitempty"`
		FillColor   any `json:"fill-color,omitempty" yaml:"fill-color,omitempty"`

		// Variables are the initial values of the style variables.
		// The type of a variable is given by its value.
		Variables map[string]any `json:"variables,omitempty" yaml:"variables,omitempty"`
	}

	// Symbol is a quad drawn at the position of a feature.
	Symbol struct {
		// SymbolType is one of square, image, circle or triangle.
		SymbolType string `json:"symbolType" yaml:"symbolType"`
		// Size of the symbol in pixels: a number or an array [width, height].
		Size any `json:"size,omitempty" yaml:"size,omitempty"`
		// Color of the symbol. Defaults to white.
		Color any `json:"color,omitempty" yaml:"color,omitempty"`
		// Opacity in [0, 1]. Defaults to 1.
		Opacity any `json:"opacity,omitempty" yaml:"opacity,omitempty"`
		// Rotation in radians. Defaults to 0.
		Rotation any `json:"rotation,omitempty" yaml:"rotation,omitempty"`
		// RotateWithView rotates the symbol with the map.
		RotateWithView bool `json:"rotateWithView,omitempty" yaml:"rotateWithView,omitempty"`
		// Offset of the symbol in pixels. Defaults to [0, 0].
		Offset any `json:"offset,omitempty" yaml:"offset,omitempty"`
		// TextureCoord is the part of the texture used by the symbol,
		// as [u0, v0, u1, v1]. Defaults to [0, 0, 1, 1].
		TextureCoord any `json:"textureCoord,omitempty" yaml:"textureCoord,omitempty"`
		// Src is the path of the image of an image symbol.
		Src string `json:"src,omitempty" yaml:"src,omitempty"`
	}
)

// Load decodes a style from JSON or YAML.
func Load(data []byte) (*Style, error) {
	s := &Style{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "cannot decode style")
	}
	return s, nil
}

// HasSymbol returns true if the style draws symbols.
func (s *Style) HasSymbol() bool {
	return s.Symbol != nil
}

// HasStroke returns true if the style draws strokes.
func (s *Style) HasStroke() bool {
	return s.StrokeColor != nil || s.StrokeWidth != nil
}

// HasFill returns true if the style fills polygons.
func (s *Style) HasFill() bool {
	return s.FillColor != nil
}
