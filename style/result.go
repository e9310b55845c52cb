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
package style

import (
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/shader"
)

type (
	// Attribute is a feature property read by the vertex shader.
	Attribute struct {
		// Name of the feature property.
		Name string `json:"name"`
		// Size is the number of floats returned by the callback.
		Size int `json:"size"`
		// Type of the property in the style.
		Type ir.Type `json:"-"`
		// Callback extracts the value of the attribute from a feature.
		// It never fails and can be called concurrently.
		Callback func(Feature) []float64 `json:"-"`
	}

	// Provider provides the value of a uniform.
	Provider interface {
		// Value returns the current value of the uniform.
		Value() []float64
	}

	// Uniform is a style variable read by the shaders.
	Uniform struct {
		// Name of the uniform in the shaders.
		Name string `json:"name"`
		// Variable is the name of the style variable.
		Variable string `json:"variable"`
		// Type of the variable in the style.
		Type     ir.Type  `json:"-"`
		Provider Provider `json:"-"`
	}

	// Result of the compilation of a style.
	Result struct {
		// Builder stores the declarations and expressions of the shaders.
		Builder *shader.Builder
		// Attributes in the order of their declarations in the builder.
		Attributes []Attribute
		// Uniforms in the order of their declarations in the builder.
		Uniforms []Uniform
		// Textures maps sampler uniforms to the source of their image.
		Textures map[string]string
		// Variables is the store read by uniform providers.
		Variables *Variables
		// Categories maps strings to the numbers used in the shaders.
		Categories *registry.Categories

		HasSymbol bool
		HasStroke bool
		HasFill   bool
	}
)

// Uniform returns a uniform given its name in the shaders.
func (r *Result) Uniform(name string) (*Uniform, bool) {
	for i := range r.Uniforms {
		if r.Uniforms[i].Name == name {
			return &r.Uniforms[i], true
		}
	}
	return nil, false
}

// Attribute returns an attribute given the name of its feature property.
func (r *Result) Attribute(name string) (*Attribute, bool) {
	for i := range r.Attributes {
		if r.Attributes[i].Name == name {
			return &r.Attributes[i], true
		}
	}
	return nil, false
}

// Extract returns the values of all the attributes of a feature,
// in the order of the attributes.
func (r *Result) Extract(f Feature) [][]float64 {
	vals := make([][]float64, len(r.Attributes))
	for i, attr := range r.Attributes {
		vals[i] = attr.Callback(f)
	}
	return vals
}

type variableProvider struct {
	vars *Variables
	name string
	enc  encoder
}

var _ Provider = (*variableProvider)(nil)

func (p *variableProvider) Value() []float64 {
	val, ok := p.vars.Get(p.name)
	return p.enc.encode(val, ok)
}

func newAttribute(attr *registry.Attribute, cats *registry.Categories) Attribute {
	enc := encoder{typ: attr.Type, cats: cats}
	name := attr.Name
	return Attribute{
		Name: name,
		Size: enc.size(),
		Type: attr.Type,
		Callback: func(f Feature) []float64 {
			val, ok := f.Get(name)
			return enc.encode(val, ok)
		},
	}
}

func newUniform(v *registry.Variable, vars *Variables, cats *registry.Categories) Uniform {
	return Uniform{
		Name:     v.Ident,
		Variable: v.Name,
		Type:     v.Type,
		Provider: &variableProvider{
			vars: vars,
			name: v.Name,
			enc:  encoder{typ: v.Type, cats: cats},
		},
	}
}
