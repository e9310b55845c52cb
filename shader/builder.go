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

// Package shader accumulates the declarations and the expressions
// used by an external stage to assemble vertex and fragment shaders.
package shader

import (
	"slices"

	"github.com/gx-org/glstyle/base/ordered"
	"github.com/pkg/errors"
)

// Stage of the pipeline in which an expression is evaluated.
type Stage int

const (
	// Vertex shader stage: feature properties are read from attributes.
	Vertex Stage = iota
	// Fragment shader stage: feature properties are read from varyings.
	Fragment
)

func (s Stage) String() string {
	if s == Fragment {
		return "fragment"
	}
	return "vertex"
}

// Varying passes a value from the vertex shader to the fragment shader.
type Varying struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Expression string `json:"expression"`
}

type functionSet struct {
	funcs []string
}

func (s *functionSet) add(src string) {
	if slices.Contains(s.funcs, src) {
		return
	}
	s.funcs = append(s.funcs, src)
}

// Builder collects declarations and expressions.
// Declarations are unique and ordered by first registration.
type Builder struct {
	uniforms   *ordered.Map[string, string]
	attributes *ordered.Map[string, string]
	varyings   *ordered.Map[string, Varying]

	vertexFunctions   functionSet
	fragmentFunctions functionSet

	symbolSizeExpression         string
	symbolSizeFragmentExpression string
	symbolRotationExpression     string
	symbolOffsetExpression       string
	symbolColorExpression        string
	texCoordExpression           string
	discardExpression            string
	strokeColorExpression        string
	strokeWidthExpression        string
	strokeWidthFragExpression    string
	fillColorExpression          string
	symbolRotateWithView         bool
}

// NewBuilder returns a builder with default expressions.
func NewBuilder() *Builder {
	return &Builder{
		uniforms:   ordered.NewMap[string, string](),
		attributes: ordered.NewMap[string, string](),
		varyings:   ordered.NewMap[string, Varying](),

		symbolSizeExpression:         "vec2(1.0)",
		symbolSizeFragmentExpression: "vec2(1.0)",
		symbolRotationExpression:     "0.0",
		symbolOffsetExpression:       "vec2(0.0)",
		symbolColorExpression:        "vec4(1.0)",
		texCoordExpression:           "vec4(0.0, 0.0, 1.0, 1.0)",
		discardExpression:            "false",
		strokeColorExpression:        "vec4(1.0)",
		strokeWidthExpression:        "1.0",
		strokeWidthFragExpression:    "1.0",
		fillColorExpression:          "vec4(1.0)",
	}
}

func declare(decls *ordered.Map[string, string], what, name, typ string) error {
	prev, loaded := decls.LoadOrStore(name, typ)
	if loaded && prev != typ {
		return errors.Errorf("%s %s already declared with type %s: cannot redeclare it with type %s", what, name, prev, typ)
	}
	return nil
}

// AddUniform declares a uniform.
// Declaring an existing uniform with the same type is a no-op.
func (b *Builder) AddUniform(name, typ string) error {
	return declare(b.uniforms, "uniform", name, typ)
}

// AddAttribute declares an attribute.
// Declaring an existing attribute with the same type is a no-op.
func (b *Builder) AddAttribute(name, typ string) error {
	return declare(b.attributes, "attribute", name, typ)
}

// AddVarying declares a varying and the expression, evaluated in the vertex shader,
// defining its value.
func (b *Builder) AddVarying(name, typ, expression string) error {
	v := Varying{Name: name, Type: typ, Expression: expression}
	prev, loaded := b.varyings.LoadOrStore(name, v)
	if loaded && prev != v {
		return errors.Errorf("varying %s already declared as %s %s = %s: cannot redeclare it as %s %s = %s", name, prev.Type, name, prev.Expression, typ, name, expression)
	}
	return nil
}

// AddVertexShaderFunction adds a helper function to the vertex shader.
func (b *Builder) AddVertexShaderFunction(src string) {
	b.vertexFunctions.add(src)
}

// AddFragmentShaderFunction adds a helper function to the fragment shader.
func (b *Builder) AddFragmentShaderFunction(src string) {
	b.fragmentFunctions.add(src)
}

// AddFunction adds a helper function to the shader of a given stage.
func (b *Builder) AddFunction(stage Stage, src string) {
	if stage == Fragment {
		b.AddFragmentShaderFunction(src)
		return
	}
	b.AddVertexShaderFunction(src)
}

func declarations(decls *ordered.Map[string, string]) []string {
	ds := []string{}
	for name, typ := range decls.Iter() {
		ds = append(ds, typ+" "+name)
	}
	return ds
}

// Uniforms returns the uniform declarations, for example "float u_var_width".
func (b *Builder) Uniforms() []string {
	return declarations(b.uniforms)
}

// Attributes returns the attribute declarations, for example "vec2 a_color".
func (b *Builder) Attributes() []string {
	return declarations(b.attributes)
}

// Varyings returns the varyings.
func (b *Builder) Varyings() []Varying {
	return slices.AppendSeq([]Varying{}, b.varyings.Values())
}

// VertexShaderFunctions returns the helper functions of the vertex shader.
func (b *Builder) VertexShaderFunctions() []string {
	return slices.Clone(b.vertexFunctions.funcs)
}

// FragmentShaderFunctions returns the helper functions of the fragment shader.
func (b *Builder) FragmentShaderFunctions() []string {
	return slices.Clone(b.fragmentFunctions.funcs)
}
