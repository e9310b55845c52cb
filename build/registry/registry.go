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

// Package registry tracks the feature properties and the style variables
// referenced by a style and declares them in a shader builder.
//
// A registry is owned by one compilation. Every reference is registered once:
// later references must have the same type.
package registry

import (
	"iter"

	"github.com/gx-org/glstyle/base/ordered"
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/color"
	"github.com/gx-org/glstyle/glsl"
	"github.com/gx-org/glstyle/shader"
)

type (
	// Attribute is a feature property read by a shader.
	Attribute struct {
		// Name of the property.
		Name string
		// Ident is the name of the attribute in the shader.
		Ident string
		// Varying is the name of the varying, or an empty string if the
		// property is not used in the fragment shader.
		Varying string
		Type    ir.Type
	}

	// Variable is a style variable read by a shader.
	Variable struct {
		// Name of the variable.
		Name string
		// Ident is the name of the uniform in the shader.
		Ident string
		Type  ir.Type
	}

	// Registry of the references of a style.
	Registry struct {
		builder    *shader.Builder
		attributes *ordered.Map[string, *Attribute]
		variables  *ordered.Map[string, *Variable]
		// idents maps GLSL identifiers to the name they have been generated from.
		idents     map[string]string
		categories *Categories
	}
)

// New returns a new registry declaring references in a builder.
func New(b *shader.Builder) *Registry {
	return &Registry{
		builder:    b,
		attributes: ordered.NewMap[string, *Attribute](),
		variables:  ordered.NewMap[string, *Variable](),
		idents:     make(map[string]string),
		categories: newCategories(),
	}
}

// Builder returns the shader builder in which references are declared.
func (r *Registry) Builder() *shader.Builder {
	return r.builder
}

func (r *Registry) claimIdent(src fmterr.Path, ident, name string) error {
	prev, ok := r.idents[ident]
	if ok && prev != name {
		return fmterr.Errorf(src, fmterr.ErrResolution, "%q and %q are both represented by %s in the shader", prev, name, ident)
	}
	r.idents[ident] = name
	return nil
}

func checkType(src fmterr.Path, what, name string, prev, typ ir.Type) error {
	if prev.Equal(typ) {
		return nil
	}
	return fmterr.Errorf(src, fmterr.ErrType, "%s %q used as %s but already used as %s", what, name, typ, prev)
}

// Attribute registers a reference to a feature property and returns the
// name of the value in the shader of a given stage.
// In the vertex stage, the name of an attribute is returned.
// In the fragment stage, a varying is declared and its name is returned.
func (r *Registry) Attribute(src fmterr.Path, name string, typ ir.Type, stage shader.Stage) (string, error) {
	attr, err := r.registerAttribute(src, name, typ)
	if err != nil {
		return "", err
	}
	if stage == shader.Vertex {
		return attr.Ident, nil
	}
	if attr.Varying != "" {
		return attr.Varying, nil
	}
	varying := glsl.VaryingName(name)
	if err := r.claimIdent(src, varying, name); err != nil {
		return "", err
	}
	expr := attr.Ident
	if typ.Kind == irkind.Color {
		r.builder.AddVertexShaderFunction(color.UnpackFunction)
		expr = color.Unpack(expr)
	}
	if err := r.builder.AddVarying(varying, glsl.TypeName(typ), expr); err != nil {
		return "", fmterr.Position(src, fmterr.ErrType, err)
	}
	attr.Varying = varying
	return varying, nil
}

func (r *Registry) registerAttribute(src fmterr.Path, name string, typ ir.Type) (*Attribute, error) {
	if attr, ok := r.attributes.Load(name); ok {
		return attr, checkType(src, "feature property", name, attr.Type, typ)
	}
	ident := glsl.AttributeName(name)
	if err := r.claimIdent(src, ident, name); err != nil {
		return nil, err
	}
	if err := r.builder.AddAttribute(ident, glsl.StorageTypeName(typ)); err != nil {
		return nil, fmterr.Position(src, fmterr.ErrType, err)
	}
	attr := &Attribute{Name: name, Ident: ident, Type: typ}
	r.attributes.Store(name, attr)
	return attr, nil
}

// Variable registers a reference to a style variable and returns the name
// of its uniform.
func (r *Registry) Variable(src fmterr.Path, name string, typ ir.Type) (string, error) {
	if v, ok := r.variables.Load(name); ok {
		return v.Ident, checkType(src, "variable", name, v.Type, typ)
	}
	ident := glsl.UniformNameForVariable(name)
	if err := r.claimIdent(src, ident, name); err != nil {
		return "", err
	}
	if err := r.builder.AddUniform(ident, glsl.StorageTypeName(typ)); err != nil {
		return "", fmterr.Position(src, fmterr.ErrType, err)
	}
	r.variables.Store(name, &Variable{Name: name, Ident: ident, Type: typ})
	return ident, nil
}

// Category returns the index of a string category.
// The string is registered if it has not been seen before.
// Once the table has been frozen, unknown strings return -1.
func (r *Registry) Category(s string) int {
	return r.categories.register(s)
}

// Freeze the category table and returns it.
func (r *Registry) Freeze() *Categories {
	r.categories.frozen = true
	return r.categories
}

// Attributes returns the registered attributes in order of registration.
func (r *Registry) Attributes() iter.Seq[*Attribute] {
	return r.attributes.Values()
}

// Variables returns the registered variables in order of registration.
func (r *Registry) Variables() iter.Seq[*Variable] {
	return r.variables.Values()
}

// NumAttributes returns the number of registered attributes.
func (r *Registry) NumAttributes() int {
	return r.attributes.Size()
}

// NumVariables returns the number of registered variables.
func (r *Registry) NumVariables() int {
	return r.variables.Size()
}
