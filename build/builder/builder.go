// Copyright 2024 Google LLC
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

// Package builder parses style expressions and resolves their types
// into the intermediate representation.
//
// An expression is built in two passes:
//  1. the raw value decoded from the style (numbers, strings, booleans and
//     arrays) is processed into a tree of nodes. Structural errors, like
//     unknown operators or wrong number of operands, are reported.
//  2. the type of every node is resolved, starting from the set of types
//     accepted by the slot of the expression (for example, a color for the
//     color of a symbol), to build the typed IR.
//
// Building an expression has no side effect: references to feature properties
// and style variables are only registered when code is generated.
package builder

import (
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
)

// Builder builds the expressions of a style.
type Builder struct {
	errs fmterr.Errors
	app  *fmterr.Appender
	vars map[string]any
	// size is the number of components of arrays with no explicit size
	// in the expression being built.
	size int
}

var _ resolveScope = (*Builder)(nil)

// New returns a builder given the values of the style variables.
// The type of a variable is inferred from its value.
func New(vars map[string]any) *Builder {
	b := &Builder{vars: vars}
	b.app = b.errs.NewAppender()
	return b
}

// Err returns the appender collecting the errors of all the expressions built.
func (b *Builder) Err() *fmterr.Appender {
	return b.app
}

func (b *Builder) variable(name string) (any, bool) {
	val, ok := b.vars[name]
	return val, ok
}

func (b *Builder) arraySize() int {
	return b.size
}

// Build an expression given its raw value and the set of types accepted by the context.
// Errors are appended to the builder appender and false is returned.
// Arrays with no explicit size have ir.DefaultArraySize components.
func (b *Builder) Build(src fmterr.Path, raw any, expected ir.TypeSet) (ir.Expr, bool) {
	return b.build(src, raw, expected, ir.DefaultArraySize)
}

// BuildType builds an expression which must be of a given type.
// Numbers are widened to the type, and feature properties, variables and
// number[] hints take the size of the type when it is an array.
func (b *Builder) BuildType(src fmterr.Path, raw any, want ir.Type) (ir.Expr, bool) {
	size := ir.DefaultArraySize
	if want.Kind == irkind.NumberArray {
		size = want.Size
	}
	expr, ok := b.build(src, raw, want.Set(), size)
	if !ok {
		return nil, false
	}
	if !expr.Type().Equal(want) {
		return nil, b.app.Appendf(src, fmterr.ErrType, "cannot use a value of type %s as %s", expr.Type(), want)
	}
	return expr, true
}

func (b *Builder) build(src fmterr.Path, raw any, expected ir.TypeSet, size int) (ir.Expr, bool) {
	b.size = size
	node, ok := processExpr(b, src, raw)
	if !ok {
		return nil, false
	}
	return buildExpr(b, node, expected)
}

// Errors returns the errors collected by the builder as a single error.
// It returns nil if no error occurred.
func (b *Builder) Errors() error {
	return b.errs.ToError()
}
