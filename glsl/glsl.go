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

// Package glsl formats GLSL literals, type names and identifiers.
package glsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/color"
	"github.com/pkg/errors"
)

// Prefixes of the identifiers generated for style references.
const (
	AttributePrefix = "a_"
	VariablePrefix  = "u_var_"
	VaryingPrefix   = "v_"
)

// Number formats a number as a GLSL float literal.
// The literal always has a fractional part.
func Number(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.Errorf("cannot represent %v in GLSL", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

// Vector returns the GLSL constructor of a vector.
func Vector(comps []string) string {
	return fmt.Sprintf("vec%d(%s)", len(comps), strings.Join(comps, ", "))
}

// Array formats an array of numbers as a vecN literal.
func Array(vals []float64) (string, error) {
	comps := make([]string, len(vals))
	for i, v := range vals {
		var err error
		if comps[i], err = Number(v); err != nil {
			return "", err
		}
	}
	return Vector(comps), nil
}

// Color formats a color as a premultiplied vec4 literal with channels in [0, 1].
func Color(c color.RGBA) (string, error) {
	p := c.Premultiplied()
	return Array(p[:])
}

// Bool formats a boolean literal.
func Bool(b bool) string {
	return strconv.FormatBool(b)
}

// TypeName returns the GLSL type used for a value in an expression.
func TypeName(typ ir.Type) string {
	switch typ.Kind {
	case irkind.Color:
		return "vec4"
	case irkind.NumberArray:
		return fmt.Sprintf("vec%d", typ.Size)
	}
	return "float"
}

// StorageTypeName returns the GLSL type used to store a value in an attribute or a uniform.
// Colors are packed into a vec2.
func StorageTypeName(typ ir.Type) string {
	if typ.Kind == irkind.Color {
		return "vec2"
	}
	return TypeName(typ)
}

// StorageSize returns the number of floats used to store a value in an attribute or a uniform.
func StorageSize(typ ir.Type) int {
	switch typ.Kind {
	case irkind.Color:
		return 2
	case irkind.NumberArray:
		return typ.Size
	}
	return 1
}

// Mangle returns a valid GLSL identifier suffix for a name.
// Characters outside of [A-Za-z0-9_] are replaced by _x<HEX>.
func Mangle(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "_x%X", r)
		}
	}
	return b.String()
}

// AttributeName returns the name of the attribute of a feature property.
func AttributeName(name string) string {
	return AttributePrefix + Mangle(name)
}

// UniformNameForVariable returns the name of the uniform of a style variable.
func UniformNameForVariable(name string) string {
	return VariablePrefix + Mangle(name)
}

// VaryingName returns the name of the varying of a feature property.
func VaryingName(name string) string {
	return VaryingPrefix + Mangle(name)
}
