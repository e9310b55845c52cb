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

package ir

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gx-org/glstyle/build/ir/irkind"
)

// DefaultArraySize is the number of components of an array
// when its size cannot be inferred (for example, a feature property with a number[] hint).
const DefaultArraySize = 4

// Type is the resolved type of an expression.
type Type struct {
	Kind irkind.Kind
	// Size is the number of components of a NumberArray.
	// It is 0 for all other kinds.
	Size int
}

// InvalidType returns an invalid type.
func InvalidType() Type { return Type{} }

// NumberType returns the type of a scalar.
func NumberType() Type { return Type{Kind: irkind.Number} }

// BoolType returns the type of a boolean.
func BoolType() Type { return Type{Kind: irkind.Boolean} }

// StringType returns the type of a string category.
func StringType() Type { return Type{Kind: irkind.String} }

// ColorType returns the type of a color.
func ColorType() Type { return Type{Kind: irkind.Color} }

// ArrayType returns the type of an array of numbers given its size.
func ArrayType(size int) Type { return Type{Kind: irkind.NumberArray, Size: size} }

// TypeFromKind returns a type given its kind.
// Arrays get the default array size.
func TypeFromKind(kind irkind.Kind) Type {
	if kind == irkind.NumberArray {
		return ArrayType(DefaultArraySize)
	}
	return Type{Kind: kind}
}

// IsValid returns true if the type is valid.
func (t Type) IsValid() bool {
	return t.Kind != irkind.Invalid
}

// Equal returns true if other is the same type.
func (t Type) Equal(other Type) bool {
	return t == other
}

// Set returns the type set containing only the kind of the type.
func (t Type) Set() TypeSet {
	return SetOf(t.Kind)
}

// NumComponents returns the number of float components used
// to represent a value of this type in an expression.
func (t Type) NumComponents() int {
	switch t.Kind {
	case irkind.Color:
		return 4
	case irkind.NumberArray:
		return t.Size
	case irkind.Invalid:
		return 0
	}
	return 1
}

// String representation of the type.
func (t Type) String() string {
	if t.Kind == irkind.NumberArray {
		return fmt.Sprintf("number[%d]", t.Size)
	}
	return t.Kind.String()
}

// TypeSet is a set of kinds a value can take.
// Type sets are used while inferring the type of an expression.
type TypeSet uint8

// AnySet accepts all kinds.
const AnySet = TypeSet(1<<irkind.Max-1) &^ 1

// SetOf returns a set of kinds.
func SetOf(kinds ...irkind.Kind) TypeSet {
	var s TypeSet
	for _, k := range kinds {
		if k == irkind.Invalid {
			continue
		}
		s |= 1 << k
	}
	return s
}

// Has returns true if the set contains a kind.
func (s TypeSet) Has(k irkind.Kind) bool {
	return s&(1<<k) != 0
}

// Intersect returns the kinds present in both sets.
func (s TypeSet) Intersect(other TypeSet) TypeSet {
	return s & other
}

// Union returns the kinds present in either sets.
func (s TypeSet) Union(other TypeSet) TypeSet {
	return s | other
}

// Empty returns true if the set contains no kind.
func (s TypeSet) Empty() bool {
	return s == 0
}

// Unique returns the kind of the set if the set contains exactly one kind.
func (s TypeSet) Unique() (irkind.Kind, bool) {
	if bits.OnesCount8(uint8(s)) != 1 {
		return irkind.Invalid, false
	}
	return irkind.Kind(bits.TrailingZeros8(uint8(s))), true
}

// Pick returns the kind with the highest priority in the set.
func (s TypeSet) Pick() irkind.Kind {
	if s.Empty() {
		return irkind.Invalid
	}
	return irkind.Kind(bits.TrailingZeros8(uint8(s)))
}

// Kinds returns all the kinds in the set, ordered by priority.
func (s TypeSet) Kinds() []irkind.Kind {
	var kinds []irkind.Kind
	for k := irkind.Number; k < irkind.Max; k++ {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String representation of the set.
func (s TypeSet) String() string {
	if s == AnySet {
		return "any"
	}
	kinds := s.Kinds()
	if len(kinds) == 0 {
		return "none"
	}
	ss := make([]string, len(kinds))
	for i, k := range kinds {
		ss[i] = k.String()
	}
	return strings.Join(ss, "|")
}
