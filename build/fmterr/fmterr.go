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

// Package fmterr provides helpers to accumulate errors while compiling a style
// and format errors given the position of a value in the style description.
package fmterr

import (
	"strconv"
	"strings"
)

// Path locates a value inside a style description.
// For example, the path of the second operand of the size
// expression of a symbol is "symbol.size[2]".
type Path string

// Key returns the path of a field of an object.
func (p Path) Key(k string) Path {
	if p == "" {
		return Path(k)
	}
	return Path(string(p) + "." + k)
}

// Index returns the path of an element of an array.
func (p Path) Index(i int) Path {
	return Path(string(p) + "[" + strconv.Itoa(i) + "]")
}

// String returns the path as a string.
// The root path is represented by "<style>".
func (p Path) String() string {
	if p == "" {
		return "<style>"
	}
	return string(p)
}

// Parent returns the path of the value containing the value at p.
func (p Path) Parent() Path {
	s := string(p)
	i := strings.LastIndexAny(s, ".[")
	if i < 0 {
		return ""
	}
	return Path(s[:i])
}

// Errorf returns a formatted compiler error positioned at p.
func (p Path) Errorf(kind error, format string, a ...any) error {
	return Errorf(p, kind, format, a...)
}
