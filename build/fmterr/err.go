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

package fmterr

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

// Kinds of compile errors. All of them are fatal to a compilation.
// Use errors.Is to test the kind of an error returned by the compiler.
var (
	// ErrType is returned when the type of an operand is not accepted by
	// its operator, or when a name is referenced with conflicting types.
	ErrType = errors.New("type error")
	// ErrStructure is returned for unknown operators, wrong number of
	// operands, missing fallbacks and malformed style blocks.
	ErrStructure = errors.New("structural error")
	// ErrResolution is returned when a variable, a color or a category
	// cannot be resolved.
	ErrResolution = errors.New("resolution error")
)

type (
	// ErrorWithPos is an error attached to a position in a style description.
	ErrorWithPos interface {
		error
		Path() Path
		Kind() error
		Err() error
	}

	errorWithPos struct {
		path Path
		kind error
		err  error
	}
)

// Position adds style position information to an error.
func Position(path Path, kind error, err error) ErrorWithPos {
	return errorWithPos{
		path: path,
		kind: kind,
		err:  err,
	}
}

// Errorf returns a formatted compiler error for the user.
func Errorf(path Path, kind error, format string, a ...any) error {
	return Position(path, kind, errors.Errorf(format, a...))
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	return fmt.Errorf("glstyle internal error. This is a bug in glstyle. Please report it. Error:\n%+v", err)
}

// Internalf returns a formatted internal error.
func Internalf(path Path, format string, a ...any) error {
	return Internal(Position(path, nil, errors.Errorf(format, a...)))
}

// Error returns a string description of the error.
func (err errorWithPos) Error() (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s = fmt.Sprintf("recovered from panic when building error message: %T:\n%v", err.err, string(debug.Stack()))
	}()
	return err.path.String() + ": " + err.err.Error()
}

// Unwrap the error.
func (err errorWithPos) Unwrap() error {
	return err.err
}

// Is reports if the error is of a given kind.
func (err errorWithPos) Is(target error) bool {
	return err.kind != nil && target == err.kind
}

// Format writes the error into the state of the formatter.
func (err errorWithPos) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}

func (err errorWithPos) Path() Path {
	return err.path
}

func (err errorWithPos) Kind() error {
	return err.kind
}

func (err errorWithPos) Err() error {
	return err.err
}
