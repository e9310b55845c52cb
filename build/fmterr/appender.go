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

type (
	// ErrAppender accumulates errors.
	ErrAppender interface {
		// Err returns the accumulator.
		Err() *Appender
	}

	// Appender appends errors to a set.
	// Appending functions return false so that callers can write:
	//
	//	return nil, app.Appendf(path, ErrType, "...")
	Appender struct {
		errors *Errors
	}
)

// Append an error to the list of errors.
func (app *Appender) Append(err error) bool {
	return app.errors.Append(err)
}

// AppendAt appends an existing error at a given position.
func (app *Appender) AppendAt(path Path, kind error, err error) bool {
	return app.Append(Position(path, kind, err))
}

// Appendf appends an error at a position.
func (app *Appender) Appendf(path Path, kind error, format string, a ...any) bool {
	return app.Append(Errorf(path, kind, format, a...))
}

// AppendInternalf appends an internal error at a position.
func (app *Appender) AppendInternalf(path Path, format string, a ...any) bool {
	return app.Append(Internalf(path, format, a...))
}

// Errors returns the set of errors or nil if no errors has been appended.
func (app *Appender) Errors() *Errors {
	if app.errors.Empty() {
		return nil
	}
	return app.errors
}

// Empty returns true if no errors has been appended.
func (app *Appender) Empty() bool {
	return app.errors.Empty()
}

// String representation of the error.
func (app *Appender) String() string {
	return app.errors.String()
}
