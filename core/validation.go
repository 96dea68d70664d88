// Copyright 2025 Poiesic Systems
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

package core

import "fmt"

// Required properties, in the order they are checked.
var (
	BookProperties = []string{"Title", "ISBN", "Content"}
	LineProperties = []string{"Page", "Line", "Text"}
)

// NotArrayError reports a top-level value that is not an array.
func NotArrayError() error {
	return fmt.Errorf("%w: %w", ErrMalformedInput, ErrNotArray)
}

// MissingBookFieldError reports a book at index book without the named property.
func MissingBookFieldError(book int, property string) error {
	return fmt.Errorf("%w: %w: book %d must contain a %q property",
		ErrMalformedInput, ErrMissingBookField, book, property)
}

// ContentNotArrayError reports a book whose Content property is not an array.
func ContentNotArrayError(book int) error {
	return fmt.Errorf("%w: %w: book %d", ErrMalformedInput, ErrContentNotArray, book)
}

// MissingLineFieldError reports a line of a book without the named property.
func MissingLineFieldError(book, line int, property string) error {
	return fmt.Errorf("%w: %w: book %d line %d must contain a %q property",
		ErrMalformedInput, ErrMissingLineField, book, line, property)
}
