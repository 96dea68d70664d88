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

import "errors"

// Malformed input errors
var (
	// ErrMalformedInput indicates scanned text failed structural validation.
	// Every validation failure wraps it.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNotArray indicates the top-level value is not an array of books.
	ErrNotArray = errors.New("scanned text must be an array")

	// ErrMissingBookField indicates a book object lacks a required property.
	ErrMissingBookField = errors.New("book object is missing a required property")

	// ErrContentNotArray indicates a book's Content property is not an array.
	ErrContentNotArray = errors.New(`"Content" property of each book object must be an array`)

	// ErrMissingLineField indicates a line object lacks a required property.
	ErrMissingLineField = errors.New("line object is missing a required property")
)
