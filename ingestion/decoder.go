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

package ingestion

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/poiesic/bookscan/core"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var scannedTextSchema string

var defaultValidator = sync.OnceValues(NewValidator)

// Validator checks scanned-text documents against the scanned-text schema.
// It is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the scanned-text schema.
func NewValidator() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(scannedTextSchema))
	if err != nil {
		return nil, fmt.Errorf("compile scanned text schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate reports the first structural violation in data, if any.
func (v *Validator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrMalformedInput, err)
	}
	if result.Valid() {
		return nil
	}
	return firstViolation(result.Errors())
}

// Decode validates data and decodes it into books.
func (v *Validator) Decode(data []byte) ([]core.Book, error) {
	if err := v.Validate(data); err != nil {
		return nil, err
	}

	var books []core.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedInput, err)
	}
	return books, nil
}

// Validate checks data with the default validator.
func Validate(data []byte) error {
	v, err := defaultValidator()
	if err != nil {
		return err
	}
	return v.Validate(data)
}

// Decode validates and decodes data with the default validator.
func Decode(data []byte) ([]core.Book, error) {
	v, err := defaultValidator()
	if err != nil {
		return nil, err
	}
	return v.Decode(data)
}

// DecodeReader reads a whole document from r and decodes it.
func DecodeReader(r io.Reader) ([]core.Book, error) {
	if r == nil {
		return nil, ErrInputRequired
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scanned text: %w", err)
	}
	return Decode(data)
}

// LoadFile reads and decodes the scanned-text document at path.
func LoadFile(path string) ([]core.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scanned text: %w", err)
	}
	return Decode(data)
}
