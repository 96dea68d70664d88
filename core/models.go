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

import (
	"encoding/json"
	"fmt"
	"math"
)

// Largest magnitude a float64 holds without losing whole-number precision.
const maxExactInt = 1 << 53

// ScannedLine is one OCR'd line of a book.
type ScannedLine struct {
	Page int    `json:"Page"`
	Line int    `json:"Line"`
	Text string `json:"Text"`
}

// UnmarshalJSON decodes a line record. Page and Line may be written as any
// JSON number with a whole value, such as 31 or 31.0.
func (l *ScannedLine) UnmarshalJSON(data []byte) error {
	var raw struct {
		Page json.RawMessage `json:"Page"`
		Line json.RawMessage `json:"Line"`
		Text string          `json:"Text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	page, err := wholeNumber("Page", raw.Page)
	if err != nil {
		return err
	}
	line, err := wholeNumber("Line", raw.Line)
	if err != nil {
		return err
	}

	*l = ScannedLine{Page: page, Line: line, Text: raw.Text}
	return nil
}

func wholeNumber(field string, raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var n json.Number
	if raw[0] == '"' || json.Unmarshal(raw, &n) != nil {
		return 0, fmt.Errorf("%s must be a number, got %s", field, raw)
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return 0, fmt.Errorf("%s must be a whole number, got %s", field, raw)
	}
	return int(f), nil
}

// Book holds the scanned content of a single book.
// Content is not guaranteed to be ordered by page and line.
type Book struct {
	Title   string        `json:"Title"`
	ISBN    string        `json:"ISBN"`
	Content []ScannedLine `json:"Content"`
}

// SearchResult identifies a line containing at least one match.
// A line with several matches still yields a single result.
type SearchResult struct {
	ISBN string `json:"ISBN"`
	Page int    `json:"Page"`
	Line int    `json:"Line"`
}

// Key returns the deduplication key of the result.
func (r SearchResult) Key() LineKey {
	return LineKey{ISBN: r.ISBN, Page: r.Page, Line: r.Line}
}

// SearchResponse is the outcome of searching a set of books for a term.
// SearchTerm echoes the term exactly as the caller supplied it.
type SearchResponse struct {
	SearchTerm string         `json:"SearchTerm"`
	Results    []SearchResult `json:"Results"`
}

// LineKey identifies a line within a book.
type LineKey struct {
	ISBN string
	Page int
	Line int
}

// LineCount returns the total number of scanned lines across books.
func LineCount(books []Book) int {
	n := 0
	for _, b := range books {
		n += len(b.Content)
	}
	return n
}
