// Package ingestion validates and decodes scanned-text JSON documents.
//
// A scanned-text document is an array of books. Each book object must carry
// Title, ISBN and Content properties, Content must be an array, and each line
// object in it must carry Page, Line and Text properties.
//
// Documents are checked against a JSON Schema before decoding. Violations are
// reported as core.ErrMalformedInput, wrapping the specific kind:
//   - core.ErrNotArray
//   - core.ErrMissingBookField
//   - core.ErrContentNotArray
//   - core.ErrMissingLineField
//
// Only the first violation in document order is reported.
package ingestion
