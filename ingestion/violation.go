package ingestion

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/poiesic/bookscan/core"
	"github.com/xeipuuv/gojsonschema"
)

// Where a violation sits in the document.
type level int

const (
	levelRoot level = iota
	levelBook
	levelContent
	levelLine
)

// violation is a schema error located in the scanned-text document.
type violation struct {
	level    level
	book     int
	line     int
	property string // missing property; empty for type errors
	err      gojsonschema.ResultError
}

// order sorts violations the way a reader walks the document: book by book,
// book properties before Content, Content before its lines.
func (v violation) order() []int {
	if v.level == levelRoot {
		return []int{-1}
	}
	return []int{v.book, int(v.level), v.line, propertyIndex(v)}
}

func propertyIndex(v violation) int {
	props := core.BookProperties
	if v.level == levelLine {
		props = core.LineProperties
	}
	// Non-object records sort before any missing property.
	if v.property == "" {
		return -1
	}
	return slices.Index(props, v.property)
}

// toError maps v onto the malformed input taxonomy.
func (v violation) toError() error {
	switch v.level {
	case levelRoot:
		if v.err.Type() == "invalid_type" {
			return core.NotArrayError()
		}
	case levelBook:
		if v.property == "" {
			return core.MissingBookFieldError(v.book, core.BookProperties[0])
		}
		return core.MissingBookFieldError(v.book, v.property)
	case levelContent:
		return core.ContentNotArrayError(v.book)
	case levelLine:
		if v.property == "" {
			return core.MissingLineFieldError(v.book, v.line, core.LineProperties[0])
		}
		return core.MissingLineFieldError(v.book, v.line, v.property)
	}
	return fmt.Errorf("%w: %s", core.ErrMalformedInput, v.err.String())
}

// firstViolation returns the error for the earliest violation in document order.
func firstViolation(errs []gojsonschema.ResultError) error {
	violations := make([]violation, 0, len(errs))
	for _, e := range errs {
		violations = append(violations, locate(e))
	}
	if len(violations) == 0 {
		return core.ErrMalformedInput
	}
	first := slices.MinFunc(violations, func(a, b violation) int {
		return slices.Compare(a.order(), b.order())
	})
	return first.toError()
}

// locate parses the context path of e, e.g. "(root).2.Content.7".
func locate(e gojsonschema.ResultError) violation {
	v := violation{level: levelRoot, err: e}
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok {
			v.property = p
		}
	}

	segments := strings.Split(e.Context().String(), ".")[1:]
	switch len(segments) {
	case 0:
		return v
	case 1:
		v.level = levelBook
	case 2:
		v.level = levelContent
	default:
		v.level = levelLine
		v.line = atoi(segments[2])
	}
	v.book = atoi(segments[0])

	// Only required errors name a property at book and line level.
	if v.level == levelContent {
		v.property = ""
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
