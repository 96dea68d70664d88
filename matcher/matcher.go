package matcher

import (
	"regexp"
	"strings"

	"github.com/poiesic/bookscan/core"
)

// Matcher tests lines of text for whole-word occurrences of a search term.
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	term   string
	tokens []Token
}

// Compile builds a Matcher for searchTerm after trimming surrounding whitespace.
func Compile(searchTerm string) *Matcher {
	term := strings.TrimSpace(searchTerm)
	return &Matcher{
		term:   term,
		tokens: Tokenize(term),
	}
}

// Term returns the trimmed term the matcher searches for.
func (m *Matcher) Term() string {
	return m.term
}

// Tokens returns the word and non-word runs of the term.
func (m *Matcher) Tokens() []Token {
	return append([]Token(nil), m.tokens...)
}

// Match reports whether text contains the term as a whole-word match.
// An empty term matches every text.
func (m *Matcher) Match(text string) bool {
	return m.Index(text) >= 0
}

// Index returns the byte offset of the first whole-word match in text, or -1.
func (m *Matcher) Index(text string) int {
	if len(m.tokens) == 0 {
		return 0
	}
	for from := 0; from+len(m.term) <= len(text); {
		i := strings.Index(text[from:], m.term)
		if i < 0 {
			return -1
		}
		start := from + i
		if m.bounded(text, start, start+len(m.term)) {
			return start
		}
		from = start + 1
	}
	return -1
}

// bounded checks the outer edges of a literal occurrence at text[start:end].
// Edges inside the occurrence are fixed by the term itself.
func (m *Matcher) bounded(text string, start, end int) bool {
	if len(m.tokens) == 0 {
		return true
	}
	first, last := m.tokens[0], m.tokens[len(m.tokens)-1]
	if first.Word && !core.IsBoundary(text, start) {
		return false
	}
	if last.Word && !core.IsBoundary(text, end) {
		return false
	}
	return true
}

// Pattern renders the matcher as an equivalent RE2 expression, with \b around
// each word run and non-word runs quoted literally.
func (m *Matcher) Pattern() string {
	var b strings.Builder
	for _, tok := range m.tokens {
		if tok.Word {
			b.WriteString(`\b`)
			b.WriteString(tok.Text)
			b.WriteString(`\b`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(tok.Text))
	}
	return b.String()
}

// String returns the trimmed term.
func (m *Matcher) String() string {
	return m.term
}
