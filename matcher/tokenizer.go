package matcher

import "github.com/poiesic/bookscan/core"

// Token is a maximal run of either word or non-word characters.
type Token struct {
	Text string
	Word bool
}

// Tokenize splits term into alternating word and non-word runs.
func Tokenize(term string) []Token {
	var tokens []Token
	start := 0
	for i := 1; i <= len(term); i++ {
		if i < len(term) && core.IsWordByte(term[i]) == core.IsWordByte(term[start]) {
			continue
		}
		tokens = append(tokens, Token{Text: term[start:i], Word: core.IsWordByte(term[start])})
		start = i
	}
	return tokens
}
