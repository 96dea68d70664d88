package search

import (
	"github.com/poiesic/bookscan/core"
	"github.com/poiesic/bookscan/matcher"
	"github.com/poiesic/bookscan/normalize"
)

// SearchBook returns one result per normalized line of book that m matches,
// in reading order. Lines sharing a page and line number are reported once.
func SearchBook(m *matcher.Matcher, book core.Book) []core.SearchResult {
	return searchLines(m, book.ISBN, normalize.Book(book), nil)
}

// searchLines tests every line against m once. hit, when set, is called for
// each result as it is found.
func searchLines(m *matcher.Matcher, isbn string, lines []core.ScannedLine, hit func(core.SearchResult)) []core.SearchResult {
	results := []core.SearchResult{}
	seen := make(map[core.LineKey]struct{})
	for _, line := range lines {
		if !m.Match(line.Text) {
			continue
		}
		result := core.SearchResult{ISBN: isbn, Page: line.Page, Line: line.Line}
		if _, dup := seen[result.Key()]; dup {
			continue
		}
		seen[result.Key()] = struct{}{}
		results = append(results, result)
		if hit != nil {
			hit(result)
		}
	}
	return results
}
