package search

import "github.com/poiesic/bookscan/core"

// twentyLeagues is a page fragment of "Twenty Thousand Leagues Under the Sea".
func twentyLeagues() []core.Book {
	return []core.Book{
		{
			Title: "Twenty Thousand Leagues Under the Sea",
			ISBN:  "9780000528531",
			Content: []core.ScannedLine{
				{Page: 31, Line: 8, Text: "now simply went on by her own momentum.  The dark-"},
				{Page: 31, Line: 9, Text: "ness was then profound; and however good the Canadian's"},
				{Page: 31, Line: 10, Text: "eyes were, I asked myself how he had managed to see, and"},
			},
		},
	}
}

// sampleBooks exercises out-of-order lines, hyphen chains and lines that
// end in a hyphen without an eligible successor.
func sampleBooks() []core.Book {
	return []core.Book{
		{
			Title: "Title 1",
			ISBN:  "1",
			Content: []core.ScannedLine{
				{Page: 1, Line: 7, Text: "now simply went on by her own momentum. (method) The dark-"},
				{Page: 1, Line: 10, Text: "in Python, you may have a method __hash__"},
			},
		},
		{
			Title: "Title 2",
			ISBN:  "2",
			Content: []core.ScannedLine{
				{Page: 2, Line: 1, Text: "this is a sentence—that contains an em dash—"},
				{Page: 2, Line: 5, Text: "er <-- should not be connected to hyphenated word in the book 3. floorboards are often made of wood."},
				{Page: 2, Line: 7, Text: "and winter is here. floor-"},
			},
		},
		{
			Title: "Title 3",
			ISBN:  "3",
			Content: []core.ScannedLine{
				{Page: 2, Line: 7, Text: "boards creak and groan. Twenty-Three years ago"},
				{Page: 2, Line: 3, Text: "the dark room has a lamp which is a lamp that"},
				{Page: 2, Line: 4, Text: "glows dimly in the moon-"},
				{Page: 2, Line: 5, Text: "light of the cold win-"},
				{Page: 2, Line: 6, Text: "ter breeze. creak, creak. the floor-"},
				{Page: 20, Line: 1, Text: "a method to the madness here"},
			},
		},
	}
}

func result(isbn string, page, line int) core.SearchResult {
	return core.SearchResult{ISBN: isbn, Page: page, Line: line}
}
