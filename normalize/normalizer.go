package normalize

import (
	"cmp"
	"slices"
	"strings"

	"github.com/poiesic/bookscan/core"
)

var controlSpaces = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// Book returns the normalized lines of book. The result has the same length
// as book.Content, which is left untouched.
func Book(book core.Book) []core.ScannedLine {
	lines, _ := Content(book.Content)
	return lines
}

// Content normalizes a copy of content and reports how many hyphenation
// repairs were made.
func Content(content []core.ScannedLine) ([]core.ScannedLine, int) {
	lines := slices.Clone(content)
	Sort(lines)
	for i := range lines {
		lines[i].Text = CleanText(lines[i].Text)
	}
	return lines, RepairWordBreaks(lines)
}

// Sort orders lines by page, then line number. Ties keep their relative order.
func Sort(lines []core.ScannedLine) {
	slices.SortStableFunc(lines, func(a, b core.ScannedLine) int {
		return cmp.Or(cmp.Compare(a.Page, b.Page), cmp.Compare(a.Line, b.Line))
	})
}

// CleanText turns embedded tabs, newlines and carriage returns into spaces and
// trims surrounding whitespace.
func CleanText(text string) string {
	return strings.TrimSpace(controlSpaces.Replace(text))
}

// RepairWordBreaks rejoins hyphen-broken words in sorted, cleaned lines,
// rewriting texts in place. It walks forward so a rewritten successor is
// itself considered against the line after it.
//
// A word broken across more than two lines is gathered onto the line where
// it starts. Middle lines that held only a fragment are left empty.
func RepairWordBreaks(lines []core.ScannedLine) int {
	repairs := 0
	for i := 0; i+1 < len(lines); i++ {
		cur := &lines[i]
		if !consecutive(*cur, lines[i+1]) {
			continue
		}
		head, ok := brokenWordHead(cur.Text)
		if !ok {
			continue
		}
		tail, rest, ok := core.LeadingWord(lines[i+1].Text)
		if !ok {
			continue
		}
		cur.Text = head + tail
		lines[i+1].Text = rest
		repairs++

		// rest == "-" means the fragment line continues the same word
		j := i + 1
		for rest == "-" && j+1 < len(lines) && consecutive(lines[j], lines[j+1]) {
			tail, after, ok := core.LeadingWord(lines[j+1].Text)
			if !ok {
				break
			}
			cur.Text += tail
			lines[j].Text = ""
			lines[j+1].Text = after
			rest = after
			repairs++
			j++
		}
		i = j - 1
	}
	return repairs
}

// consecutive reports whether next directly follows cur on the same page.
func consecutive(cur, next core.ScannedLine) bool {
	return next.Page == cur.Page && next.Line == cur.Line+1
}

// brokenWordHead returns text without its trailing hyphen when the hyphen
// ends a word fragment.
func brokenWordHead(text string) (string, bool) {
	n := len(text)
	if n < 2 || text[n-1] != '-' || !core.IsWordByte(text[n-2]) {
		return "", false
	}
	return text[:n-1], true
}
