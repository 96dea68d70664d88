package search

import "github.com/poiesic/bookscan/core"

// SearchMonitor provides hooks to observe the search process.
// Book-level hooks are called from worker goroutines, so implementations
// must be safe for concurrent use.
type SearchMonitor interface {
	Start(searchTerm string, books int)
	AfterNormalize(isbn string, lines []core.ScannedLine, repairs int)
	LineHit(result core.SearchResult)
	AfterBook(isbn string, results []core.SearchResult)
	Finish(response *core.SearchResponse)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)                                {}
func (n *noopMonitor) AfterNormalize(_ string, _ []core.ScannedLine, _ int) {}
func (n *noopMonitor) LineHit(_ core.SearchResult)                          {}
func (n *noopMonitor) AfterBook(_ string, _ []core.SearchResult)            {}
func (n *noopMonitor) Finish(_ *core.SearchResponse)                        {}

type multiMonitor []SearchMonitor

// MultiMonitor returns a monitor that forwards every hook to each of
// monitors in order. Nil monitors are skipped.
func MultiMonitor(monitors ...SearchMonitor) SearchMonitor {
	var m multiMonitor
	for _, monitor := range monitors {
		if monitor != nil {
			m = append(m, monitor)
		}
	}
	if len(m) == 0 {
		return &noopMonitor{}
	}
	return m
}

func (m multiMonitor) Start(searchTerm string, books int) {
	for _, monitor := range m {
		monitor.Start(searchTerm, books)
	}
}

func (m multiMonitor) AfterNormalize(isbn string, lines []core.ScannedLine, repairs int) {
	for _, monitor := range m {
		monitor.AfterNormalize(isbn, lines, repairs)
	}
}

func (m multiMonitor) LineHit(result core.SearchResult) {
	for _, monitor := range m {
		monitor.LineHit(result)
	}
}

func (m multiMonitor) AfterBook(isbn string, results []core.SearchResult) {
	for _, monitor := range m {
		monitor.AfterBook(isbn, results)
	}
}

func (m multiMonitor) Finish(response *core.SearchResponse) {
	for _, monitor := range m {
		monitor.Finish(response)
	}
}
