package search

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/poiesic/bookscan/core"
)

// ProgressMonitor reports how many books of a search have been searched.
type ProgressMonitor struct {
	writer         io.Writer
	total          int
	current        int
	reportInterval int
	lastReported   int
	startTime      time.Time
	started        bool
	mu             sync.Mutex
}

var _ SearchMonitor = (*ProgressMonitor)(nil)

// NewProgressMonitor creates a new progress monitor.
// writer: where to write progress output (typically os.Stderr)
// reportInterval: report progress every N books
func NewProgressMonitor(writer io.Writer, reportInterval int) *ProgressMonitor {
	if reportInterval < 1 {
		reportInterval = 1
	}
	return &ProgressMonitor{
		writer:         writer,
		reportInterval: reportInterval,
	}
}

// Start begins tracking a search over the given number of books.
func (p *ProgressMonitor) Start(_ string, books int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.startTime = time.Now()
	p.started = true
	p.total = books
	p.current = 0
	p.lastReported = 0
}

func (p *ProgressMonitor) AfterNormalize(_ string, _ []core.ScannedLine, _ int) {}

func (p *ProgressMonitor) LineHit(_ core.SearchResult) {}

// AfterBook counts a searched book.
func (p *ProgressMonitor) AfterBook(_ string, _ []core.SearchResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	// Cap at total
	if p.current < p.total {
		p.current++
	}

	if p.current-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.current
	}
}

// Finish prints final progress and stops tracking.
func (p *ProgressMonitor) Finish(response *core.SearchResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}

	p.current = p.total
	p.report()
	fmt.Fprintf(p.writer, " - %d results\n", len(response.Results))
	p.started = false
}

// Elapsed returns the time elapsed since the current search started.
func (p *ProgressMonitor) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return 0
	}

	return time.Since(p.startTime)
}

// report prints the current progress. Must be called with lock held.
func (p *ProgressMonitor) report() {
	rate := 0.0
	if elapsed := time.Since(p.startTime); elapsed > 0 {
		rate = float64(p.current) / elapsed.Seconds()
	}

	percentage := 0.0
	if p.total > 0 {
		percentage = float64(p.current) / float64(p.total) * 100.0
	}

	fmt.Fprintf(p.writer, "\rProgress: %d/%d books (%.1f%%) - %.1f books/s",
		p.current, p.total, percentage, rate)
}
