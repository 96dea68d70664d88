package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/poiesic/bookscan/core"
	"github.com/poiesic/bookscan/search"
)

const namespace = "bookscan"

// Collector counts searches, books, lines, hyphenation repairs and hits.
type Collector struct {
	registry *prometheus.Registry

	searches        prometheus.Counter
	booksSearched   prometheus.Counter
	linesScanned    prometheus.Counter
	wordRepairs     prometheus.Counter
	lineHits        prometheus.Counter
	resultsPerQuery prometheus.Histogram
}

var _ search.SearchMonitor = (*Collector)(nil)

// NewCollector creates a Collector registered on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of searches started.",
		}),
		booksSearched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "books_searched_total",
			Help:      "Total number of books searched.",
		}),
		linesScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_scanned_total",
			Help:      "Total number of normalized lines tested against a matcher.",
		}),
		wordRepairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hyphenation_repairs_total",
			Help:      "Total number of words rejoined across line breaks.",
		}),
		lineHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_hits_total",
			Help:      "Total number of lines reported as search results.",
		}),
		resultsPerQuery: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "results_per_search",
			Help:      "Number of results returned by a search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	c.registry.MustRegister(
		c.searches,
		c.booksSearched,
		c.linesScanned,
		c.wordRepairs,
		c.lineHits,
		c.resultsPerQuery,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Start counts a new search.
func (c *Collector) Start(_ string, _ int) {
	c.searches.Inc()
}

// AfterNormalize counts a book's lines and repairs.
func (c *Collector) AfterNormalize(_ string, lines []core.ScannedLine, repairs int) {
	c.linesScanned.Add(float64(len(lines)))
	c.wordRepairs.Add(float64(repairs))
}

// LineHit counts a result line.
func (c *Collector) LineHit(_ core.SearchResult) {
	c.lineHits.Inc()
}

// AfterBook counts a searched book.
func (c *Collector) AfterBook(_ string, _ []core.SearchResult) {
	c.booksSearched.Inc()
}

// Finish observes the size of the result set.
func (c *Collector) Finish(response *core.SearchResponse) {
	c.resultsPerQuery.Observe(float64(len(response.Results)))
}

// Totals is a point-in-time copy of the collector's counters.
type Totals struct {
	Searches int
	Books    int
	Lines    int
	Repairs  int
	Hits     int
}

// Totals reads the current counter values.
func (c *Collector) Totals() (Totals, error) {
	var t Totals
	counters := []struct {
		counter prometheus.Counter
		dst     *int
	}{
		{c.searches, &t.Searches},
		{c.booksSearched, &t.Books},
		{c.linesScanned, &t.Lines},
		{c.wordRepairs, &t.Repairs},
		{c.lineHits, &t.Hits},
	}
	for _, entry := range counters {
		var m dto.Metric
		if err := entry.counter.Write(&m); err != nil {
			return Totals{}, fmt.Errorf("read counter: %w", err)
		}
		*entry.dst = int(m.GetCounter().GetValue())
	}
	return t, nil
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
