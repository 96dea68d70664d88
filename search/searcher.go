package search

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/bookscan/core"
	"github.com/poiesic/bookscan/matcher"
	"github.com/poiesic/bookscan/normalize"
)

// DefaultMatcherCacheSize is the number of compiled search terms a Searcher keeps.
const DefaultMatcherCacheSize = 128

// Searcher searches many books for a term, one book per pool task.
type Searcher struct {
	pool     *ants.Pool
	matchers *lru.Cache[string, *matcher.Matcher]
	monitor  SearchMonitor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithPoolSize sets the number of books searched concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		// Release old pool
		if s.pool != nil {
			s.pool.Release()
		}
		s.pool = pool
		return nil
	}
}

// WithMatcherCacheSize sets how many compiled search terms are kept between
// searches. Size must be positive.
func WithMatcherCacheSize(size int) Option {
	return func(s *Searcher) error {
		cache, err := lru.New[string, *matcher.Matcher](size)
		if err != nil {
			return err
		}
		s.matchers = cache
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMonitor sets the monitor used when a search is not given its own.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher. Call Release when done with it.
func NewSearcher(opts ...Option) (*Searcher, error) {
	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	matchers, err := lru.New[string, *matcher.Matcher](DefaultMatcherCacheSize)
	if err != nil {
		pool.Release()
		return nil, err
	}

	s := &Searcher{
		pool:     pool,
		matchers: matchers,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// PoolSize returns the number of books that can be searched concurrently.
func (s *Searcher) PoolSize() int {
	return s.pool.Cap()
}

// FindSearchTermInBooks searches books for whole-word, case-sensitive matches
// of searchTerm. Results are grouped by book in input order, then by line in
// reading order. The response echoes searchTerm untrimmed.
func (s *Searcher) FindSearchTermInBooks(ctx context.Context, searchTerm string, books []core.Book) (*core.SearchResponse, error) {
	return s.FindSearchTermInBooksWithMonitor(ctx, searchTerm, books, nil)
}

// FindSearchTermInBooksWithMonitor is FindSearchTermInBooks reporting to monitor.
// A nil monitor falls back to the one configured on the Searcher.
// If ctx is cancelled before every book is scheduled, no results are returned.
func (s *Searcher) FindSearchTermInBooksWithMonitor(ctx context.Context, searchTerm string, books []core.Book, monitor SearchMonitor) (*core.SearchResponse, error) {
	if monitor == nil {
		monitor = s.monitor
	}
	if s.pool.IsClosed() {
		return nil, ErrSearcherReleased
	}

	monitor.Start(searchTerm, len(books))

	m := s.compile(searchTerm)
	s.logger.Debug("searching books", "term", m.Term(), "pattern", m.Pattern(), "books", len(books))

	// Each task writes only its own slot
	perBook := make([][]core.SearchResult, len(books))
	var wg sync.WaitGroup
	for i, book := range books {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			perBook[i] = s.searchBook(m, book, monitor)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			s.logger.Error("error scheduling book search", "isbn", book.ISBN, "err", err)
			return nil, err
		}
	}
	wg.Wait()

	results := []core.SearchResult{}
	for _, r := range perBook {
		results = append(results, r...)
	}

	response := &core.SearchResponse{
		SearchTerm: searchTerm,
		Results:    results,
	}
	s.logger.Debug("search complete", "term", m.Term(), "results", len(results))
	monitor.Finish(response)

	return response, nil
}

// compile returns the cached matcher for searchTerm, compiling it on a miss.
func (s *Searcher) compile(searchTerm string) *matcher.Matcher {
	term := strings.TrimSpace(searchTerm)
	if m, ok := s.matchers.Get(term); ok {
		return m
	}
	m := matcher.Compile(term)
	s.matchers.Add(term, m)
	return m
}

func (s *Searcher) searchBook(m *matcher.Matcher, book core.Book, monitor SearchMonitor) []core.SearchResult {
	lines, repairs := normalize.Content(book.Content)
	monitor.AfterNormalize(book.ISBN, lines, repairs)

	results := searchLines(m, book.ISBN, lines, monitor.LineHit)
	monitor.AfterBook(book.ISBN, results)
	return results
}

// Release releases the worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
