// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bookscan

import (
	"context"
	"log/slog"

	"github.com/poiesic/bookscan/core"
	"github.com/poiesic/bookscan/ingestion"
	"github.com/poiesic/bookscan/search"
)

// Library is a validated set of books with a searcher bound to it.
type Library struct {
	books    []core.Book
	searcher *search.Searcher
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	searchOpts []search.Option
	logger     *slog.Logger
}

// WithSearchOptions passes options to the Library's searcher.
func WithSearchOptions(opts ...search.Option) LibraryOption {
	return func(o *libraryOptions) {
		o.searchOpts = append(o.searchOpts, opts...)
	}
}

// WithLogger sets the logger used by the Library and its searcher.
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(o *libraryOptions) {
		o.logger = logger
	}
}

// NewLibrary wraps books that have already been decoded.
// Call Close when done with it.
func NewLibrary(books []core.Book, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	// Logger first so explicit search options win
	searchOpts := append([]search.Option{search.WithLogger(options.logger)}, options.searchOpts...)
	searcher, err := search.NewSearcher(searchOpts...)
	if err != nil {
		return nil, err
	}

	return &Library{
		books:    books,
		searcher: searcher,
		logger:   options.logger,
	}, nil
}

// ParseLibrary validates and decodes scanned text, then wraps it in a Library.
func ParseLibrary(data []byte, opts ...LibraryOption) (*Library, error) {
	books, err := ingestion.Decode(data)
	if err != nil {
		return nil, err
	}
	return NewLibrary(books, opts...)
}

// OpenLibrary loads scanned text from a JSON file.
func OpenLibrary(path string, opts ...LibraryOption) (*Library, error) {
	books, err := ingestion.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewLibrary(books, opts...)
}

// Books returns the library's books in input order.
func (l *Library) Books() []core.Book {
	return l.books
}

// LineCount returns the number of scanned lines across all books.
func (l *Library) LineCount() int {
	return core.LineCount(l.books)
}

// NewSearcher creates an independent searcher. The caller must release it.
func (l *Library) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(append([]search.Option{search.WithLogger(l.logger)}, opts...)...)
}

// Search finds whole-word matches of searchTerm in every book of the library.
func (l *Library) Search(ctx context.Context, searchTerm string) (*core.SearchResponse, error) {
	return l.searcher.FindSearchTermInBooks(ctx, searchTerm, l.books)
}

// SearchWithMonitor is Search reporting progress to monitor.
func (l *Library) SearchWithMonitor(ctx context.Context, searchTerm string, monitor search.SearchMonitor) (*core.SearchResponse, error) {
	return l.searcher.FindSearchTermInBooksWithMonitor(ctx, searchTerm, l.books, monitor)
}

// Close releases the library's searcher.
func (l *Library) Close() error {
	l.searcher.Release()
	return nil
}

// FindSearchTermInBooks validates scannedText, decodes it and searches it for
// searchTerm. Validation failures wrap core.ErrMalformedInput.
func FindSearchTermInBooks(ctx context.Context, searchTerm string, scannedText []byte, opts ...LibraryOption) (*core.SearchResponse, error) {
	lib, err := ParseLibrary(scannedText, opts...)
	if err != nil {
		return nil, err
	}
	defer lib.Close()

	return lib.Search(ctx, searchTerm)
}
