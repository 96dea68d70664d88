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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/poiesic/bookscan"
	"github.com/poiesic/bookscan/config"
	"github.com/poiesic/bookscan/core"
	"github.com/poiesic/bookscan/ingestion"
	"github.com/poiesic/bookscan/metrics"
	"github.com/poiesic/bookscan/search"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bookscan",
		Usage: "Exact word search over scanned book text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search scanned books for a whole word or phrase",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to scanned text JSON file (- for stdin)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "term",
						Aliases:  []string{"t"},
						Usage:    "Search term, matched case-sensitively as whole words",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of books searched concurrently (0 for one per two CPUs)",
					},
					&cli.BoolFlag{
						Name:  "compact",
						Usage: "Write JSON without indentation",
					},
					&cli.BoolFlag{
						Name:  "metrics",
						Usage: "Write search metrics to stderr",
					},
					&cli.BoolFlag{
						Name:  "progress",
						Usage: "Write search progress to stderr",
					},
				},
			},
			{
				Name:   "validate",
				Usage:  "Validate a scanned text JSON file",
				Action: validateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to scanned text JSON file (- for stdin)",
						Required: true,
					},
				},
			},
		},
	}
}

// loadConfig layers explicitly set flags over the config file, if any.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	var opts []config.Option
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}
	if c.IsSet("pool-size") {
		opts = append(opts, config.WithPoolSize(c.Int("pool-size")))
	}
	if c.IsSet("compact") {
		opts = append(opts, config.WithCompact(c.Bool("compact")))
	}
	if c.IsSet("metrics") {
		opts = append(opts, config.WithMetrics(c.Bool("metrics")))
	}
	if c.IsSet("progress") {
		opts = append(opts, config.WithProgress(c.Bool("progress")))
	}
	cfg.Apply(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadBooks(c *cli.Context) ([]core.Book, error) {
	input := c.String("input")
	if input == "-" {
		return ingestion.DecodeReader(c.App.Reader)
	}
	return ingestion.LoadFile(input)
}

func searchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	books, err := loadBooks(c)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}

	var searchOpts []search.Option
	if cfg.PoolSize > 0 {
		searchOpts = append(searchOpts, search.WithPoolSize(cfg.PoolSize))
	}
	lib, err := bookscan.NewLibrary(books, bookscan.WithSearchOptions(searchOpts...))
	if err != nil {
		return fmt.Errorf("failed to create library: %w", err)
	}
	defer lib.Close()

	var collector *metrics.Collector
	var monitors []search.SearchMonitor
	if cfg.Metrics {
		collector = metrics.NewCollector()
		monitors = append(monitors, collector)
	}
	if cfg.Progress {
		monitors = append(monitors, search.NewProgressMonitor(c.App.ErrWriter, 1))
	}

	response, err := lib.SearchWithMonitor(c.Context, c.String("term"), search.MultiMonitor(monitors...))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	slog.Debug("search finished", "books", len(books), "results", len(response.Results))

	enc := json.NewEncoder(c.App.Writer)
	enc.SetEscapeHTML(false)
	if !cfg.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(response); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if collector != nil {
		if totals, err := collector.Totals(); err == nil {
			slog.Debug("search metrics", "books", totals.Books, "lines", totals.Lines, "repairs", totals.Repairs, "hits", totals.Hits)
		}
		if err := collector.WriteText(c.App.ErrWriter); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

func validateCommand(c *cli.Context) error {
	books, err := loadBooks(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %d books, %d lines\n", c.String("input"), len(books), core.LineCount(books))
	return nil
}

func setupLogger(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Map string to slog.Level
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", cfg.LogLevel)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
