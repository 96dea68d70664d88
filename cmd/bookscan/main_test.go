package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/bookscan/config"
	"github.com/poiesic/bookscan/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const scannedText = `[
  {
    "Title": "Twenty Thousand Leagues Under the Sea",
    "ISBN": "9780000528531",
    "Content": [
      {"Page": 31, "Line": 8, "Text": "now simply went on by her own momentum.  The dark-"},
      {"Page": 31, "Line": 9, "Text": "ness was then profound; and however good the Canadian's"},
      {"Page": 31, "Line": 10, "Text": "eyes were, I asked myself how he had managed to see, and"}
    ]
  }
]`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"bookscan"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestSearchCommand(t *testing.T) {
	input := writeFile(t, "books.json", scannedText)

	t.Run("compact output", func(t *testing.T) {
		stdout, _, err := runApp(t, "search", "-i", input, "-t", "the", "--compact")
		require.NoError(t, err)
		assert.Equal(t, `{"SearchTerm":"the","Results":[{"ISBN":"9780000528531","Page":31,"Line":9}]}`+"\n", stdout)
	})

	t.Run("indented output by default", func(t *testing.T) {
		stdout, _, err := runApp(t, "search", "--input", input, "--term", "darkness")
		require.NoError(t, err)
		assert.Contains(t, stdout, "\n  \"SearchTerm\": \"darkness\"")

		var resp core.SearchResponse
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		assert.Equal(t, []core.SearchResult{{ISBN: "9780000528531", Page: 31, Line: 8}}, resp.Results)
	})

	t.Run("no matches", func(t *testing.T) {
		stdout, _, err := runApp(t, "search", "-i", input, "-t", "dark", "--compact")
		require.NoError(t, err)
		assert.Equal(t, `{"SearchTerm":"dark","Results":[]}`+"\n", stdout)
	})

	t.Run("term is echoed untrimmed", func(t *testing.T) {
		stdout, _, err := runApp(t, "search", "-i", input, "-t", " profound; ", "--compact")
		require.NoError(t, err)
		assert.Equal(t, `{"SearchTerm":" profound; ","Results":[{"ISBN":"9780000528531","Page":31,"Line":9}]}`+"\n", stdout)
	})

	t.Run("metrics written to stderr", func(t *testing.T) {
		stdout, stderr, err := runApp(t, "search", "-i", input, "-t", "the", "--metrics", "--pool-size", "2")
		require.NoError(t, err)
		assert.Contains(t, stdout, "9780000528531")
		assert.Contains(t, stderr, "bookscan_searches_total 1")
		assert.Contains(t, stderr, "bookscan_lines_scanned_total 3")
		assert.Contains(t, stderr, "bookscan_hyphenation_repairs_total 1")
	})

	t.Run("progress written to stderr", func(t *testing.T) {
		_, stderr, err := runApp(t, "search", "-i", input, "-t", "the", "--progress")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Progress: 1/1 books (100.0%)")
		assert.Contains(t, stderr, " - 1 results\n")
	})

	t.Run("reads stdin", func(t *testing.T) {
		var stdout bytes.Buffer
		app := newApp()
		app.Reader = strings.NewReader(scannedText)
		app.Writer = &stdout
		app.ErrWriter = &bytes.Buffer{}

		err := app.Run([]string{"bookscan", "search", "-i", "-", "-t", "Canadian", "--compact"})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"Page":31,"Line":9`)
	})

	t.Run("term is required", func(t *testing.T) {
		_, _, err := runApp(t, "search", "-i", input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "term")
	})

	t.Run("input is required", func(t *testing.T) {
		_, _, err := runApp(t, "search", "-t", "the")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})

	t.Run("malformed input", func(t *testing.T) {
		bad := writeFile(t, "bad.json", `[{"Title": "t", "ISBN": "1"}]`)
		stdout, _, err := runApp(t, "search", "-i", bad, "-t", "the")
		assert.ErrorIs(t, err, core.ErrMalformedInput)
		assert.ErrorIs(t, err, core.ErrMissingBookField)
		assert.Contains(t, err.Error(), `"Content"`)
		assert.Empty(t, stdout)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, _, err := runApp(t, "search", "-i", filepath.Join(t.TempDir(), "missing.json"), "-t", "the")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("negative pool size", func(t *testing.T) {
		_, _, err := runApp(t, "search", "-i", input, "-t", "the", "--pool-size", "-1")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestSearchCommand_ConfigFile(t *testing.T) {
	input := writeFile(t, "books.json", scannedText)
	cfgPath := writeFile(t, "bookscan.yaml", "log_level: warn\npool_size: 2\ncompact: true\n")

	t.Run("file values apply", func(t *testing.T) {
		stdout, _, err := runApp(t, "-c", cfgPath, "search", "-i", input, "-t", "the")
		require.NoError(t, err)
		assert.Equal(t, `{"SearchTerm":"the","Results":[{"ISBN":"9780000528531","Page":31,"Line":9}]}`+"\n", stdout)
	})

	t.Run("flags override file", func(t *testing.T) {
		stdout, _, err := runApp(t, "--config", cfgPath, "search", "-i", input, "-t", "the", "--compact=false")
		require.NoError(t, err)
		assert.Contains(t, stdout, "\n  \"Results\": [")
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := writeFile(t, "bad.yaml", "log_level: loud\n")
		_, _, err := runApp(t, "-c", bad, "search", "-i", input, "-t", "the")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runApp(t, "-c", filepath.Join(t.TempDir(), "missing.yaml"), "search", "-i", input, "-t", "the")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		input := writeFile(t, "books.json", scannedText)
		stdout, _, err := runApp(t, "validate", "-i", input)
		require.NoError(t, err)
		assert.Equal(t, input+": 1 books, 3 lines\n", stdout)
	})

	t.Run("not an array", func(t *testing.T) {
		input := writeFile(t, "object.json", `{"Title": "t"}`)
		_, _, err := runApp(t, "validate", "-i", input)
		assert.ErrorIs(t, err, core.ErrNotArray)
	})

	t.Run("missing line field", func(t *testing.T) {
		input := writeFile(t, "lines.json", `[{"Title": "t", "ISBN": "1", "Content": [{"Page": 1, "Line": 1}]}]`)
		_, _, err := runApp(t, "validate", "-i", input)
		assert.ErrorIs(t, err, core.ErrMissingLineField)
		assert.Contains(t, err.Error(), `"Text"`)
	})
}

func TestNewApp(t *testing.T) {
	app := newApp()

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"search", "validate"}, names)

	t.Run("log-level has default value", func(t *testing.T) {
		var levelFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "log-level" {
				levelFlag = f
				break
			}
		}
		require.NotNil(t, levelFlag)
		assert.Equal(t, "info", levelFlag.Value)
		assert.Equal(t, []string{"l"}, levelFlag.Aliases)
	})

	t.Run("search flags", func(t *testing.T) {
		searchCmd := app.Command("search")
		require.NotNil(t, searchCmd)

		var required []string
		for _, flag := range searchCmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Required {
				required = append(required, f.Name)
			}
		}
		assert.Equal(t, []string{"input", "term"}, required)
	})
}

func TestSetupLogger(t *testing.T) {
	newTestApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Writer:    &bytes.Buffer{},
			ErrWriter: &bytes.Buffer{},
			Before:    setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newTestApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newTestApp().Run([]string{"test", "-l", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newTestApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), `"invalid"`)
	})

	t.Run("debug output goes to stderr", func(t *testing.T) {
		var stderr bytes.Buffer
		input := writeFile(t, "books.json", scannedText)
		app := newApp()
		app.Writer = &bytes.Buffer{}
		app.ErrWriter = &stderr

		err := app.Run([]string{"bookscan", "-l", "debug", "search", "-i", input, "-t", "the"})
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "search finished")
	})
}
