// Package search runs a regular expression over every file matched by a glob.
//
// Files are scanned concurrently on a bounded worker pool. Each file is an
// independent task: a file that cannot be opened is skipped, and a strategy
// failure is logged without stopping the other tasks. Only an invalid pattern
// or an invalid glob fails the run.
package search

import (
	"fmt"
	"io"
	"regexp"
	"runtime"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/gubarz/rgrep/internal/logger"
	"github.com/gubarz/rgrep/internal/output"
)

// Config is the input of a single run.
type Config struct {
	Pattern string
	Glob    string
}

// NewConfig creates a Config from command-line input.
func NewConfig(pattern, glob string) Config {
	return Config{Pattern: pattern, Glob: glob}
}

// FileResult records what happened to one file. It is used for logging only.
type FileResult struct {
	Path    string
	Skipped bool
	Err     error
}

// Searcher dispatches a Strategy over the files matched by a glob.
type Searcher struct {
	fs      afero.Fs
	out     *output.Sink
	workers int
	log     *logger.ConsoleLogger
	palette *output.Palette
}

// NewSearcher creates a Searcher writing results to out. Writes to out are
// serialized. Internal errors are logged to the same destination.
func NewSearcher(out io.Writer) *Searcher {
	sink := output.NewSink(out)
	return &Searcher{
		fs:      afero.NewOsFs(),
		out:     sink,
		workers: runtime.GOMAXPROCS(0),
		log:     logger.NewConsoleLogger(sink, "info"),
		palette: output.PlainPalette(),
	}
}

// WithFs sets the filesystem globs are expanded against and files are read from.
func (s *Searcher) WithFs(fs afero.Fs) *Searcher {
	s.fs = fs
	return s
}

// WithWorkers sets the worker pool size. Values below one are ignored.
func (s *Searcher) WithWorkers(n int) *Searcher {
	if n > 0 {
		s.workers = n
	}
	return s
}

// WithLogger sets the logger used for internal errors and diagnostics.
func (s *Searcher) WithLogger(l *logger.ConsoleLogger) *Searcher {
	s.log = l
	return s
}

// WithPalette sets the palette used by the default strategy.
func (s *Searcher) WithPalette(p *output.Palette) *Searcher {
	s.palette = p
	return s
}

// Sink returns the synchronized writer results are written to.
func (s *Searcher) Sink() *output.Sink {
	return s.out
}

// RunDefault runs cfg with the default strategy.
func (s *Searcher) RunDefault(cfg Config) error {
	return s.Run(cfg, NewDefaultStrategy(s.palette))
}

// Run compiles the pattern, expands the glob and scans every matched file
// with strategy. It returns after all files are processed. The error is
// non-nil only for ErrInvalidPattern or ErrInvalidGlob; per-file problems are
// logged.
func (s *Searcher) Run(cfg Config, strategy Strategy) error {
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	files, err := expandGlob(s.fs, cfg.Glob)
	if err != nil {
		return err
	}
	s.log.LogDebug("glob %q matched %d files", cfg.Glob, len(files))

	p := pool.NewWithResults[FileResult]().WithMaxGoroutines(s.workers)
	for _, path := range files {
		p.Go(func() FileResult {
			return s.scanFile(path, re, strategy)
		})
	}
	s.summarize(p.Wait())

	return nil
}

// scanFile opens path and hands it to strategy.
func (s *Searcher) scanFile(path string, re *regexp.Regexp, strategy Strategy) FileResult {
	f, err := s.fs.Open(path)
	if err != nil {
		s.log.LogDebug("skipping %s: %v", path, err)
		return FileResult{Path: path, Skipped: true}
	}
	defer f.Close()

	s.log.LogTrace("scanning %s", path)
	if err := strategy.Scan(path, f, re, s.out); err != nil {
		s.log.LogError("internal error: %v", err)
		return FileResult{Path: path, Err: err}
	}
	return FileResult{Path: path}
}

func (s *Searcher) summarize(results []FileResult) {
	var skipped, failed int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
		case r.Err != nil:
			failed++
		}
	}
	s.log.LogDebug("scanned %d files: %d skipped, %d failed", len(results), skipped, failed)
}
