package search

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gubarz/rgrep/internal/output"
)

// Match is a single matching line. Start and End are byte offsets into Line.
type Match struct {
	LineNumber int
	Start      int
	End        int
	Line       string
}

// Strategy scans one file and writes formatted results to w.
type Strategy interface {
	Scan(path string, r io.Reader, re *regexp.Regexp, w io.Writer) error
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(path string, r io.Reader, re *regexp.Regexp, w io.Writer) error

// Scan calls f.
func (f StrategyFunc) Scan(path string, r io.Reader, re *regexp.Regexp, w io.Writer) error {
	return f(path, r, re, w)
}

// DefaultStrategy reports the first match on every matching line, preceded by
// the file path. Files without matches produce no output.
type DefaultStrategy struct {
	Palette *output.Palette
}

// NewDefaultStrategy returns a DefaultStrategy using p, or the plain palette
// when p is nil.
func NewDefaultStrategy(p *output.Palette) *DefaultStrategy {
	if p == nil {
		p = output.PlainPalette()
	}
	return &DefaultStrategy{Palette: p}
}

// Scan implements Strategy. The whole block for the file is written with a
// single call to w.
func (s *DefaultStrategy) Scan(path string, r io.Reader, re *regexp.Regexp, w io.Writer) error {
	palette := s.Palette
	if palette == nil {
		palette = output.PlainPalette()
	}

	var lines []string
	for _, m := range FindMatches(r, re) {
		lines = append(lines, palette.FormatLine(m.Line, m.LineNumber, m.Start, m.End))
	}
	if len(lines) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(palette.FormatPath(path))
	b.WriteByte('\n')
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')

	if _, err := w.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}

// FindMatches returns the first match of re on each line of r. Lines are
// numbered from 1. Lines that are not valid UTF-8 never match, and a read
// error ends the scan as if the input had ended.
func FindMatches(r io.Reader, re *regexp.Regexp) []Match {
	var matches []Match

	br := bufio.NewReader(r)
	for lineNumber := 1; ; lineNumber++ {
		line, err := br.ReadString('\n')
		if line != "" {
			line = trimEOL(line)
			if utf8.ValidString(line) {
				if loc := re.FindStringIndex(line); loc != nil {
					matches = append(matches, Match{
						LineNumber: lineNumber,
						Start:      loc[0],
						End:        loc[1],
						Line:       line,
					})
				}
			}
		}
		// io.EOF or a read failure: either way there are no more lines
		if err != nil {
			return matches
		}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
