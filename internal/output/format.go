package output

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

var defaultPalette = PlainPalette()

// FormatLine renders a matched line with the plain palette.
func FormatLine(line string, lineNumber, start, end int) string {
	return defaultPalette.FormatLine(line, lineNumber, start, end)
}

// FormatLine renders one result line:
//
//	<line number, right aligned, width 6>:<column, left aligned, width 3> <prefix><match><suffix>
//
// start and end are byte offsets into line. The column counts characters, not
// bytes, so multi-byte prefixes are reported correctly. Offsets outside line
// are the caller's bug.
func (p *Palette) FormatLine(line string, lineNumber, start, end int) string {
	prefix := line[:start]
	column := utf8.RuneCountInString(prefix) + 1

	return fmt.Sprintf("%s:%s %s%s%s",
		p.LineNumber.Render(fmt.Sprintf("%6s", strconv.Itoa(lineNumber))),
		p.Column.Render(fmt.Sprintf("%-3s", strconv.Itoa(column))),
		prefix,
		p.Match.Render(line[start:end]),
		line[end:],
	)
}

// FormatPath renders a file path header.
func (p *Palette) FormatPath(path string) string {
	return p.Path.Render(path)
}
