package report

import (
	"io"
	"strings"
	"unicode/utf8"
)

// writeGrid renders rows as a bordered grid with centered cells. The
// header row is separated by '=' rules.
func writeGrid(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	measure := func(row []string) {
		for i, c := range row {
			if i < len(widths) && utf8.RuneCountInString(c) > widths[i] {
				widths[i] = utf8.RuneCountInString(c)
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	var sb strings.Builder
	rule := func(fill byte) {
		sb.WriteByte('+')
		for _, wd := range widths {
			sb.WriteString(strings.Repeat(string(fill), wd+2))
			sb.WriteByte('+')
		}
		sb.WriteByte('\n')
	}
	line := func(row []string) {
		sb.WriteByte('|')
		for i, wd := range widths {
			var c string
			if i < len(row) {
				c = row[i]
			}
			pad := wd - utf8.RuneCountInString(c)
			left := pad / 2
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", left))
			sb.WriteString(c)
			sb.WriteString(strings.Repeat(" ", pad-left))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}

	rule('-')
	line(header)
	rule('=')
	for _, r := range rows {
		line(r)
		rule('-')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
