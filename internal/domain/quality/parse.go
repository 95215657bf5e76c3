package quality

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseRows splits decoded text into rows of fields using the given
// delimiter. The text is first broken into logical lines; a blank line
// outside a quoted field becomes a zero-field row, so it still counts
// toward the row total. Quoted fields may contain the delimiter or line
// breaks, and rows are allowed to have differing field counts.
//
// Parsing never fails the file: a malformed record simply ends the row
// sequence. Zero rows means the file was empty, a condition the caller
// must report.
func ParseRows(text string, delim rune) [][]string {
	var rows [][]string
	var rec strings.Builder
	open := false

	flush := func() bool {
		r := csv.NewReader(strings.NewReader(rec.String()))
		r.Comma = delim
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		rec.Reset()
		for {
			fields, err := r.Read()
			if err == io.EOF {
				return true
			}
			if err != nil {
				return false
			}
			rows = append(rows, fields)
		}
	}

	for _, line := range splitLines(text) {
		if !open && line == "" {
			rows = append(rows, []string{})
			continue
		}
		if open {
			rec.WriteString("\n")
		}
		rec.WriteString(line)
		open = quoteOpen(line, open)
		if !open && !flush() {
			return rows
		}
	}
	if rec.Len() > 0 {
		flush()
	}
	return rows
}

// splitLines breaks text into lines on LF, CRLF or lone CR, without a
// trailing empty line for text that ends in a line break. Empty text has
// no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// quoteOpen tracks whether a quoted field is still open after the line.
// Escaped quotes ("") toggle twice and cancel out.
func quoteOpen(line string, open bool) bool {
	for _, r := range line {
		if r == '"' {
			open = !open
		}
	}
	return open
}

// SplitHeader separates a non-empty row sequence into the trimmed header
// and the body. Header fields are trimmed for matching; body fields are
// left untouched. A zero-field first row yields an empty header.
func SplitHeader(rows [][]string) (header []string, body [][]string) {
	header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, rows[1:]
}
