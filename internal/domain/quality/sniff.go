package quality

import "strings"

// SniffSampleSize is how many leading characters of a file are inspected
// when sniffing the delimiter.
const SniffSampleSize = 2048

// Delimiter candidates, in no particular order. The winner is picked by
// policy, not by statistics: tab must strictly beat both comma and
// semicolon, semicolon must strictly beat comma, and comma is the final
// fallback on every tie.
const (
	Comma     = ','
	Semicolon = ';'
	Tab       = '\t'
)

// Sample returns the first SniffSampleSize characters of text.
func Sample(text string) string {
	n := 0
	for i := range text {
		if n == SniffSampleSize {
			return text[:i]
		}
		n++
	}
	return text
}

// SniffDelimiter picks the field delimiter for a text sample. The
// ordering below is a compatibility contract; do not reorder.
func SniffDelimiter(sample string) rune {
	commas := strings.Count(sample, string(Comma))
	semis := strings.Count(sample, string(Semicolon))
	tabs := strings.Count(sample, string(Tab))

	if tabs > commas && tabs > semis {
		return Tab
	}
	if semis > commas {
		return Semicolon
	}
	return Comma
}
