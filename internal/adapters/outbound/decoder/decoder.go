package decoder

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/traditionalchinese"
)

// Encoding labels surfaced in reports. The "(replace)" suffix flags that
// undecodable bytes were substituted with U+FFFD, so consumers can tell
// degraded decoding from a clean read.
const (
	LabelUTF8   = "utf-8-sig"
	LabelLegacy = "cp950(replace)"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder implements domain.TextDecoder with a two-step fallback: strict
// UTF-8 (leading BOM tolerated and stripped), then Big5 — the closest
// match for the cp950 codepage — with lossy substitution. No other
// encodings are attempted.
type Decoder struct{}

func New() *Decoder { return &Decoder{} }

// Decode never fails; the fallback path substitutes rather than erroring.
func (d *Decoder) Decode(raw []byte) (string, string) {
	trimmed := bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(trimmed) {
		return string(trimmed), LabelUTF8
	}

	out, err := traditionalchinese.Big5.NewDecoder().Bytes(raw)
	if err != nil {
		// The Big5 decoder substitutes invalid input instead of
		// erroring; this branch guards against transform edge cases.
		out = bytes.ToValidUTF8(raw, []byte(string(utf8.RuneError)))
	}
	return string(out), LabelLegacy
}
