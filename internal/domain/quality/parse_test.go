package quality_test

import (
	"testing"

	"github.com/csvgate/csvgate/internal/domain/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows_Basic(t *testing.T) {
	rows := quality.ParseRows("id,name\n1,Alice\n2,Bob\n", quality.Comma)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name"}, rows[0])
	assert.Equal(t, []string{"2", "Bob"}, rows[2])
}

func TestParseRows_QuotedDelimiter(t *testing.T) {
	rows := quality.ParseRows("id,name\n1,\"Doe, Jane\"\n", quality.Comma)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Doe, Jane"}, rows[1])
}

func TestParseRows_QuotedLineBreak(t *testing.T) {
	rows := quality.ParseRows("id,note\n1,\"line one\nline two\"\n", quality.Comma)
	require.Len(t, rows, 2)
	assert.Equal(t, "line one\nline two", rows[1][1])
}

func TestParseRows_CRLF(t *testing.T) {
	rows := quality.ParseRows("id,name\r\n1,Alice\r\n", quality.Comma)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Alice"}, rows[1])
}

func TestParseRows_RaggedRows(t *testing.T) {
	rows := quality.ParseRows("a,b,c\n1,2\n1,2,3,4\n", quality.Comma)
	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 4)
}

func TestParseRows_Semicolon(t *testing.T) {
	rows := quality.ParseRows("a;b\n1;2\n", quality.Semicolon)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestParseRows_EmptyInput(t *testing.T) {
	assert.Empty(t, quality.ParseRows("", quality.Comma))
}

func TestParseRows_BlankLineIsZeroFieldRow(t *testing.T) {
	rows := quality.ParseRows("id,name\n1,Alice\n\n2,Bob\n", quality.Comma)
	require.Len(t, rows, 4)
	assert.Empty(t, rows[2])
	assert.Equal(t, []string{"2", "Bob"}, rows[3])
}

func TestParseRows_SingleNewlineIsOneBlankRow(t *testing.T) {
	rows := quality.ParseRows("\n", quality.Comma)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0])
}

func TestParseRows_BlankLineInsideQuotedField(t *testing.T) {
	rows := quality.ParseRows("id,note\n1,\"a\n\nb\"\n", quality.Comma)
	require.Len(t, rows, 2)
	assert.Equal(t, "a\n\nb", rows[1][1])
}

func TestSplitHeader_TrimsHeaderOnly(t *testing.T) {
	rows := [][]string{{" id ", "name "}, {" 1 ", "Alice"}}
	header, body := quality.SplitHeader(rows)

	assert.Equal(t, []string{"id", "name"}, header)
	require.Len(t, body, 1)
	assert.Equal(t, []string{" 1 ", "Alice"}, body[0])
}
