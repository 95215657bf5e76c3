package quality_test

import (
	"fmt"
	"testing"

	"github.com/csvgate/csvgate/internal/domain"
	"github.com/csvgate/csvgate/internal/domain/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dupFile = "id,name\n1,Alice\n1,Alice\n2,Bob\n"

func evalText(text string, p quality.Params) domain.FileResult {
	return quality.EvaluateFile("data.csv", text, "utf-8-sig", p)
}

func TestEvaluateFile_CleanFilePasses(t *testing.T) {
	res := evalText("id,name\n1,Alice\n2,Bob\n", quality.Params{
		Required:   []string{"id", "name"},
		MaxDupScan: 10,
	})

	assert.Equal(t, domain.StatusPass, res.Status)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Cols)
	assert.Empty(t, res.MissingRequiredColumns)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Notes)
	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 0, res.DuplicateRowsEst.Dups)
}

func TestEvaluateFile_DuplicatesWarn(t *testing.T) {
	res := evalText(dupFile, quality.Params{
		Required:   []string{"id", "name"},
		MaxDupScan: 10,
	})

	assert.Equal(t, domain.StatusWarn, res.Status)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 0, res.EmptyRows)
	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 3, res.DuplicateRowsEst.Scanned)
	assert.Equal(t, 1, res.DuplicateRowsEst.Dups)
	assert.Contains(t, res.Notes, "duplicate_rows_est=1 (scanned=3)")
}

func TestEvaluateFile_MissingRequiredOverridesWarn(t *testing.T) {
	res := evalText(dupFile, quality.Params{
		Required:   []string{"id", "email"},
		MaxDupScan: 10,
	})

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, []string{"email"}, res.MissingRequiredColumns)
	assert.Contains(t, res.Errors, "missing_required_columns: email")
	// The duplicate estimate is still computed, but stays a note-free FAIL.
	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 1, res.DuplicateRowsEst.Dups)
	assert.NotContains(t, res.Notes, "duplicate_rows_est=1 (scanned=3)")
}

func TestEvaluateFile_MissingListKeepsRequiredOrder(t *testing.T) {
	res := evalText("name,id\n1,Alice\n", quality.Params{
		Required: []string{"zip", "email", "id"},
	})

	assert.Equal(t, []string{"zip", "email"}, res.MissingRequiredColumns)
	assert.Contains(t, res.Errors, "missing_required_columns: zip;email")
}

func TestEvaluateFile_EmptyFileFailsAndShortCircuits(t *testing.T) {
	res := evalText("", quality.Params{Required: []string{"id"}, MaxDupScan: 10})

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, []string{"empty_file"}, res.Errors)
	assert.Equal(t, 0, res.Rows)
	assert.Equal(t, 0, res.Cols)
	// No other checks ran.
	assert.Nil(t, res.DuplicateRowsEst)
	assert.Empty(t, res.MissingRequiredColumns)
	assert.Empty(t, res.Notes)
}

func TestEvaluateFile_EmptyRowsWarn(t *testing.T) {
	res := evalText("id,name\n1,Alice\n, \n  ,\n", quality.Params{MaxDupScan: 10})

	assert.Equal(t, domain.StatusWarn, res.Status)
	assert.Equal(t, 2, res.EmptyRows)
	assert.Contains(t, res.Notes, "has_empty_rows=2")
}

func TestEvaluateFile_BlankLineCountsAsEmptyRow(t *testing.T) {
	res := evalText("id,name\n1,Alice\n\n2,Bob\n", quality.Params{
		Required:   []string{"id", "name"},
		MaxDupScan: 10,
	})

	assert.Equal(t, domain.StatusWarn, res.Status)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 1, res.EmptyRows)
	assert.Contains(t, res.Notes, "has_empty_rows=1")
}

func TestEvaluateFile_SingleBlankLinePasses(t *testing.T) {
	// One line break is one zero-field header row, not an empty file.
	res := evalText("\n", quality.Params{MaxDupScan: 10})

	assert.Equal(t, domain.StatusPass, res.Status)
	assert.Equal(t, 0, res.Rows)
	assert.Equal(t, 0, res.Cols)
	assert.Empty(t, res.Errors)
}

func TestEvaluateFile_DupScanDisabled(t *testing.T) {
	res := evalText(dupFile, quality.Params{MaxDupScan: 0})

	assert.Nil(t, res.DuplicateRowsEst)
	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestEvaluateFile_DupScanCapped(t *testing.T) {
	// Duplicate sits past the scan window: not counted, scanned reflects cap.
	res := evalText("id\n1\n2\n3\n1\n", quality.Params{MaxDupScan: 2})

	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 2, res.DuplicateRowsEst.Scanned)
	assert.Equal(t, 0, res.DuplicateRowsEst.Dups)
	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestEvaluateFile_FirstOccurrenceNotADuplicate(t *testing.T) {
	// Three identical rows: 2 duplicates, never 3.
	res := evalText("id\n7\n7\n7\n", quality.Params{MaxDupScan: 10})

	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 2, res.DuplicateRowsEst.Dups)
}

func TestEvaluateFile_HeaderOnlyFile(t *testing.T) {
	res := evalText("id,name\n", quality.Params{Required: []string{"id"}, MaxDupScan: 10})

	assert.Equal(t, domain.StatusPass, res.Status)
	assert.Equal(t, 0, res.Rows)
	assert.Equal(t, 2, res.Cols)
	// Empty body: the duplicate scan has nothing to look at.
	assert.Nil(t, res.DuplicateRowsEst)
}

func TestEvaluateFile_SniffsSemicolon(t *testing.T) {
	res := evalText("id;name\n1;Alice\n", quality.Params{Required: []string{"name"}})

	assert.Equal(t, ";", res.DetectedDelimiter)
	assert.Equal(t, domain.StatusPass, res.Status)
}

func TestEvaluateFile_HeaderTrimmedForMatching(t *testing.T) {
	res := evalText(" id , name \n1,Alice\n", quality.Params{Required: []string{"id", "name"}})
	assert.Empty(t, res.MissingRequiredColumns)
}

func TestEvaluateFile_StatusMonotonicAcrossChecks(t *testing.T) {
	// Empty rows (WARN) + missing column (FAIL) + duplicates (WARN):
	// final status must be FAIL regardless of check order effects.
	text := "id,name\n1,Alice\n1,Alice\n,\n"
	res := evalText(text, quality.Params{Required: []string{"email"}, MaxDupScan: 10})

	assert.Equal(t, domain.StatusFail, res.Status)
	assert.Equal(t, 1, res.EmptyRows)
	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 1, res.DuplicateRowsEst.Dups)
}

func TestEvaluateFile_ManyDuplicates(t *testing.T) {
	text := "id,v\n"
	for i := 0; i < 50; i++ {
		text += fmt.Sprintf("%d,x\n", i%10)
	}
	res := evalText(text, quality.Params{MaxDupScan: 1000})

	require.NotNil(t, res.DuplicateRowsEst)
	assert.Equal(t, 50, res.DuplicateRowsEst.Scanned)
	assert.Equal(t, 40, res.DuplicateRowsEst.Dups)
}
