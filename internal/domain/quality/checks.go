package quality

import (
	"fmt"
	"strings"

	"github.com/csvgate/csvgate/internal/domain"
)

// Params configures the per-file checks.
type Params struct {
	Required   []string
	MaxDupScan int
}

// fileData is the parsed view of one file shared by all checks.
type fileData struct {
	header []string
	body   [][]string
	params Params
}

// check inspects the parsed file and returns the result with its status
// raised monotonically. Checks are independent: none short-circuits
// another, and each only ever raises the status.
type check func(d *fileData, res domain.FileResult) domain.FileResult

// bodyChecks run in this fixed order for every non-empty file.
var bodyChecks = []check{
	checkEmptyRows,
	checkRequiredColumns,
	checkDuplicates,
}

// codeEmptyFile is the error code recorded for files that parse to zero rows.
const codeEmptyFile = "empty_file"

// checkEmptyRows counts body rows whose fields are all blank after
// trimming. Any such row degrades the file to at least WARN.
func checkEmptyRows(d *fileData, res domain.FileResult) domain.FileResult {
	empty := 0
	for _, row := range d.body {
		if rowIsEmpty(row) {
			empty++
		}
	}
	res.EmptyRows = empty
	if empty > 0 {
		res.Status = res.Status.Raise(domain.StatusWarn)
		res.Notes = append(res.Notes, fmt.Sprintf("has_empty_rows=%d", empty))
	}
	return res
}

func rowIsEmpty(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// checkRequiredColumns fails the file when any required column name is
// absent from the header. The missing list keeps the order of the
// required list, not of the header.
func checkRequiredColumns(d *fileData, res domain.FileResult) domain.FileResult {
	present := make(map[string]bool, len(d.header))
	for _, h := range d.header {
		present[h] = true
	}

	missing := []string{}
	for _, c := range d.params.Required {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	res.MissingRequiredColumns = missing

	if len(missing) > 0 {
		res.Status = res.Status.Raise(domain.StatusFail)
		res.Errors = append(res.Errors,
			fmt.Sprintf("missing_required_columns: %s", strings.Join(missing, ";")))
	}
	return res
}

// checkDuplicates fingerprints at most min(len(body), MaxDupScan) leading
// body rows and counts repeats within that window. The first occurrence
// is never a duplicate; only the 2nd..nth identical rows count. The
// estimate is skipped entirely when the window is empty, and duplicates
// only raise the status when the file has not already failed.
func checkDuplicates(d *fileData, res domain.FileResult) domain.FileResult {
	maxScan := d.params.MaxDupScan
	if maxScan < 0 {
		maxScan = 0
	}
	if len(d.body) < maxScan {
		maxScan = len(d.body)
	}
	if maxScan == 0 {
		return res
	}

	seen := make(map[string]struct{}, maxScan)
	dups := 0
	for _, row := range d.body[:maxScan] {
		fp := FingerprintRow(row)
		if _, ok := seen[fp]; ok {
			dups++
			continue
		}
		seen[fp] = struct{}{}
	}

	res.DuplicateRowsEst = &domain.DupEstimate{Scanned: maxScan, Dups: dups}
	if dups > 0 && res.Status != domain.StatusFail {
		res.Status = res.Status.Raise(domain.StatusWarn)
		res.Notes = append(res.Notes,
			fmt.Sprintf("duplicate_rows_est=%d (scanned=%d)", dups, maxScan))
	}
	return res
}
