package reportwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/csvgate/csvgate/internal/domain"
)

// Fixed report filenames inside the output directory. Prior runs are
// overwritten.
const (
	JSONFileName = "eval_report.json"
	CSVFileName  = "eval_report.csv"
)

// csvHeader is the fixed header row of the flattened report.
var csvHeader = []string{
	"file", "status", "rows", "cols", "detected_delimiter", "encoding_used",
	"missing_required_columns", "empty_rows", "dup_scanned", "dup_count",
	"notes", "errors",
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer implements domain.ReportWriter: a structured JSON document plus
// a flattened CSV summary, both under fixed names in the output
// directory.
type Writer struct{}

func New() *Writer { return &Writer{} }

func (w *Writer) Write(outDir string, r *domain.Report) (string, string, error) {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(absOut, 0755); err != nil {
		return "", "", fmt.Errorf("creating output dir: %w", err)
	}

	jsonPath := filepath.Join(absOut, JSONFileName)
	if err := writeJSON(jsonPath, r); err != nil {
		return "", "", err
	}

	csvPath := filepath.Join(absOut, CSVFileName)
	if err := writeCSV(csvPath, r); err != nil {
		return "", "", err
	}

	return jsonPath, csvPath, nil
}

func writeJSON(path string, r *domain.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// writeCSV flattens one row per file. Multi-valued fields are joined:
// missing columns with ";", notes and errors with "|". The file starts
// with a UTF-8 BOM so spreadsheet tools pick the right encoding.
func writeCSV(path string, r *domain.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range r.Files {
		if err := cw.Write(fileRow(it)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fileRow(it domain.FileResult) []string {
	dupScanned, dupCount := "", ""
	if it.DuplicateRowsEst != nil {
		dupScanned = strconv.Itoa(it.DuplicateRowsEst.Scanned)
		dupCount = strconv.Itoa(it.DuplicateRowsEst.Dups)
	}
	return []string{
		it.File,
		string(it.Status),
		strconv.Itoa(it.Rows),
		strconv.Itoa(it.Cols),
		it.DetectedDelimiter,
		it.EncodingUsed,
		strings.Join(it.MissingRequiredColumns, ";"),
		strconv.Itoa(it.EmptyRows),
		dupScanned,
		dupCount,
		strings.Join(it.Notes, "|"),
		strings.Join(it.Errors, "|"),
	}
}
