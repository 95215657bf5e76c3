package domain

// Status classifies a single file evaluation or a whole run.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

func (s Status) severity() int {
	switch s {
	case StatusFail:
		return 2
	case StatusWarn:
		return 1
	default:
		return 0
	}
}

// Raise returns the more severe of the two statuses. A status never
// goes back down once raised: FAIL > WARN > PASS.
func (s Status) Raise(to Status) Status {
	if to.severity() > s.severity() {
		return to
	}
	return s
}

// DupEstimate is the capped-scan duplicate count for one file. Scanned is
// how many leading body rows were fingerprinted; Dups counts the 2nd..nth
// occurrences of an already-seen fingerprint within that window.
type DupEstimate struct {
	Scanned int `json:"scanned"`
	Dups    int `json:"dups"`
}

// FileResult is the evaluation outcome for a single input file. It is
// built once by the evaluator and never mutated afterwards.
type FileResult struct {
	File                   string       `json:"file"`
	Status                 Status       `json:"status"`
	EncodingUsed           string       `json:"encoding_used"`
	DetectedDelimiter      string       `json:"detected_delimiter"`
	Rows                   int          `json:"rows"`
	Cols                   int          `json:"cols"`
	MissingRequiredColumns []string     `json:"missing_required_columns"`
	EmptyRows              int          `json:"empty_rows"`
	DuplicateRowsEst       *DupEstimate `json:"duplicate_rows_est"`
	Errors                 []string     `json:"errors"`
	Notes                  []string     `json:"notes"`
}

// NewFileResult returns a PASS result with empty (non-nil) lists so the
// serialized form always carries arrays, never nulls.
func NewFileResult(relPath string) FileResult {
	return FileResult{
		File:                   relPath,
		Status:                 StatusPass,
		MissingRequiredColumns: []string{},
		Errors:                 []string{},
		Notes:                  []string{},
	}
}

// Report aggregates every FileResult of a run plus run metadata. It owns
// its Files list exclusively and is mutated only through Add.
type Report struct {
	GeneratedAt     string       `json:"generated_at"`
	InputRoot       string       `json:"input_root"`
	RequiredColumns []string     `json:"required_columns"`
	CommitHash      string       `json:"commit_hash,omitempty"`
	OverallStatus   Status       `json:"overall_status"`
	PassCount       int          `json:"pass_count"`
	WarnCount       int          `json:"warn_count"`
	FailCount       int          `json:"fail_count"`
	Files           []FileResult `json:"files"`
}

func NewReport(inputRoot string, required []string) *Report {
	if required == nil {
		required = []string{}
	}
	return &Report{
		InputRoot:       inputRoot,
		RequiredColumns: required,
		OverallStatus:   StatusPass,
		Files:           []FileResult{},
	}
}

// Add appends one file result and folds it into the counters and the
// overall status. Invariant: counters sum to len(Files) and the overall
// status is the most severe per-file status seen so far.
func (r *Report) Add(fr FileResult) {
	switch fr.Status {
	case StatusFail:
		r.FailCount++
	case StatusWarn:
		r.WarnCount++
	default:
		r.PassCount++
	}
	r.OverallStatus = r.OverallStatus.Raise(fr.Status)
	r.Files = append(r.Files, fr)
}

// RunEntry is one line of the persisted run history.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Overall    Status `json:"overall"`
	Pass       int    `json:"pass"`
	Warn       int    `json:"warn"`
	Fail       int    `json:"fail"`
}

// InputFile is one discovered tabular file. RelPath always uses forward
// slashes so reports are stable across operating systems.
type InputFile struct {
	RelPath string
	AbsPath string
}
