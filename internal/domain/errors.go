package domain

import "errors"

// Fatal environment conditions and the quality gate, each mapped to its
// own process exit code so callers (CI, task runners) can tell them apart.
var (
	ErrInputNotFound = errors.New("input folder not found")
	ErrNoFilesFound  = errors.New("no matching files found")
	ErrQualityGate   = errors.New("quality gate failed")
)

// Exit codes. 0 covers PASS and WARN runs.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitInputNotFound = 2
	ExitNoFilesFound  = 3
	ExitQualityGate   = 6
)

// ExitCode maps an error returned from the CLI to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrNoFilesFound):
		return ExitNoFilesFound
	case errors.Is(err, ErrQualityGate):
		return ExitQualityGate
	default:
		return ExitFailure
	}
}
