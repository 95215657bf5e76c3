package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/csvgate/csvgate/internal/domain"
	"github.com/csvgate/csvgate/internal/domain/quality"
)

// timestampLayout matches ISO-8601 at second precision, local time.
const timestampLayout = "2006-01-02T15:04:05"

// EvalService orchestrates the evaluation pipeline:
// resolve config → scan → per file: decode → evaluate → fold into report.
type EvalService struct {
	scanner domain.DirScanner
	decoder domain.TextDecoder
	config  domain.ConfigLoader
}

func NewEvalService(
	scanner domain.DirScanner,
	decoder domain.TextDecoder,
	config domain.ConfigLoader,
) *EvalService {
	return &EvalService{
		scanner: scanner,
		decoder: decoder,
		config:  config,
	}
}

// Resolve merges the request with the optional .csvgate.yaml in the
// input root and fills remaining gaps with defaults. The input root is
// resolved to an absolute path.
func (s *EvalService) Resolve(req domain.EvalRequest) (domain.EvalRequest, error) {
	absRoot, err := filepath.Abs(req.InputRoot)
	if err != nil {
		return domain.EvalRequest{}, fmt.Errorf("resolving input root: %w", err)
	}
	req.InputRoot = absRoot

	cfg, err := s.config.Load(absRoot)
	if err != nil {
		return domain.EvalRequest{}, fmt.Errorf("loading config: %w", err)
	}

	return req.Resolve(cfg), nil
}

// Evaluate runs a resolved request to completion. Files are processed
// strictly one at a time in lexicographic path order; per-file problems
// land in the report, never here. Only environment-level conditions
// (missing input root, zero matching files, unreadable file) surface as
// errors, before or instead of a report.
func (s *EvalService) Evaluate(req domain.EvalRequest) (*domain.Report, error) {
	files, err := s.scanner.Scan(req.InputRoot, req.Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files under %s",
			domain.ErrNoFilesFound, req.Extension, req.InputRoot)
	}

	params := quality.Params{
		Required:   req.Required,
		MaxDupScan: req.MaxDupScan,
	}

	report := domain.NewReport(req.InputRoot, req.Required)
	for _, f := range files {
		raw, err := os.ReadFile(f.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}

		text, label := s.decoder.Decode(raw)
		report.Add(quality.EvaluateFile(f.RelPath, text, label, params))
	}

	report.GeneratedAt = time.Now().Format(timestampLayout)
	return report, nil
}
