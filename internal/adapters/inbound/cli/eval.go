package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/csvgate/csvgate/internal/adapters/outbound/config"
	"github.com/csvgate/csvgate/internal/adapters/outbound/decoder"
	"github.com/csvgate/csvgate/internal/adapters/outbound/gitinfo"
	"github.com/csvgate/csvgate/internal/adapters/outbound/history"
	"github.com/csvgate/csvgate/internal/adapters/outbound/reportwriter"
	"github.com/csvgate/csvgate/internal/adapters/outbound/scanner"
	"github.com/csvgate/csvgate/internal/adapters/outbound/tui"
	"github.com/csvgate/csvgate/internal/application"
	"github.com/csvgate/csvgate/internal/domain"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var (
		outDir      string
		required    string
		extension   string
		maxDupScan  int
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "eval [path]",
		Short: "Evaluate a directory of delimited text files",
		Long:  "Recursively evaluate every tabular file under a directory: encoding, delimiter, required columns, empty rows, and an approximate duplicate count. Writes JSON and CSV reports and exits non-zero on FAIL.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewEvalService(
				scanner.New(),
				decoder.New(),
				config.New(),
			)

			req, err := svc.Resolve(domain.EvalRequest{
				InputRoot:  path,
				OutputDir:  outDir,
				Required:   splitRequired(required),
				MaxDupScan: maxDupScan,
				Extension:  extension,
			})
			if err != nil {
				return err
			}

			report, err := svc.Evaluate(req)
			if err != nil {
				return err
			}

			// Attach git commit hash if the input root is versioned
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(req.InputRoot); err == nil {
				report.CommitHash = hash
			}

			jsonPath, csvPath, err := reportwriter.New().Write(req.OutputDir, report)
			if err != nil {
				return fmt.Errorf("writing reports: %w", err)
			}

			hist := history.New()
			entry := domain.RunEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Overall:    report.OverallStatus,
				Pass:       report.PassCount,
				Warn:       report.WarnCount,
				Fail:       report.FailCount,
			}
			_ = hist.Save(req.OutputDir, entry) // best-effort

			switch {
			case showHistory:
				entries, err := hist.Load(req.OutputDir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, jsonPath, csvPath))
			}

			if report.OverallStatus == domain.StatusFail {
				return fmt.Errorf("%w: overall status FAIL (%d of %d files)",
					domain.ErrQualityGate, report.FailCount, len(report.Files))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "", "Where to write eval reports (default ./work)")
	cmd.Flags().StringVar(&required, "required", "", "Required columns, comma-separated")
	cmd.Flags().StringVar(&extension, "ext", "", "File extension to evaluate (default .csv)")
	cmd.Flags().IntVar(&maxDupScan, "max-dup-scan", -1, "Max rows to scan for duplicates per file, 0 disables (default 200000)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show run history instead of the summary")

	return cmd
}

// splitRequired parses the comma-separated required-column list, trimming
// entries and dropping empties.
func splitRequired(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
