package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/csvgate/csvgate/internal/adapters/inbound/cli"
	"github.com/csvgate/csvgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEval(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestEval_PassingRunWritesReports(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "work")
	writeFile(t, root, "a.csv", "id,name\n1,Alice\n")

	out, err := runEval(t, "eval", root, "--outdir", outDir, "--required", "id,name")
	require.NoError(t, err)

	assert.Contains(t, out, "Overall:")
	assert.FileExists(t, filepath.Join(outDir, "eval_report.json"))
	assert.FileExists(t, filepath.Join(outDir, "eval_report.csv"))
	assert.FileExists(t, filepath.Join(outDir, "history.json"))
}

func TestEval_FailingRunReturnsGateError(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, root, "a.csv", "id,name\n1,Alice\n")

	_, err := runEval(t, "eval", root, "--outdir", outDir, "--required", "id,email")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQualityGate)
	assert.Equal(t, domain.ExitQualityGate, domain.ExitCode(err))

	// Reports are still written on FAIL; only fatal conditions skip them.
	assert.FileExists(t, filepath.Join(outDir, "eval_report.json"))
}

func TestEval_MissingInputDir(t *testing.T) {
	outDir := t.TempDir()
	_, err := runEval(t, "eval", filepath.Join(t.TempDir(), "nope"), "--outdir", outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
	assert.NoFileExists(t, filepath.Join(outDir, "eval_report.json"))
}

func TestEval_NoMatchingFiles(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, root, "a.txt", "no tabular data")

	_, err := runEval(t, "eval", root, "--outdir", outDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoFilesFound)
	assert.NoFileExists(t, filepath.Join(outDir, "eval_report.json"))
}

func TestEval_JSONOutput(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", "id\n1\n")

	out, err := runEval(t, "eval", root, "--outdir", t.TempDir(), "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"overall_status\": \"PASS\"")
	assert.Contains(t, out, "\"files\":")
}

func TestEval_HistoryFlag(t *testing.T) {
	root := t.TempDir()
	outDir := t.TempDir()
	writeFile(t, root, "a.csv", "id\n1\n")

	_, err := runEval(t, "eval", root, "--outdir", outDir)
	require.NoError(t, err)

	out, err := runEval(t, "eval", root, "--outdir", outDir, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Run History")
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	cmd := cli.NewRootCmdForTest()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "eval")
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "mcp")
}
