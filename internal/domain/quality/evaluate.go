package quality

import "github.com/csvgate/csvgate/internal/domain"

// EvaluateFile runs the full per-file pipeline over already-decoded text:
// sniff the delimiter, parse rows, then apply the ordered body checks.
//
// An empty parse (zero rows) fails the file with the empty_file error and
// skips every other check. Anything else always completes: individual
// checks only raise the status, they never abort the evaluation.
func EvaluateFile(relPath, text, encodingLabel string, p Params) domain.FileResult {
	res := domain.NewFileResult(relPath)
	res.EncodingUsed = encodingLabel

	delim := SniffDelimiter(Sample(text))
	res.DetectedDelimiter = string(delim)

	rows := ParseRows(text, delim)
	if len(rows) == 0 {
		res.Status = domain.StatusFail
		res.Errors = append(res.Errors, codeEmptyFile)
		return res
	}

	header, body := SplitHeader(rows)
	res.Cols = len(header)
	res.Rows = len(body)

	d := &fileData{header: header, body: body, params: p}
	for _, c := range bodyChecks {
		res = c(d, res)
	}
	return res
}
