package domain

// DirScanner discovers tabular files under a root directory.
type DirScanner interface {
	// Scan returns every file with the given extension under root,
	// sorted lexicographically by slash-separated relative path.
	// A missing root yields ErrInputNotFound.
	Scan(root, ext string) ([]InputFile, error)
}

// TextDecoder turns raw file bytes into text. It never fails: the second
// return value labels which decoding path produced the text and whether
// lossy substitution happened.
type TextDecoder interface {
	Decode(raw []byte) (text string, label string)
}

// ConfigLoader reads the optional per-directory config file.
type ConfigLoader interface {
	Load(root string) (FileConfig, error)
}

// ReportWriter persists the finished report to the output directory.
type ReportWriter interface {
	Write(outDir string, r *Report) (jsonPath, csvPath string, err error)
}

// RunHistory records one summary entry per run.
type RunHistory interface {
	Save(outDir string, entry RunEntry) error
	Load(outDir string) ([]RunEntry, error)
}

// GitInfo resolves version-control metadata for the input root.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
