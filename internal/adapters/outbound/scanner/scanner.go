package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/csvgate/csvgate/internal/domain"
)

// FileScanner implements domain.DirScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan recursively collects files whose name ends in ext, sorted by
// slash-separated relative path so evaluation order is stable across
// runs and operating systems.
func (s *FileScanner) Scan(root, ext string) ([]domain.InputFile, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(absRoot); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, absRoot)
		}
		return nil, err
	}

	var files []domain.InputFile
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		files = append(files, domain.InputFile{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}
