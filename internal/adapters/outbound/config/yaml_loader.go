package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/csvgate/csvgate/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".csvgate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .csvgate.yaml from
// the input root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .csvgate.yaml from root. A missing file is not an error:
// the zero config is returned and defaults apply.
func (l *YAMLLoader) Load(root string) (domain.FileConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.FileConfig{}, nil
		}
		return domain.FileConfig{}, err
	}

	var cfg domain.FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.FileConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.FileConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
