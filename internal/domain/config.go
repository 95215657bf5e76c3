package domain

import "fmt"

// Built-in defaults, applied when neither the CLI nor the config file
// says otherwise.
const (
	DefaultMaxDupScan = 200000
	DefaultOutputDir  = "./work"
	DefaultExtension  = ".csv"
)

// EvalRequest describes one evaluation run. It is resolved once (config
// file merged, defaults filled in) and then immutable for the run.
type EvalRequest struct {
	InputRoot  string
	OutputDir  string
	Required   []string
	MaxDupScan int
	Extension  string
}

// FileConfig holds per-directory configuration loaded from .csvgate.yaml.
// Pointer types distinguish "not specified" from zero values.
type FileConfig struct {
	RequiredColumns []string `yaml:"required_columns"`
	MaxDupScan      *int     `yaml:"max_dup_scan"`
	OutputDir       string   `yaml:"output_dir"`
	Extension       string   `yaml:"extension"`
}

// Validate rejects config values that can never be meaningful.
func (c FileConfig) Validate() error {
	if c.MaxDupScan != nil && *c.MaxDupScan < 0 {
		return fmt.Errorf("max_dup_scan must be >= 0, got %d", *c.MaxDupScan)
	}
	if c.Extension != "" && c.Extension[0] != '.' {
		return fmt.Errorf("extension must start with '.', got %q", c.Extension)
	}
	return nil
}

// Resolve overlays the request on top of the config file, then fills
// remaining gaps with defaults. Explicit request values always win;
// MaxDupScan < 0 means "not set on the command line".
func (r EvalRequest) Resolve(cfg FileConfig) EvalRequest {
	out := r

	if len(out.Required) == 0 {
		out.Required = cfg.RequiredColumns
	}
	if out.Required == nil {
		out.Required = []string{}
	}

	if out.MaxDupScan < 0 {
		if cfg.MaxDupScan != nil {
			out.MaxDupScan = *cfg.MaxDupScan
		} else {
			out.MaxDupScan = DefaultMaxDupScan
		}
	}

	if out.OutputDir == "" {
		out.OutputDir = cfg.OutputDir
	}
	if out.OutputDir == "" {
		out.OutputDir = DefaultOutputDir
	}

	if out.Extension == "" {
		out.Extension = cfg.Extension
	}
	if out.Extension == "" {
		out.Extension = DefaultExtension
	}

	return out
}
