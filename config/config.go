// Package config loads pbirview settings from an optional YAML file and
// the CI environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/pbirview"
	"github.com/fwojciec/pbirview/fs"
)

// FileName is the name of the optional configuration file at the repo root.
const FileName = ".pbirview.yaml"

// Config holds the file-based settings shared by all commands.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Comment CommentConfig `yaml:"comment"`
}

// IndexConfig holds settings for the indexing command.
type IndexConfig struct {
	ReportSuffix string `yaml:"report_suffix"`
	MappingPath  string `yaml:"mapping_path"`
	SkipInvalid  bool   `yaml:"skip_invalid"`
}

// CommentConfig holds settings for building and posting the comment.
type CommentConfig struct {
	CommentPath  string `yaml:"comment_path"`
	WorkflowFile string `yaml:"workflow_file"`
	Marker       string `yaml:"marker"`
	Cols         int    `yaml:"cols"`
	Rows         int    `yaml:"rows"`
}

// ErrInvalidConfig is returned when config validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultConfig returns configuration with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			ReportSuffix: pbirview.ReportSuffix,
			MappingPath:  fs.DefaultMappingPath,
		},
		Comment: CommentConfig{
			CommentPath:  fs.DefaultCommentPath,
			WorkflowFile: pbirview.DefaultWorkflowFile,
			Marker:       pbirview.DefaultMarker,
			Cols:         pbirview.DefaultCols,
			Rows:         pbirview.DefaultRows,
		},
	}
}

// LoadFromPath reads config from path, merged over the defaults.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())
	if err := Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge returns loaded with zero values replaced by defaults.
func Merge(loaded, defaults *Config) *Config {
	return &Config{
		Index: IndexConfig{
			ReportSuffix: firstNonEmpty(loaded.Index.ReportSuffix, defaults.Index.ReportSuffix),
			MappingPath:  firstNonEmpty(loaded.Index.MappingPath, defaults.Index.MappingPath),
			SkipInvalid:  loaded.Index.SkipInvalid || defaults.Index.SkipInvalid,
		},
		Comment: CommentConfig{
			CommentPath:  firstNonEmpty(loaded.Comment.CommentPath, defaults.Comment.CommentPath),
			WorkflowFile: firstNonEmpty(loaded.Comment.WorkflowFile, defaults.Comment.WorkflowFile),
			Marker:       firstNonEmpty(loaded.Comment.Marker, defaults.Comment.Marker),
			Cols:         firstPositive(loaded.Comment.Cols, defaults.Comment.Cols),
			Rows:         firstPositive(loaded.Comment.Rows, defaults.Comment.Rows),
		},
	}
}

// Validate checks that config values are usable.
func Validate(cfg *Config) error {
	if cfg.Comment.Cols < 2 || cfg.Comment.Rows < 2 {
		return fmt.Errorf("%w: cols and rows must be at least 2, got %dx%d",
			ErrInvalidConfig, cfg.Comment.Cols, cfg.Comment.Rows)
	}
	if cfg.Comment.Marker == "" {
		return fmt.Errorf("%w: marker must not be empty", ErrInvalidConfig)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
