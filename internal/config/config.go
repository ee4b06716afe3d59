package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmlify/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPrefixLength = 50   // CSS class prefix
	MaxHeightLength = 20   // "300px", "40vh"
	MaxTitleLength  = 200  // page title
	MaxPathLength   = 2048 // file paths
)

// Config holds all configuration for snapshot generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Layout string `yaml:"layout"` // Layout YAML path (empty = positional arg required)
	Index  string `yaml:"index"`  // Index template path (empty = embedded template)
	JSONLD string `yaml:"jsonld"` // Structured data path (empty = none)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	File string `yaml:"file"` // Output path (empty = stdout)
}

// SnapshotConfig defines normalization and page options.
type SnapshotConfig struct {
	ClassPrefix     string   `yaml:"classPrefix"`     // CSS class prefix (empty = "ssr")
	DefaultHeight   string   `yaml:"defaultHeight"`   // placeholder height (empty = "50px")
	LargeHeight     string   `yaml:"largeHeight"`     // large placeholder height (empty = "300px")
	LargeComponents []string `yaml:"largeComponents"` // widget types getting the large height
	Title           string   `yaml:"title"`           // page title for the index template
}

// Validate checks field lengths. Called automatically by LoadConfig,
// but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.layout", c.Input.Layout, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.index", c.Input.Index, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("input.jsonld", c.Input.JSONLD, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.file", c.Output.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("snapshot.classPrefix", c.Snapshot.ClassPrefix, MaxPrefixLength); err != nil {
		return err
	}
	if err := validateFieldLength("snapshot.defaultHeight", c.Snapshot.DefaultHeight, MaxHeightLength); err != nil {
		return err
	}
	if err := validateFieldLength("snapshot.largeHeight", c.Snapshot.LargeHeight, MaxHeightLength); err != nil {
		return err
	}
	if err := validateFieldLength("snapshot.title", c.Snapshot.Title, MaxTitleLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration; library defaults apply
// for every empty field.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-htmlify/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-htmlify", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
