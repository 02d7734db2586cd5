// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rehost/pkg/catalog"
	"github.com/walteh/rehost/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Defaults returned by Default; parsers start from them and Validate refills empty paths and globs
const (
	DefaultWorkflowPath = ".github/workflows"
	DefaultLabels       = "self-hosted"
	DefaultBackupDir    = ".github/workflows-backup"
	DefaultInclude      = "*.yml"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is everything a migration run needs
type Config struct {
	// Directory holding workflow files
	WorkflowPath string `json:"workflow_path,omitempty" yaml:"workflow_path,omitempty" hcl:"workflow_path,optional"`

	// Comma-separated self-hosted labels
	Labels string `json:"labels,omitempty" yaml:"labels,omitempty" hcl:"labels,optional"`

	// Where originals are copied
	BackupDir string `json:"backup_dir,omitempty" yaml:"backup_dir,omitempty" hcl:"backup_dir,optional"`

	// Report changes without writing
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`

	// Glob selecting workflow files
	Include string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`

	// Globs of files to skip
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`

	// Tokens added to the built-in catalog
	ExtraRunners []string `json:"extra_runners,omitempty" yaml:"extra_runners,omitempty" hcl:"extra_runners,optional"`

	// Skip failing files instead of aborting
	ContinueOnError bool `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty" hcl:"continue_on_error,optional"`
}

// 🏭 Default returns a config with every default applied
func Default() *Config {
	return &Config{
		WorkflowPath: DefaultWorkflowPath,
		Labels:       DefaultLabels,
		BackupDir:    DefaultBackupDir,
		Include:      DefaultInclude,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate applies path and glob defaults, cleans paths and checks every field.
// Labels have no fallback here: an explicitly empty value is an error.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.WorkflowPath) == "" {
		cfg.WorkflowPath = DefaultWorkflowPath
	}
	if strings.TrimSpace(cfg.BackupDir) == "" {
		cfg.BackupDir = DefaultBackupDir
	}
	if strings.TrimSpace(cfg.Include) == "" {
		cfg.Include = DefaultInclude
	}

	// Clean up paths
	cfg.WorkflowPath = filepath.Clean(cfg.WorkflowPath)
	cfg.BackupDir = filepath.Clean(cfg.BackupDir)

	if _, err := cfg.LabelSet(); err != nil {
		return errors.Errorf("labels: %w", err)
	}
	if _, err := cfg.Catalog(); err != nil {
		return errors.Errorf("extra_runners: %w", err)
	}

	if !doublestar.ValidatePattern(cfg.Include) {
		return errors.Errorf("include: invalid glob %q", cfg.Include)
	}
	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore %d: invalid glob %q", i, pattern)
		}
	}

	return nil
}

// 🏷️ LabelSet parses the configured labels
func (cfg *Config) LabelSet() (text.LabelSet, error) {
	return text.ParseLabels(cfg.Labels)
}

// 📋 Catalog returns the built-in catalog extended with ExtraRunners
func (cfg *Config) Catalog() (*catalog.Catalog, error) {
	if len(cfg.ExtraRunners) == 0 {
		return catalog.Default(), nil
	}
	return catalog.Default().With(cfg.ExtraRunners...)
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "live"
	if cfg.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s/%s -> runs-on: %s (backups: %s, %s)", cfg.WorkflowPath, cfg.Include, cfg.Labels, cfg.BackupDir, mode)
}
