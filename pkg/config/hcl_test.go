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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHCLParser(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		environ     []string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "literal_values",
			config: `
workflow_path     = ".github/workflows"
labels            = "self-hosted,windows,x64"
backup_dir        = "backup"
dry_run           = true
ignore            = ["nightly.yml"]
continue_on_error = false
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".github/workflows", cfg.WorkflowPath)
				assert.Equal(t, "self-hosted,windows,x64", cfg.Labels)
				assert.Equal(t, "backup", cfg.BackupDir)
				assert.True(t, cfg.DryRun)
				assert.Equal(t, []string{"nightly.yml"}, cfg.Ignore)
			},
		},
		{
			name:    "labels_from_env",
			config:  "labels = env.RUNNER_LABELS\n",
			environ: []string{"RUNNER_LABELS=self-hosted,linux", "HOME=/root", "BROKEN"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "self-hosted,linux", cfg.Labels)
			},
		},
		{
			name:   "absent_attributes_keep_defaults",
			config: "dry_run = true\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultLabels, cfg.Labels)
				assert.Equal(t, DefaultWorkflowPath, cfg.WorkflowPath)
				assert.True(t, cfg.DryRun)
			},
		},
		{
			name:   "explicit_empty_labels",
			config: "labels = \"\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Labels, "an explicit empty value must survive parsing")
				assert.Error(t, cfg.Validate())
			},
		},
		{
			name:        "missing_env_var",
			config:      "labels = env.NOPE\n",
			environ:     []string{"HOME=/root"},
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "unknown_attribute",
			config:      "destination = \"x\"\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "syntax_error",
			config:      "labels = \n",
			wantErr:     true,
			errContains: "parsing HCL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			environ := tt.environ
			p := &HCLParser{Environ: func() []string { return environ }}

			cfg, err := p.Parse(context.Background(), []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a/.rehost.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("rehost.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("rehost.hcl"))
	assert.IsType(t, &JSONParser{}, GetParser("rehost.JSON"))
	assert.Nil(t, GetParser("rehost.toml"))
}
