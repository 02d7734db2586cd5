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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/rehost/cmd/rehost/opts"
	"github.com/walteh/rehost/pkg/config"
	"github.com/walteh/rehost/pkg/operation"
	"github.com/walteh/rehost/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrIncomplete is returned when some files could not be processed
var ErrIncomplete = errors.Base("migration incomplete")

type migrateFlags struct {
	labels          string
	backupDir       string
	dryRun          bool
	include         string
	ignore          []string
	extraRunners    []string
	continueOnError bool
}

// NewMigrateCmd creates a new migrate command
func NewMigrateCmd(o *opts.RootOpts) *cobra.Command {
	flags := &migrateFlags{}

	cmd := &cobra.Command{
		Use:   "migrate [path]",
		Short: "Rewrite hosted runners to self-hosted labels",
		Long: `Migrate replaces GitHub-hosted runner images in runs-on fields with
self-hosted runner labels. It will:
1. List the workflow files in the directory
2. Back up every file that names a hosted runner
3. Rewrite its runs-on values to the given labels

With --dry-run nothing is written and a line diff is shown instead.`,
		Example: `  rehost migrate --dry-run
  rehost migrate -l self-hosted,linux,x64 .github/workflows
  rehost migrate --ignore 'release-*.yml' --continue-on-error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg, args)

			op, err := operation.NewMigrateOperation(operation.Options{
				Config:   cfg,
				Reporter: status.NewConsoleReporter(o.Logger(ctx)),
			})
			if err != nil {
				return errors.Errorf("creating migrate operation: %w", err)
			}

			result, err := op.Execute(ctx)
			if err != nil {
				return errors.Errorf("migrating workflows: %w", err)
			}

			if len(result.Failures) > 0 {
				return errors.Errorf("%w: %d file(s) failed", ErrIncomplete, len(result.Failures))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.labels, "labels", "l", config.DefaultLabels, "comma-separated self-hosted runner labels")
	f.StringVarP(&flags.backupDir, "backup-dir", "b", config.DefaultBackupDir, "directory for backups of modified files")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "show what would change without writing")
	f.StringVar(&flags.include, "include", config.DefaultInclude, "glob selecting workflow files")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob of workflow files to skip (repeatable)")
	f.StringSliceVar(&flags.extraRunners, "extra-runner", nil, "additional hosted runner label to migrate (repeatable)")
	f.BoolVar(&flags.continueOnError, "continue-on-error", false, "skip files that fail instead of aborting")

	return cmd
}

// apply overrides config values with flags the user set explicitly
func (m *migrateFlags) apply(cmd *cobra.Command, cfg *config.Config, args []string) {
	f := cmd.Flags()
	if f.Changed("labels") {
		cfg.Labels = m.labels
	}
	if f.Changed("backup-dir") {
		cfg.BackupDir = m.backupDir
	}
	if f.Changed("dry-run") {
		cfg.DryRun = m.dryRun
	}
	if f.Changed("include") {
		cfg.Include = m.include
	}
	if f.Changed("ignore") {
		cfg.Ignore = append(cfg.Ignore, m.ignore...)
	}
	if f.Changed("extra-runner") {
		cfg.ExtraRunners = append(cfg.ExtraRunners, m.extraRunners...)
	}
	if f.Changed("continue-on-error") {
		cfg.ContinueOnError = m.continueOnError
	}
	if len(args) > 0 {
		cfg.WorkflowPath = args[0]
	}
}
