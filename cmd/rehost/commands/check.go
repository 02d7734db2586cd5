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
	"github.com/walteh/rehost/pkg/operation"
	"github.com/walteh/rehost/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrHostedRunnersFound is returned by check when a migration is still needed
var ErrHostedRunnersFound = errors.Base("hosted runners found")

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	var extraRunners []string
	var include string

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Fail if any workflow still uses a hosted runner",
		Long: `Check lists every runs-on field that names a GitHub-hosted runner and
exits non-zero when it finds one. Nothing is written or backed up.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.LoadConfig(ctx)
			if err != nil {
				return err
			}
			cfg.DryRun = true
			cfg.ContinueOnError = false
			if cmd.Flags().Changed("include") {
				cfg.Include = include
			}
			cfg.ExtraRunners = append(cfg.ExtraRunners, extraRunners...)
			if len(args) > 0 {
				cfg.WorkflowPath = args[0]
			}

			op, err := operation.NewMigrateOperation(operation.Options{
				Config:   cfg,
				Reporter: status.NewConsoleReporter(o.Logger(ctx), status.WithDiffs(false)),
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			result, err := op.Execute(ctx)
			if err != nil {
				return errors.Errorf("checking workflows: %w", err)
			}

			if result.Stats.Migrated > 0 {
				return errors.Errorf("%w in %d file(s)", ErrHostedRunnersFound, result.Stats.Migrated)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&include, "include", "", "glob selecting workflow files")
	cmd.Flags().StringSliceVar(&extraRunners, "extra-runner", nil, "additional hosted runner label to look for (repeatable)")

	return cmd
}
