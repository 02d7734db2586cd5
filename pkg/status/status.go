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

package status

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/rehost/pkg/log"
	"github.com/walteh/rehost/pkg/operation"
)

// 🔧 ConsoleReporter prints a run as it happens and summarizes it at the end
type ConsoleReporter struct {
	logger    *log.Logger // Console and structured sink
	formatter Formatter   // Formatter for short status messages
	showDiffs bool        // Print dry-run line diffs under each file

	// Progress tracking
	mu        sync.Mutex
	info      operation.RunInfo
	processed int
}

var _ operation.Reporter = (*ConsoleReporter)(nil)

// Option configures a ConsoleReporter
type Option func(*ConsoleReporter)

// WithFormatter replaces the default formatter
func WithFormatter(f Formatter) Option {
	return func(r *ConsoleReporter) {
		r.formatter = f
	}
}

// WithDiffs toggles dry-run diff output
func WithDiffs(show bool) Option {
	return func(r *ConsoleReporter) {
		r.showDiffs = show
	}
}

// 🏭 NewConsoleReporter creates a new console reporter
func NewConsoleReporter(logger *log.Logger, opts ...Option) *ConsoleReporter {
	r := &ConsoleReporter{
		logger:    logger,
		formatter: NewDefaultFormatter(),
		showDiffs: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartRun prints the run header
func (r *ConsoleReporter) StartRun(ctx context.Context, info operation.RunInfo) {
	r.mu.Lock()
	r.info = info
	r.processed = 0
	r.mu.Unlock()

	mode := "migrating"
	if info.DryRun {
		mode = "dry run"
	}
	r.logger.Header(fmt.Sprintf("%s %s -> runs-on: %s", mode, info.WorkflowPath, info.Labels.Value()))

	if info.Files == 0 {
		r.logger.Info("no workflow files found")
	}
}

// FileProcessed prints one line for the file, plus its diff for dry runs
func (r *ConsoleReporter) FileProcessed(ctx context.Context, report operation.FileReport) {
	r.mu.Lock()
	r.processed++
	current, total := r.processed, r.info.Files
	r.mu.Unlock()

	op := log.FileOperation{
		Path:         report.Name,
		Status:       report.Outcome.String(),
		Replacements: report.Replacements,
	}

	switch report.Outcome {
	case operation.OutcomeMigrated:
		op.IsMigrated = true
		op.Detail = "backup: " + report.BackupPath
	case operation.OutcomePreview:
		op.IsPreview = true
		op.Detail = FormatMatches(report.Matches)
	case operation.OutcomeSkipped:
		op.IsSkipped = true
	case operation.OutcomeFailed:
		op.IsFailed = true
		if report.Err != nil {
			op.Detail = report.Err.Error()
		}
	}

	r.logger.LogFileOperation(ctx, op)

	if r.showDiffs && report.Outcome == operation.OutcomePreview && len(report.Diff) > 0 {
		r.logger.Raw(FormatDiff(report.Diff))
	}

	zerolog.Ctx(ctx).Debug().
		Str("progress", r.formatter.FormatProgress(current, total)).
		Msg(r.formatter.FormatOutcome(report))
}

// FinishRun prints the summary table and what to do next
func (r *ConsoleReporter) FinishRun(ctx context.Context, result *operation.Result) {
	r.mu.Lock()
	info := r.info
	r.mu.Unlock()

	r.logger.LogNewline()

	table, err := RenderSummary(result.Stats, result.DryRun)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("rendering summary table")
	} else {
		r.logger.Raw(table)
		r.logger.LogNewline()
	}

	for _, ferr := range result.Failures {
		r.logger.Error(r.formatter.FormatError(ferr))
	}

	switch {
	case result.Stats.Migrated == 0 && len(result.Failures) == 0:
		r.logger.Success("no hosted runners found, nothing to migrate")
	case result.DryRun:
		r.logger.Infof("%d file(s) would be migrated: %s", len(result.Migrated), strings.Join(result.Migrated, ", "))
		if r.showDiffs {
			r.logger.Info("review the diff above, then rerun without --dry-run to apply it")
		} else {
			r.logger.Info("run rehost migrate --dry-run to see the changes")
		}
	case result.Stats.Migrated > 0:
		r.logger.Successf("migrated %d file(s): %s", len(result.Migrated), strings.Join(result.Migrated, ", "))
		r.logger.Infof("originals were backed up to %s", info.BackupDir)
		r.logger.Info("review the changes and commit them")
	}

	if len(result.Failures) > 0 {
		r.logger.Errorf("%d file(s) could not be processed", len(result.Failures))
	}
}

// 📊 RenderSummary renders the run statistics as a table
func RenderSummary(stats operation.Stats, dryRun bool) (string, error) {
	migrated := "Migrated"
	if dryRun {
		migrated = "Would migrate"
	}

	data := pterm.TableData{
		{"Files", "Count"},
		{"Total", fmt.Sprint(stats.Total)},
		{migrated, fmt.Sprint(stats.Migrated)},
		{"Already compliant", fmt.Sprint(stats.AlreadyCompliant)},
		{"Skipped", fmt.Sprint(stats.Skipped)},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
