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
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rehost/pkg/log"
	"github.com/walteh/rehost/pkg/operation"
	"github.com/walteh/rehost/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func newTestReporter(t *testing.T) (*ConsoleReporter, *bytes.Buffer, context.Context) {
	var buf bytes.Buffer
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	reporter := NewConsoleReporter(log.New(&buf, zlog))
	return reporter, &buf, zlog.WithContext(context.Background())
}

func TestConsoleReporter_DryRun(t *testing.T) {
	reporter, buf, ctx := newTestReporter(t)

	reporter.StartRun(ctx, operation.RunInfo{
		WorkflowPath: ".github/workflows",
		Labels:       text.MustParseLabels("self-hosted,linux"),
		BackupDir:    ".github/workflows-backup",
		DryRun:       true,
		Files:        2,
	})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:         "ci.yml",
		Outcome:      operation.OutcomePreview,
		Replacements: 1,
		Matches:      []text.Match{{Token: "ubuntu-latest", Line: 6}},
		Diff: []text.LineChange{
			{Line: 6, Original: "    runs-on: ubuntu-latest", Modified: "    runs-on: [self-hosted, linux]"},
		},
	})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:    "release.yml",
		Outcome: operation.OutcomeNotApplicable,
	})
	reporter.FinishRun(ctx, &operation.Result{
		DryRun:   true,
		Stats:    operation.Stats{Total: 2, Migrated: 1, AlreadyCompliant: 1},
		Migrated: []string{"ci.yml"},
	})

	out := buf.String()
	assert.Contains(t, out, "dry run .github/workflows -> runs-on: [self-hosted, linux]")
	assert.Contains(t, out, "would migrate")
	assert.Contains(t, out, "line 6: ubuntu-latest")
	assert.Contains(t, out, "- "+"    runs-on: ubuntu-latest")
	assert.Contains(t, out, "+ "+"    runs-on: [self-hosted, linux]")
	assert.Contains(t, out, "compliant")
	assert.Contains(t, out, "Would migrate")
	assert.Contains(t, out, "rerun without --dry-run")
	assert.NotContains(t, out, "backed up")
}

func TestConsoleReporter_Live(t *testing.T) {
	reporter, buf, ctx := newTestReporter(t)

	reporter.StartRun(ctx, operation.RunInfo{
		WorkflowPath: "wf",
		Labels:       text.MustParseLabels("self-hosted"),
		BackupDir:    "wf-backup",
		Files:        2,
	})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:         "ci.yml",
		Outcome:      operation.OutcomeMigrated,
		BackupPath:   "wf-backup/ci.yml",
		Replacements: 3,
	})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:    "bad.yml",
		Outcome: operation.OutcomeFailed,
		Err:     &operation.FileError{Phase: operation.PhaseBackup, File: "wf/bad.yml", Err: errors.New("disk full")},
	})
	reporter.FinishRun(ctx, &operation.Result{
		Stats:    operation.Stats{Total: 2, Migrated: 1, Skipped: 1},
		Migrated: []string{"ci.yml"},
		Failures: []*operation.FileError{{Phase: operation.PhaseBackup, File: "wf/bad.yml", Err: errors.New("disk full")}},
	})

	out := buf.String()
	assert.Contains(t, out, "migrating wf -> runs-on: self-hosted")
	assert.Contains(t, out, "backup: wf-backup/ci.yml")
	assert.Contains(t, out, "backup wf/bad.yml: disk full")
	assert.Contains(t, out, "migrated 1 file(s): ci.yml")
	assert.Contains(t, out, "originals were backed up to wf-backup")
	assert.Contains(t, out, "1 file(s) could not be processed")
}

func TestConsoleReporter_FailedWriteShowsBackup(t *testing.T) {
	reporter, buf, ctx := newTestReporter(t)

	ferr := &operation.FileError{
		Phase:      operation.PhaseWrite,
		File:       "wf/ci.yml",
		Err:        errors.New("read-only file system"),
		BackupPath: "wf-backup/ci.yml",
	}

	reporter.StartRun(ctx, operation.RunInfo{WorkflowPath: "wf", Labels: text.MustParseLabels("self-hosted"), Files: 1})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:       "ci.yml",
		Outcome:    operation.OutcomeFailed,
		BackupPath: "wf-backup/ci.yml",
		Err:        ferr,
	})

	out := buf.String()
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "write wf/ci.yml: read-only file system (original kept at wf-backup/ci.yml)")
}

func TestConsoleReporter_WithoutDiffs(t *testing.T) {
	var buf bytes.Buffer
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	reporter := NewConsoleReporter(log.New(&buf, zlog), WithDiffs(false))
	ctx := zlog.WithContext(context.Background())

	reporter.StartRun(ctx, operation.RunInfo{WorkflowPath: "wf", Labels: text.MustParseLabels("self-hosted"), DryRun: true, Files: 1})
	reporter.FileProcessed(ctx, operation.FileReport{
		Name:    "ci.yml",
		Outcome: operation.OutcomePreview,
		Matches: []text.Match{{Token: "macos-14", Line: 4}},
		Diff:    []text.LineChange{{Line: 4, Original: "  runs-on: macos-14", Modified: "  runs-on: self-hosted"}},
	})
	reporter.FinishRun(ctx, &operation.Result{
		DryRun:   true,
		Stats:    operation.Stats{Total: 1, Migrated: 1},
		Migrated: []string{"ci.yml"},
	})

	out := buf.String()
	assert.Contains(t, out, "line 4: macos-14")
	assert.NotContains(t, out, "+ ", "no diff lines without diffs")
	assert.NotContains(t, out, "diff above", "guidance must not point at a missing diff")
	assert.Contains(t, out, "run rehost migrate --dry-run to see the changes")
}

func TestConsoleReporter_NothingToDo(t *testing.T) {
	reporter, buf, ctx := newTestReporter(t)

	reporter.StartRun(ctx, operation.RunInfo{WorkflowPath: "wf", Labels: text.MustParseLabels("self-hosted")})
	reporter.FinishRun(ctx, &operation.Result{})

	out := buf.String()
	assert.Contains(t, out, "no workflow files found")
	assert.Contains(t, out, "nothing to migrate")
}

func TestRenderSummary(t *testing.T) {
	table, err := RenderSummary(operation.Stats{Total: 5, Migrated: 2, AlreadyCompliant: 2, Skipped: 1}, false)
	require.NoError(t, err)

	assert.Contains(t, table, "Total")
	assert.Contains(t, table, "Migrated")
	assert.Contains(t, table, "Already compliant")
	assert.Contains(t, table, "5")

	table, err = RenderSummary(operation.Stats{}, true)
	require.NoError(t, err)
	assert.Contains(t, table, "Would migrate")
}

func TestFormatDiff(t *testing.T) {
	out := FormatDiff([]text.LineChange{
		{Line: 3, Original: "  runs-on: macos-14", Modified: "  runs-on: self-hosted"},
		{Line: 9, Modified: "  added"},
	})

	assert.Equal(t, ""+
		"         3 -   runs-on: macos-14\n"+
		"         3 +   runs-on: self-hosted\n"+
		"         9 +   added\n", out)
}

func TestFormatMatches(t *testing.T) {
	assert.Equal(t, "line 2: ubuntu-latest, line 7: macos-14", FormatMatches([]text.Match{
		{Token: "ubuntu-latest", Line: 2},
		{Token: "macos-14", Line: 7},
	}))
	assert.Empty(t, FormatMatches(nil))
}
