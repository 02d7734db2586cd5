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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/rehost/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Execute runs the migration over every matching file, one at a time.
//
// A missing workflow directory returns ErrPathNotFound before anything is touched.
// Any per-file failure aborts the run with a *FileError unless ContinueOnError is
// set, in which case the file is counted as skipped and listed in Result.Failures.
func (op *MigrateOperation) Execute(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	// Get list of files
	files, err := op.listFiles(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", op.config.WorkflowPath).
		Int("files", len(files)).
		Bool("dry_run", op.config.DryRun).
		Msg("starting migration")

	op.reporter.StartRun(ctx, RunInfo{
		RunID:        runID,
		WorkflowPath: op.config.WorkflowPath,
		Labels:       op.labels,
		BackupDir:    op.config.BackupDir,
		DryRun:       op.config.DryRun,
		Files:        len(files),
	})

	result := &Result{
		RunID:  runID,
		DryRun: op.config.DryRun,
	}

	// Process each file
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, &FileError{Phase: PhaseScan, File: file, Err: err}
		}

		result.Stats.Total++

		report, err := op.processFile(ctx, file)
		if err != nil {
			var ferr *FileError
			if !errors.As(err, &ferr) {
				ferr = &FileError{Phase: PhaseRead, File: file, Err: err}
			}
			report.Outcome = OutcomeFailed
			report.Err = ferr
			op.reporter.FileProcessed(ctx, report)

			if !op.config.ContinueOnError {
				return nil, ferr
			}

			logger.Warn().Err(ferr).Str("file", file).Msg("skipping file after error")
			result.Stats.Skipped++
			result.Failures = append(result.Failures, ferr)
			if report.BackupPath != "" {
				result.Backups = append(result.Backups, report.BackupPath)
			}
			continue
		}

		result.record(report)
		op.reporter.FileProcessed(ctx, report)
	}

	op.reporter.FinishRun(ctx, result)
	return result, nil
}

// 📂 listFiles returns the workflow files to process, sorted by name
func (op *MigrateOperation) listFiles(ctx context.Context) ([]string, error) {
	dir := op.config.WorkflowPath

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Errorf("%w: %s", ErrPathNotFound, dir)
		}
		return nil, &FileError{Phase: PhaseScan, File: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrPathNotFound, dir)
	}

	// os.ReadDir sorts by file name
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &FileError{Phase: PhaseScan, File: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(op.config.Include, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching include pattern %q: %w", op.config.Include, err)
		}
		if matched {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	zerolog.Ctx(ctx).Debug().Strs("files", files).Msg("listed workflow files")
	return files, nil
}

// 📄 processFile takes one file to a terminal outcome
func (op *MigrateOperation) processFile(ctx context.Context, path string) (FileReport, error) {
	report := FileReport{
		Path: path,
		Name: filepath.Base(path),
	}

	// Check if file should be ignored
	if op.shouldIgnore(ctx, report.Name) {
		report.Outcome = OutcomeSkipped
		return report, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return report, &FileError{Phase: PhaseRead, File: path, Err: err}
	}
	original := string(content)

	if !op.detector.IsHostedRunner(original) {
		report.Outcome = OutcomeNotApplicable
		return report, nil
	}
	report.Matches = op.detector.Find(original)

	if op.config.DryRun {
		rewritten := op.rewriter.Rewrite(original, op.labels)
		report.Replacements = rewritten.ReplacementCount
		report.Diff = text.LineDiff(original, rewritten.Modified)
		report.Outcome = OutcomePreview
		return report, nil
	}

	// The backup must exist before the source is touched
	backupPath, err := op.backups.Backup(ctx, path)
	if err != nil {
		return report, &FileError{Phase: PhaseBackup, File: path, Err: err}
	}
	report.BackupPath = backupPath

	rewritten := op.rewriter.Rewrite(original, op.labels)
	report.Replacements = rewritten.ReplacementCount

	if err := writeFileAtomic(path, []byte(rewritten.Modified)); err != nil {
		return report, &FileError{Phase: PhaseWrite, File: path, Err: err, BackupPath: backupPath}
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Str("backup", backupPath).
		Int("replacements", rewritten.ReplacementCount).
		Msg("migrated file")

	report.Outcome = OutcomeMigrated
	return report, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func (op *MigrateOperation) shouldIgnore(ctx context.Context, name string) bool {
	logger := zerolog.Ctx(ctx)
	for _, pattern := range op.config.Ignore {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
