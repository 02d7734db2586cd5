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
	"github.com/walteh/rehost/pkg/text"
)

// 📊 Outcome is the terminal state of one workflow file
type Outcome int

const (
	OutcomeUnknown       Outcome = iota
	OutcomeNotApplicable         // No hosted runner found
	OutcomePreview               // Would be migrated (dry run)
	OutcomeMigrated              // Backed up and rewritten
	OutcomeSkipped               // Matched an ignore glob
	OutcomeFailed                // Read, backup or write failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNotApplicable:
		return "compliant"
	case OutcomePreview:
		return "would migrate"
	case OutcomeMigrated:
		return "migrated"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📈 Stats counts outcomes over a run
type Stats struct {
	Total            int `json:"total"`
	Migrated         int `json:"migrated"`
	AlreadyCompliant int `json:"already_compliant"`
	Skipped          int `json:"skipped"`
}

// 🚀 RunInfo describes a run before the first file is processed
type RunInfo struct {
	RunID        string
	WorkflowPath string
	Labels       text.LabelSet
	BackupDir    string
	DryRun       bool
	Files        int
}

// 📄 FileReport is what happened to one workflow file
type FileReport struct {
	Path         string            // Full path of the workflow file
	Name         string            // Base name
	Outcome      Outcome           // Terminal state
	Matches      []text.Match      // Hosted runner references found
	Replacements int               // runs-on values replaced
	Diff         []text.LineChange // Dry-run preview
	BackupPath   string            // Where the original was copied (live only)
	Err          error             // Set when Outcome is OutcomeFailed
}

// 🔀 FileDiff is the dry-run preview for one file
type FileDiff struct {
	File    string
	Changes []text.LineChange
}

// 📦 Result is the aggregate outcome of a run
type Result struct {
	RunID    string
	DryRun   bool
	Stats    Stats
	Migrated []string     // File names, in processing order
	Diffs    []FileDiff   // Dry run only
	Backups  []string     // Backup paths, in processing order, including failed writes
	Failures []*FileError // Only with ContinueOnError
}

// record folds a successful file report into the result
func (r *Result) record(report FileReport) {
	switch report.Outcome {
	case OutcomeNotApplicable:
		r.Stats.AlreadyCompliant++
	case OutcomeSkipped:
		r.Stats.Skipped++
	case OutcomePreview:
		r.Stats.Migrated++
		r.Migrated = append(r.Migrated, report.Name)
		r.Diffs = append(r.Diffs, FileDiff{File: report.Name, Changes: report.Diff})
	case OutcomeMigrated:
		r.Stats.Migrated++
		r.Migrated = append(r.Migrated, report.Name)
		r.Backups = append(r.Backups, report.BackupPath)
	}
}
