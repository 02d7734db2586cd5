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

// Package operation runs the runs-on migration over a workflow directory
package operation

import (
	"context"

	"github.com/walteh/rehost/pkg/backup"
	"github.com/walteh/rehost/pkg/config"
	"github.com/walteh/rehost/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Detector finds hosted runner references in workflow text
type Detector interface {
	// IsHostedRunner reports whether any runs-on value names a hosted runner
	IsHostedRunner(content string) bool
	// Find lists every hosted runner reference
	Find(content string) []text.Match
}

// ✏️ Rewriter replaces hosted runner values with self-hosted labels
type Rewriter interface {
	Rewrite(content string, labels text.LabelSet) *text.Result
}

// 💾 Backuper copies a file aside and returns where it went
type Backuper interface {
	Backup(ctx context.Context, path string) (string, error)
}

// 📢 Reporter receives progress events; implemented by the presentation layer
type Reporter interface {
	StartRun(ctx context.Context, info RunInfo)
	FileProcessed(ctx context.Context, report FileReport)
	FinishRun(ctx context.Context, result *Result)
}

// 🔧 Options contains configuration for a migration
type Options struct {
	// Config is the validated rehost configuration
	Config *config.Config
	// Detector defaults to one built from the config catalog
	Detector Detector
	// Rewriter defaults to one built from the config catalog
	Rewriter Rewriter
	// Backups defaults to a backup.Manager on Config.BackupDir
	Backups Backuper
	// Reporter is optional
	Reporter Reporter
}

// 📦 MigrateOperation rewrites hosted runs-on values in one directory
type MigrateOperation struct {
	config   *config.Config
	labels   text.LabelSet
	detector Detector
	rewriter Rewriter
	backups  Backuper
	reporter Reporter
}

// 🏭 NewMigrateOperation creates a migration, filling in default collaborators
func NewMigrateOperation(opts Options) (*MigrateOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	labels, err := opts.Config.LabelSet()
	if err != nil {
		return nil, errors.Errorf("parsing labels: %w", err)
	}

	if opts.Detector == nil || opts.Rewriter == nil {
		cat, err := opts.Config.Catalog()
		if err != nil {
			return nil, errors.Errorf("building catalog: %w", err)
		}
		if opts.Detector == nil {
			opts.Detector = text.NewDetector(cat)
		}
		if opts.Rewriter == nil {
			opts.Rewriter = text.NewRewriter(cat)
		}
	}
	if opts.Backups == nil {
		opts.Backups = backup.NewManager(opts.Config.BackupDir)
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	return &MigrateOperation{
		config:   opts.Config,
		labels:   labels,
		detector: opts.Detector,
		rewriter: opts.Rewriter,
		backups:  opts.Backups,
		reporter: opts.Reporter,
	}, nil
}

type nopReporter struct{}

func (nopReporter) StartRun(context.Context, RunInfo) {}
func (nopReporter) FileProcessed(context.Context, FileReport) {}
func (nopReporter) FinishRun(context.Context, *Result) {}
