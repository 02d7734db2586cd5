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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/walteh/rehost/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func TestFormatOutcome(t *testing.T) {
	tests := []struct {
		name   string
		report operation.FileReport
		want   string
	}{
		{
			name:   "migrated",
			report: operation.FileReport{Name: "ci.yml", Outcome: operation.OutcomeMigrated, Replacements: 2},
			want:   "✅ Migrated ci.yml (2 replacements)",
		},
		{
			name:   "preview",
			report: operation.FileReport{Name: "ci.yml", Outcome: operation.OutcomePreview, Replacements: 1},
			want:   "🔍 Would migrate ci.yml (1 replacement)",
		},
		{
			name:   "compliant",
			report: operation.FileReport{Name: "release.yml", Outcome: operation.OutcomeNotApplicable},
			want:   "👍 Already compliant release.yml",
		},
		{
			name:   "skipped",
			report: operation.FileReport{Name: "old.yml", Outcome: operation.OutcomeSkipped},
			want:   "⏭️  Skipped old.yml",
		},
		{
			name:   "failed",
			report: operation.FileReport{Name: "bad.yml", Outcome: operation.OutcomeFailed},
			want:   "❌ Failed bad.yml",
		},
	}

	f := NewDefaultFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatOutcome(tt.report))
		})
	}
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "start", current: 0, total: 4, want: "⏳ Progress: 0/4 (0%)"},
		{name: "half", current: 2, total: 4, want: "⏳ Progress: 2/4 (50%)"},
		{name: "done", current: 4, total: 4, want: "✅ Progress: 4/4 (100%)"},
		{name: "empty", current: 0, total: 0, want: "✅ Progress: 0/0 (0%)"},
	}

	f := NewDefaultFormatter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatProgress(tt.current, tt.total))
		})
	}
}

func TestFormatError(t *testing.T) {
	f := NewDefaultFormatter()
	assert.Empty(t, f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
