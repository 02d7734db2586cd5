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
	"fmt"

	"github.com/walteh/rehost/pkg/operation"
)

// 🎨 Formatter defines the interface for formatting run messages
type Formatter interface {
	// FormatOutcome formats a per-file outcome message
	FormatOutcome(report operation.FileReport) string
	// FormatProgress formats a progress message
	FormatProgress(current, total int) string
	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatOutcome formats a file outcome with emojis
func (f *DefaultFormatter) FormatOutcome(report operation.FileReport) string {
	switch report.Outcome {
	case operation.OutcomeMigrated:
		return fmt.Sprintf("✅ Migrated %s (%s)", report.Name, pluralize(report.Replacements, "replacement"))
	case operation.OutcomePreview:
		return fmt.Sprintf("🔍 Would migrate %s (%s)", report.Name, pluralize(report.Replacements, "replacement"))
	case operation.OutcomeNotApplicable:
		return fmt.Sprintf("👍 Already compliant %s", report.Name)
	case operation.OutcomeSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", report.Name)
	case operation.OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s", report.Name)
	default:
		return fmt.Sprintf("❓ Unknown %s", report.Name)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
