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
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/rehost/pkg/text"
)

// 🎨 Display configuration
const (
	diffIndent = 6 // spaces to indent diff lines under a file entry
	lineWidth  = 4 // Width for line numbers
)

// 🎯 FormatDiff renders a dry-run preview as colored -/+ line pairs
func FormatDiff(changes []text.LineChange) string {
	var sb strings.Builder
	indent := strings.Repeat(" ", diffIndent)

	for _, c := range changes {
		lineNo := color.HiBlackString("%*d", lineWidth, c.Line)
		if c.Original != "" {
			fmt.Fprintf(&sb, "%s%s %s\n", indent, lineNo, color.RedString("- %s", c.Original))
		}
		if c.Modified != "" {
			fmt.Fprintf(&sb, "%s%s %s\n", indent, lineNo, color.GreenString("+ %s", c.Modified))
		}
	}
	return sb.String()
}

// 📍 FormatMatches lists hosted runner references as "line N: token"
func FormatMatches(matches []text.Match) string {
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, fmt.Sprintf("line %d: %s", m.Line, m.Token))
	}
	return strings.Join(parts, ", ")
}
