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

package text

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📝 LineChange is one changed line of a dry-run preview.
// Original is empty for a pure insertion, Modified for a pure deletion.
type LineChange struct {
	Line     int    // 1-based line number in the original
	Original string // Line before rewriting
	Modified string // Line after rewriting
}

// 🔀 LineDiff pairs up the lines that differ between original and modified
func LineDiff(original, modified string) []LineChange {
	if original == modified {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var changes []LineChange
	line := 1
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			for _, ins := range splitLines(d.Text) {
				changes = append(changes, LineChange{Line: line, Modified: ins})
			}
		case diffmatchpatch.DiffDelete:
			deleted := splitLines(d.Text)
			var inserted []string
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				inserted = splitLines(diffs[i+1].Text)
				i++
			}
			for j := 0; j < len(deleted) || j < len(inserted); j++ {
				c := LineChange{Line: line + j}
				if j < len(deleted) {
					c.Original = deleted[j]
				} else {
					c.Line = line + len(deleted)
				}
				if j < len(inserted) {
					c.Modified = inserted[j]
				}
				changes = append(changes, c)
			}
			line += len(deleted)
		}
	}
	return changes
}

// splitLines splits on newlines, dropping line terminators and the empty
// element after a trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimRight(p, "\r\n")
	}
	return parts
}
