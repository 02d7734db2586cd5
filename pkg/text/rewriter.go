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

	"github.com/walteh/rehost/pkg/catalog"
)

// 📄 Result contains the outcome of rewriting one workflow
type Result struct {
	// Original is the content before rewriting
	Original string

	// Modified is the content after rewriting
	Modified string

	// ReplacementCount is the number of runs-on values replaced
	ReplacementCount int

	// WasModified indicates if any replacement was made
	WasModified bool
}

// ✏️ Rewriter replaces hosted runner runs-on values with self-hosted labels
type Rewriter struct {
	patterns []tokenPattern
}

// 🏭 NewRewriter creates a rewriter for the given catalog
func NewRewriter(cat *catalog.Catalog) *Rewriter {
	return &Rewriter{patterns: compilePatterns(cat)}
}

// Convert returns content with every hosted runs-on value replaced by labels.
func (r *Rewriter) Convert(content string, labels LabelSet) string {
	return r.Rewrite(content, labels).Modified
}

// 🔄 Rewrite is Convert with replacement accounting
func (r *Rewriter) Rewrite(content string, labels LabelSet) *Result {
	// $ would be read as a group reference by ReplaceAllString
	repl := "runs-on: " + strings.ReplaceAll(labels.Value(), "$", "$$") + "${1}"

	result := &Result{Original: content}
	current := content
	for _, p := range r.patterns {
		n := len(p.re.FindAllStringIndex(current, -1))
		if n == 0 {
			continue
		}
		current = p.re.ReplaceAllString(current, repl)
		result.ReplacementCount += n
	}

	result.Modified = current
	result.WasModified = current != content
	return result
}
