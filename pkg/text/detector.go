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
	"sort"
	"strings"

	"github.com/walteh/rehost/pkg/catalog"
)

// 🔍 Match is a single hosted runner reference found in a workflow
type Match struct {
	Token  string // Catalog token that matched
	Line   int    // 1-based line number
	Text   string // The matched line, trimmed
	offset int
}

// 🔍 Detector reports hosted runner references in raw workflow text
type Detector struct {
	patterns []tokenPattern
}

// 🏭 NewDetector creates a detector for the given catalog
func NewDetector(cat *catalog.Catalog) *Detector {
	return &Detector{patterns: compilePatterns(cat)}
}

// IsHostedRunner reports whether any catalog token is used as a runs-on value.
func (d *Detector) IsHostedRunner(content string) bool {
	for _, p := range d.patterns {
		if p.re.MatchString(content) {
			return true
		}
	}
	return false
}

// 📋 Find returns every hosted runner reference in text order
func (d *Detector) Find(content string) []Match {
	var matches []Match
	for _, p := range d.patterns {
		for _, loc := range p.re.FindAllStringIndex(content, -1) {
			matches = append(matches, Match{
				Token:  p.token,
				Line:   strings.Count(content[:loc[0]], "\n") + 1,
				Text:   lineAt(content, loc[0]),
				offset: loc[0],
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].offset < matches[j].offset
	})
	return matches
}

func lineAt(content string, offset int) string {
	start := strings.LastIndexByte(content[:offset], '\n') + 1
	end := strings.IndexByte(content[offset:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += offset
	}
	return strings.TrimSpace(content[start:end])
}
