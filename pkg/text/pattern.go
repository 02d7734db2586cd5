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
	"regexp"

	"github.com/walteh/rehost/pkg/catalog"
)

// 🎯 tokenPattern pairs a catalog token with its compiled runs-on matcher
type tokenPattern struct {
	token string
	re    *regexp.Regexp
}

// compilePatterns builds one matcher per token, in catalog order.
//
// A match is `runs-on:`, one or more spaces or tabs, then the token either bare
// or as a single-element bracket list. The value must sit on the runs-on line;
// a newline is not a separator. Group 1 captures the character that ends
// the value (space, tab, CR, or nothing at end of line) so a token never matches
// the prefix of a longer label.
func compilePatterns(cat *catalog.Catalog) []tokenPattern {
	toks := cat.Tokens()
	patterns := make([]tokenPattern, 0, len(toks))
	for _, tok := range toks {
		q := regexp.QuoteMeta(tok)
		patterns = append(patterns, tokenPattern{
			token: tok,
			re:    regexp.MustCompile(`(?m)runs-on:[ \t]+(?:` + q + `|\[[ \t]*` + q + `[ \t]*\])([ \t\r]|$)`),
		})
	}
	return patterns
}
