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

// Package catalog holds the known GitHub-hosted runner image labels.
package catalog

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📋 defaultTokens is the compiled-in list of hosted runner labels, in rewrite order
var defaultTokens = []string{
	"ubuntu-latest",
	"ubuntu-24.04",
	"ubuntu-22.04",
	"ubuntu-20.04",
	"windows-latest",
	"windows-2022",
	"windows-2019",
	"macos-latest",
	"macos-14",
	"macos-13",
}

// 📚 Catalog is an immutable, ordered set of hosted runner tokens
type Catalog struct {
	tokens []string
}

// 🏭 Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{tokens: append([]string(nil), defaultTokens...)}
}

// 🏭 New creates a catalog from the given tokens
func New(tokens ...string) (*Catalog, error) {
	c := &Catalog{}
	if err := c.add(tokens); err != nil {
		return nil, err
	}
	if len(c.tokens) == 0 {
		return nil, errors.New("catalog requires at least one token")
	}
	return c, nil
}

// ➕ With returns a new catalog with extra tokens appended after the existing ones
func (c *Catalog) With(extra ...string) (*Catalog, error) {
	next := &Catalog{tokens: append([]string(nil), c.tokens...)}
	if err := next.add(extra); err != nil {
		return nil, err
	}
	return next, nil
}

func (c *Catalog) add(tokens []string) error {
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return errors.Errorf("token %d: empty runner label", i)
		}
		if strings.ContainsAny(tok, " \t\r\n[],") {
			return errors.Errorf("token %q: contains whitespace or list syntax", tok)
		}
		if c.Contains(tok) {
			return errors.Errorf("token %q: duplicate runner label", tok)
		}
		c.tokens = append(c.tokens, tok)
	}
	return nil
}

// Tokens returns a copy of the tokens in catalog order.
func (c *Catalog) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Contains reports whether tok is a known hosted runner label.
func (c *Catalog) Contains(tok string) bool {
	for _, t := range c.tokens {
		if t == tok {
			return true
		}
	}
	return false
}

func (c *Catalog) Len() int {
	return len(c.tokens)
}
