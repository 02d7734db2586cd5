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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rehost/pkg/catalog"
)

func TestRewriter_Convert(t *testing.T) {
	tests := []struct {
		name    string
		content string
		labels  string
		want    string
	}{
		{
			name:    "single_label_scalar",
			content: "runs-on: ubuntu-latest",
			labels:  "self-hosted",
			want:    "runs-on: self-hosted",
		},
		{
			name:    "multiple_labels_bracketed",
			content: "runs-on: windows-latest",
			labels:  "self-hosted,windows,x64",
			want:    "runs-on: [self-hosted, windows, x64]",
		},
		{
			name:    "single_bracket_input",
			content: "    runs-on: [macos-14]\n",
			labels:  "self-hosted, macos",
			want:    "    runs-on: [self-hosted, macos]\n",
		},
		{
			name:    "keeps_trailing_comment",
			content: "    runs-on: ubuntu-22.04 # pinned\n",
			labels:  "self-hosted",
			want:    "    runs-on: self-hosted # pinned\n",
		},
		{
			name:    "keeps_crlf",
			content: "jobs:\r\n  a:\r\n    runs-on: ubuntu-latest\r\n    steps: []\r\n",
			labels:  "self-hosted",
			want:    "jobs:\r\n  a:\r\n    runs-on: self-hosted\r\n    steps: []\r\n",
		},
		{
			name:    "normalizes_separator",
			content: "runs-on:\t\tubuntu-latest\n",
			labels:  "self-hosted",
			want:    "runs-on: self-hosted\n",
		},
		{
			name:    "already_self_hosted",
			content: "runs-on: [self-hosted, linux]\n",
			labels:  "self-hosted",
			want:    "runs-on: [self-hosted, linux]\n",
		},
		{
			name:    "label_with_dollar",
			content: "runs-on: ubuntu-latest\n",
			labels:  "runner-$1",
			want:    "runs-on: runner-$1\n",
		},
		{
			name:    "longer_label_untouched",
			content: "runs-on: ubuntu-latest-xl\n",
			labels:  "self-hosted",
			want:    "runs-on: ubuntu-latest-xl\n",
		},
	}

	rw := NewRewriter(catalog.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rw.Convert(tt.content, MustParseLabels(tt.labels))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriter_MultiJob(t *testing.T) {
	content := `# CI pipeline
name: ci

on:
  push:
    branches: [main]

jobs:
  linux:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4

  windows:
    runs-on: [windows-2022]
    steps:
      - run: echo hi   # say hi

  mac:
    runs-on: macos-13
`
	cat := catalog.Default()
	rw := NewRewriter(cat)
	result := rw.Rewrite(content, MustParseLabels("self-hosted"))

	require.True(t, result.WasModified)
	assert.Equal(t, 3, result.ReplacementCount)
	assert.Equal(t, content, result.Original)
	assert.Equal(t, 3, strings.Count(result.Modified, "runs-on: self-hosted\n"))
	assert.False(t, NewDetector(cat).IsHostedRunner(result.Modified), "no catalog token may remain")

	// every line without a hosted runs-on value is byte-identical
	before := strings.Split(content, "\n")
	after := strings.Split(result.Modified, "\n")
	require.Equal(t, len(before), len(after))
	for i := range before {
		if strings.Contains(before[i], "runs-on:") {
			continue
		}
		assert.Equal(t, before[i], after[i], "line %d changed", i+1)
	}
}

func TestRewriter_Idempotent(t *testing.T) {
	rw := NewRewriter(catalog.Default())
	labels := MustParseLabels("self-hosted,linux")

	once := rw.Convert("jobs:\n  a:\n    runs-on: ubuntu-20.04\n", labels)
	twice := rw.Rewrite(once, labels)

	assert.Equal(t, once, twice.Modified)
	assert.False(t, twice.WasModified)
	assert.Zero(t, twice.ReplacementCount)
}
