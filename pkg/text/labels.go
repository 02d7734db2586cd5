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

	"gitlab.com/tozd/go/errors"
)

// 🏷️ LabelSet is an ordered, non-empty list of self-hosted runner labels
type LabelSet struct {
	labels []string
}

// 🔍 ParseLabels parses a comma-separated label list, trimming each entry
func ParseLabels(raw string) (LabelSet, error) {
	var labels []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, part)
	}
	if len(labels) == 0 {
		return LabelSet{}, errors.Errorf("no runner labels in %q", raw)
	}
	return LabelSet{labels: labels}, nil
}

// MustParseLabels is ParseLabels for constant input; it panics on error.
func MustParseLabels(raw string) LabelSet {
	ls, err := ParseLabels(raw)
	if err != nil {
		panic(err)
	}
	return ls
}

// Labels returns a copy of the labels in input order.
func (l LabelSet) Labels() []string {
	return append([]string(nil), l.labels...)
}

func (l LabelSet) Len() int {
	return len(l.labels)
}

// 📝 Value returns the runs-on value: the bare label for one label,
// otherwise a bracketed flow list.
func (l LabelSet) Value() string {
	if len(l.labels) == 1 {
		return l.labels[0]
	}
	return "[" + strings.Join(l.labels, ", ") + "]"
}

func (l LabelSet) String() string {
	return strings.Join(l.labels, ",")
}
