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

package operation

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrPathNotFound is returned when the workflow directory does not exist.
var ErrPathNotFound = errors.Base("workflow path not found")

// 🧭 Phase names the step of a run that failed
type Phase string

const (
	PhaseScan   Phase = "scan"
	PhaseRead   Phase = "read"
	PhaseBackup Phase = "backup"
	PhaseWrite  Phase = "write"
)

// ❌ FileError identifies the phase and file a failure happened in
type FileError struct {
	Phase Phase
	File  string
	Err   error

	// BackupPath is set when the original was backed up before the failure
	BackupPath string
}

func (e *FileError) Error() string {
	if e.BackupPath != "" {
		return fmt.Sprintf("%s %s: %v (original kept at %s)", e.Phase, e.File, e.Err, e.BackupPath)
	}
	return fmt.Sprintf("%s %s: %v", e.Phase, e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
