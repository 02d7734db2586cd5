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

// Package backup copies workflow files aside before they are rewritten.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// TimestampFormat is inserted into a backup name when the plain name is taken.
const TimestampFormat = "20060102_150405"

// maxAttempts bounds the numeric suffixes tried within one second
const maxAttempts = 1000

// 💾 Manager copies original files into a backup directory
type Manager struct {
	dir string
	now func() time.Time
}

// 🔧 Option configures a Manager
type Option func(*Manager)

// WithClock overrides the clock used for timestamped names.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// 🏭 NewManager creates a backup manager writing into dir
func NewManager(dir string, opts ...Option) *Manager {
	m := &Manager{
		dir: filepath.Clean(dir),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// 📦 Backup copies filePath into the backup directory and returns the backup path.
// An existing backup is never overwritten.
func (m *Manager) Backup(ctx context.Context, filePath string) (string, error) {
	logger := zerolog.Ctx(ctx)

	src, err := os.Open(filePath)
	if err != nil {
		return "", errors.Errorf("opening source file: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", errors.Errorf("reading source file info: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", errors.Errorf("creating backup directory: %w", err)
	}

	dst, dstPath, err := m.create(filepath.Base(filePath), info.Mode().Perm())
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", errors.Errorf("copying file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return "", errors.Errorf("closing backup file: %w", err)
	}

	logger.Debug().Str("source", filePath).Str("backup", dstPath).Msg("backed up file")
	return dstPath, nil
}

// create opens the first free candidate name exclusively
func (m *Manager) create(name string, mode os.FileMode) (*os.File, string, error) {
	ts := m.now().Format(TimestampFormat)
	for i := 0; i <= maxAttempts; i++ {
		c := m.candidate(name, ts, i)
		f, err := os.OpenFile(c, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
		if err == nil {
			return f, c, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", errors.Errorf("creating backup file: %w", err)
		}
	}
	return nil, "", errors.Errorf("no free backup name for %s", name)
}

// candidate returns the i-th backup name in preference order:
// name, stem.<ts>.ext, stem.<ts>.1.ext, stem.<ts>.2.ext, ...
func (m *Manager) candidate(name, ts string, i int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	switch i {
	case 0:
		return filepath.Join(m.dir, name)
	case 1:
		return filepath.Join(m.dir, fmt.Sprintf("%s.%s%s", stem, ts, ext))
	default:
		return filepath.Join(m.dir, fmt.Sprintf("%s.%s.%d%s", stem, ts, i-1, ext))
	}
}
