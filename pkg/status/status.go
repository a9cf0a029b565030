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
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus is the outcome of processing one record file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // Corrected copy written to the output directory
	StatusUnmatched            // TAN not in the correction table, nothing written
	StatusFailed               // Reading, parsing, identifying or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnmatched:
		return "unmatched"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo records what happened to one input file
type FileInfo struct {
	Name   string     // Bare filename, shared by input and output
	Kind   string     // Record kind, e.g. "patient record"
	Status FileStatus // Outcome
	TAN    string     // Identifier, when one could be extracted
	Date   string     // Replacement timestamp for fixed files
	Error  error      // Set for failed files
}

// 🧮 Summary is the tally reported at the end of a run
type Summary struct {
	Modified  int
	Errors    int
	Unmatched int
}

// 🔧 Manager writes corrected files into a single output directory and keeps
// the per-file outcomes of a run. It is not safe for concurrent use; a run
// processes one file at a time.
type Manager struct {
	outDir    string
	logger    *zerolog.Logger
	formatter FileFormatter
	files     []FileInfo
}

// 🏭 New creates a manager rooted at outDir
func New(outDir string, logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		outDir:    filepath.Clean(outDir),
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
	}
}

// OutDir returns the directory files are written to.
func (m *Manager) OutDir() string {
	return m.outDir
}

// 💾 WriteFile writes content to outDir/name, creating or truncating it.
// name must be a bare filename; the output directory is never created.
func (m *Manager) WriteFile(ctx context.Context, name string, content []byte) error {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return errors.Errorf("invalid output filename %q", name)
	}

	path := filepath.Join(m.outDir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote corrected file")
	return nil
}

// TrackFile records the outcome for one file.
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.files = append(m.files, info)

	msg := m.formatter.FormatFileOperation(info)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	m.logger.Debug().
		Str("file", info.Name).
		Str("kind", info.Kind).
		Str("status", info.Status.String()).
		Msg(msg)
}

// Files returns the tracked outcomes in processing order.
func (m *Manager) Files() []FileInfo {
	out := make([]FileInfo, len(m.files))
	copy(out, m.files)
	return out
}

// 📈 Summary tallies the tracked outcomes.
func (m *Manager) Summary() Summary {
	var s Summary
	for _, f := range m.files {
		switch f.Status {
		case StatusFixed:
			s.Modified++
		case StatusUnmatched:
			s.Unmatched++
		case StatusFailed:
			s.Errors++
		}
	}
	return s
}
