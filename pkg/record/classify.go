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

package record

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📂 Batch holds the classified filenames of an input directory, in
// directory listing order.
type Batch struct {
	PatientRecords    []string
	SubmissionReports []string
}

// Files returns the filenames classified under kind.
func (b *Batch) Files(kind Kind) []string {
	switch kind.Name {
	case PatientRecord.Name:
		return b.PatientRecords
	case SubmissionReport.Name:
		return b.SubmissionReports
	default:
		return nil
	}
}

// 🔍 Classify lists dir without recursing and sorts regular *.json files into
// the known kinds by filename. Anything else is ignored.
func Classify(ctx context.Context, dir string) (*Batch, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading input directory: %w", err)
	}

	batch := &Batch{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}

		// Stat follows symlinks, so a link to a regular file counts
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			logger.Debug().Str("file", name).Msg("skipping non-regular entry")
			continue
		}

		switch {
		case PatientRecord.Matches(name):
			batch.PatientRecords = append(batch.PatientRecords, name)
		case SubmissionReport.Matches(name):
			batch.SubmissionReports = append(batch.SubmissionReports, name)
		}
	}

	logger.Debug().
		Int("patient_records", len(batch.PatientRecords)).
		Int("submission_reports", len(batch.SubmissionReports)).
		Str("dir", dir).
		Msg("classified input files")

	return batch, nil
}
