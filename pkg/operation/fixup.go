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
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/dnpm-fixup/pkg/correction"
	"github.com/walteh/dnpm-fixup/pkg/jsondoc"
	"github.com/walteh/dnpm-fixup/pkg/log"
	"github.com/walteh/dnpm-fixup/pkg/record"
	"github.com/walteh/dnpm-fixup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🩹 FixupOperation patches every classified record whose TAN is in the table
type FixupOperation struct {
	BaseOperation
	Table *correction.Table
	Batch *record.Batch
}

// 🏭 NewFixupOperation creates a fix-up operation for one classified batch
func NewFixupOperation(ctx context.Context, opts Options, table *correction.Table, batch *record.Batch) *FixupOperation {
	return &FixupOperation{
		BaseOperation: NewBaseOperation(ctx, opts),
		Table:         table,
		Batch:         batch,
	}
}

// 🏃 Execute processes all patient records, then all submission reports, one
// file at a time. It only fails if ctx is cancelled.
func (op *FixupOperation) Execute(ctx context.Context) error {
	for _, kind := range record.Kinds {
		for _, name := range op.Batch.Files(kind) {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("processing %s files: %w", kind, err)
			}
			op.processFile(ctx, kind, name)
		}
	}
	return nil
}

// 📄 processFile handles one record. Every failure is reported and tracked
// here and never reaches the caller.
func (op *FixupOperation) processFile(ctx context.Context, kind record.Kind, name string) {
	logger := zerolog.Ctx(ctx).With().Str("file", name).Logger()
	inPath := filepath.Join(op.Config.InputDir, name)
	outPath := filepath.Join(op.Config.OutputDir, name)

	fix, err := record.Patch(ctx, inPath, kind, op.Table)
	if err != nil {
		op.reportPatchError(kind, inPath, err)
		op.StatusMgr.TrackFile(ctx, status.FileInfo{Name: name, Kind: kind.Name, Status: status.StatusFailed, Error: err})
		return
	}

	if fix == nil {
		op.StatusMgr.TrackFile(ctx, status.FileInfo{Name: name, Kind: kind.Name, Status: status.StatusUnmatched})
		return
	}

	content, err := jsondoc.Marshal(fix.Document)
	if err == nil {
		err = op.StatusMgr.WriteFile(ctx, name, content)
	}
	if err != nil {
		logger.Debug().Err(err).Msg("write failed")
		op.Logger.Errorf("Error writing file: %s - %s", outPath, err)
		op.StatusMgr.TrackFile(ctx, status.FileInfo{Name: name, Kind: kind.Name, Status: status.StatusFailed, TAN: fix.TAN, Error: err})
		return
	}

	op.Logger.LogFix(log.FixOperation{Kind: kind.Name, TAN: fix.TAN, Date: fix.Date, File: outPath})
	op.StatusMgr.TrackFile(ctx, status.FileInfo{Name: name, Kind: kind.Name, Status: status.StatusFixed, TAN: fix.TAN, Date: fix.Date})
}

// reportPatchError prints read and parse failures as errors and identifier
// problems as warnings.
func (op *FixupOperation) reportPatchError(kind record.Kind, path string, err error) {
	switch {
	case errors.Is(err, record.ErrReadFile):
		op.Logger.Errorf("Error reading file: %s - %s", path, reason(err, record.ErrReadFile))
	case errors.Is(err, record.ErrInvalidJSON):
		op.Logger.Errorf("Error: File is not valid JSON: %s - %s", path, reason(err, record.ErrInvalidJSON))
	default:
		op.Logger.Warningf("Warning: Could not extract %s from: %s (%s)", kind.IdentifierName(), path, err)
	}
}

// reason strips the sentinel text from an error built as "<base>: <cause>".
func reason(err, base error) string {
	return strings.TrimPrefix(err.Error(), base.Error()+": ")
}
