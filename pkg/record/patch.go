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

	"github.com/rs/zerolog"
	"github.com/walteh/dnpm-fixup/pkg/correction"
	"github.com/walteh/dnpm-fixup/pkg/jsondoc"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrReadFile          = errors.Base("error reading file")
	ErrInvalidJSON       = errors.Base("file is not valid JSON")
	ErrNotObject         = errors.Base("top-level value is not an object")
	ErrMissingMetadata   = errors.Base("metadata object is missing")
	ErrMissingIdentifier = errors.Base("identifier is missing or empty")
	ErrInvalidIdentifier = errors.Base("identifier is not a string")
)

// ✏️ Correction is a patched record waiting to be written.
type Correction struct {
	Kind     Kind
	TAN      string
	Date     string
	Document *jsondoc.Object
}

// PatchPatientRecord patches the submittedAt field of a patient record.
func PatchPatientRecord(ctx context.Context, path string, table *correction.Table) (*Correction, error) {
	return Patch(ctx, path, PatientRecord, table)
}

// PatchSubmissionReport patches the createdAt field of a submission report.
func PatchSubmissionReport(ctx context.Context, path string, table *correction.Table) (*Correction, error) {
	return Patch(ctx, path, SubmissionReport, table)
}

// 🩹 Patch reads the record at path and, if its TAN is in table, sets the
// kind's target field to the corrected date. A nil Correction with a nil error
// means the record needs no correction. Nothing is written to disk.
func Patch(ctx context.Context, path string, kind Kind, table *correction.Table) (*Correction, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Str("kind", kind.Name).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrReadFile, err)
	}
	if off := jsondoc.InvalidUTF8Offset(data); off >= 0 {
		return nil, errors.Errorf("%w: invalid UTF-8 byte at offset %d", ErrReadFile, off)
	}

	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	obj, ok := doc.(*jsondoc.Object)
	if !ok {
		return nil, errors.Errorf("%w: got %s", ErrNotObject, typeName(doc))
	}

	tan, err := identifier(obj, kind)
	if err != nil {
		return nil, err
	}

	date, ok := table.Lookup(tan)
	if !ok {
		logger.Debug().Str("tan", tan).Msg("no correction needed")
		return nil, nil
	}

	obj.Set(kind.TargetField, jsondoc.String(date))
	logger.Debug().Str("tan", tan).Str("field", kind.TargetField).Str("date", date).Msg("record patched")

	return &Correction{
		Kind:     kind,
		TAN:      tan,
		Date:     date,
		Document: obj,
	}, nil
}

func identifier(obj *jsondoc.Object, kind Kind) (string, error) {
	parents := kind.IdentifierPath[:len(kind.IdentifierPath)-1]
	container := obj
	if len(parents) > 0 {
		found, err := jsondoc.LookupObject(obj, parents...)
		if err != nil {
			return "", errors.Errorf("%w: %s", ErrMissingMetadata, err)
		}
		container = found
	}

	v, ok := container.Get(kind.IdentifierName())
	if !ok {
		return "", errors.Errorf("%w: %s", ErrMissingIdentifier, kind.IdentifierName())
	}

	switch t := v.(type) {
	case jsondoc.String:
		if t == "" {
			return "", errors.Errorf("%w: %s", ErrMissingIdentifier, kind.IdentifierName())
		}
		return string(t), nil
	case jsondoc.Null:
		return "", errors.Errorf("%w: %s is null", ErrMissingIdentifier, kind.IdentifierName())
	default:
		return "", errors.Errorf("%w: %s is %s", ErrInvalidIdentifier, kind.IdentifierName(), typeName(v))
	}
}

func typeName(v jsondoc.Value) string {
	switch v.(type) {
	case *jsondoc.Object:
		return "object"
	case jsondoc.Array:
		return "array"
	case jsondoc.String:
		return "string"
	case jsondoc.Number:
		return "number"
	case jsondoc.Bool:
		return "boolean"
	default:
		return "null"
	}
}
