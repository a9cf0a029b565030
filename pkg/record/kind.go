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
	"github.com/bmatcuk/doublestar/v4"
)

// 🏷️ Kind describes one family of record files: which filenames belong to it,
// where the TAN lives and which top-level field gets the corrected timestamp.
type Kind struct {
	Name           string   // Human readable name used in reports
	Pattern        string   // Filename glob
	IdentifierPath []string // Path to the TAN inside the document
	TargetField    string   // Top-level field replaced with the corrected date
}

var (
	// PatientRecord files carry the TAN under metadata.transferTAN.
	PatientRecord = Kind{
		Name:           "patient record",
		Pattern:        "MVH_MTBPatientRecord_Patient*.json",
		IdentifierPath: []string{"metadata", "transferTAN"},
		TargetField:    "submittedAt",
	}

	// SubmissionReport files use their own id as the TAN.
	SubmissionReport = Kind{
		Name:           "submission report",
		Pattern:        "SubmissionReport_Patient*.json",
		IdentifierPath: []string{"id"},
		TargetField:    "createdAt",
	}

	// Kinds lists every known kind in processing order.
	Kinds = []Kind{PatientRecord, SubmissionReport}
)

// Matches reports whether a bare filename belongs to this kind.
func (k Kind) Matches(filename string) bool {
	ok, err := doublestar.Match(k.Pattern, filename)
	return err == nil && ok
}

// IdentifierName is the name of the field holding the TAN, e.g. transferTAN.
func (k Kind) IdentifierName() string {
	return k.IdentifierPath[len(k.IdentifierPath)-1]
}

func (k Kind) String() string {
	return k.Name
}
