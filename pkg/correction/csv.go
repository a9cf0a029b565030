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

package correction

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func init() {
	Register(&CSVParser{})
}

// 🔧 CSVParser reads header-less <tan>,<date> rows
type CSVParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *CSVParser) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".csv" || ext == ".txt"
}

// 📝 Parse parses rows; rows with fewer than two fields are skipped
func (p *CSVParser) Parse(ctx context.Context, data []byte) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Errorf("parsing CSV: %w", err)
		}

		if len(record) < 2 {
			line, _ := reader.FieldPos(0)
			logger.Debug().Int("line", line).Int("fields", len(record)).Msg("skipping short row")
			continue
		}

		entries = append(entries, Entry{TAN: record[0], Date: record[1]})
	}

	return entries, nil
}
