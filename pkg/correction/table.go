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
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrEmptyTable is returned when a table source yields no usable entries.
var ErrEmptyTable = errors.Base("no valid TAN/date pairs found")

// 📝 Entry is one row of a correction table
type Entry struct {
	TAN  string `json:"tan" yaml:"tan" hcl:"tan,optional"`
	Date string `json:"date" yaml:"date" hcl:"date,optional"`
}

// 📚 Table maps a transfer TAN to its replacement timestamp.
// It is read-only once built.
type Table struct {
	dates map[string]string
}

// 🏭 NewTable builds a table from entries in order. Both fields are trimmed,
// entries with an empty TAN or date are skipped and a later entry for the same
// TAN replaces an earlier one.
func NewTable(entries ...Entry) *Table {
	t := &Table{dates: make(map[string]string, len(entries))}
	for _, e := range entries {
		tan := strings.TrimSpace(e.TAN)
		date := strings.TrimSpace(e.Date)
		if tan == "" || date == "" {
			continue
		}
		t.put(tan, date)
	}
	return t
}

// put is an explicit insert-or-overwrite.
func (t *Table) put(tan, date string) (replaced bool) {
	_, replaced = t.dates[tan]
	t.dates[tan] = date
	return replaced
}

// Lookup returns the replacement timestamp for tan.
func (t *Table) Lookup(tan string) (string, bool) {
	date, ok := t.dates[tan]
	return date, ok
}

// Len returns the number of distinct TANs.
func (t *Table) Len() int {
	return len(t.dates)
}

// 🎯 Load reads a correction table from path. The format is picked by file
// extension; anything not claimed by a registered parser, or rejected by the
// structured parser its extension names, is read as comma-separated
// <tan>,<date> rows.
func Load(ctx context.Context, path string) (*Table, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading correction table")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading correction table: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		p = defaultParser
	}

	entries, err := p.Parse(ctx, data)
	if err != nil {
		// plain rows stay valid whatever the file is called
		rows, ok := csvFallback(ctx, p, data)
		if !ok {
			return nil, errors.Errorf("parsing correction table: %w", err)
		}
		logger.Debug().Err(err).Msg("not a structured table, reading comma-separated rows")
		entries = rows
	}

	table := NewTable(entries...)
	logger.Debug().
		Int("rows", len(entries)).
		Int("tans", table.Len()).
		Msg("correction table loaded")

	if table.Len() == 0 {
		return nil, errors.Errorf("%w in %s", ErrEmptyTable, path)
	}

	return table, nil
}

// csvFallback re-reads data as comma-separated rows when a structured parser
// rejected it. It only succeeds if at least one usable row comes out.
func csvFallback(ctx context.Context, p Parser, data []byte) ([]Entry, bool) {
	if _, isCSV := p.(*CSVParser); isCSV {
		return nil, false
	}
	rows, err := defaultParser.Parse(ctx, data)
	if err != nil || NewTable(rows...).Len() == 0 {
		return nil, false
	}
	return rows, true
}
