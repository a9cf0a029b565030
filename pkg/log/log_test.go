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

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dnpm-fixup/pkg/status"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	// Disable color for testing
	color.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableColor()
	})

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	zlog := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	return New(out, errOut, zlog), out, errOut
}

func lines(buf *bytes.Buffer) []string {
	output := strings.TrimRight(buf.String(), "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name       string
		op         func(logger *Logger)
		wantOut    []string
		wantErrOut []string
	}{
		{
			name: "info_goes_to_out",
			op: func(logger *Logger) {
				logger.Info("Number of TAN/date pairs to fix: 3")
				logger.Infof("Found %d patient record files", 2)
			},
			wantOut: []string{
				"Number of TAN/date pairs to fix: 3",
				"Found 2 patient record files",
			},
		},
		{
			name: "warnings_and_errors_go_to_err_out",
			op: func(logger *Logger) {
				logger.Warningf("Warning: Could not extract %s from: %s (%s)", "id", "a.json", "missing")
				logger.Errorf("Error: File is not valid JSON: %s - %s", "b.json", "unexpected end of JSON input")
				logger.Error("Error: Input directory not found: /nope")
			},
			wantErrOut: []string{
				"Warning: Could not extract id from: a.json (missing)",
				"Error: File is not valid JSON: b.json - unexpected end of JSON input",
				"Error: Input directory not found: /nope",
			},
		},
		{
			name: "fix_line",
			op: func(logger *Logger) {
				logger.LogFix(FixOperation{
					Kind: "patient record",
					TAN:  "ABCD1234",
					Date: "2025-10-15T14:30:00.000000000",
					File: "/out/x.json",
				})
				logger.LogFix(FixOperation{Kind: "submission report", TAN: "ABCD1234", Date: "2025-10-15T14:30:00.000000000"})
			},
			wantOut: []string{
				"Fixed patient record - TAN: ABCD1234, Date: 2025-10-15T14:30:00.000000000",
				"Fixed submission report - TAN: ABCD1234, Date: 2025-10-15T14:30:00.000000000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out, errOut := newTestLogger(t)

			tt.op(logger)

			assert.Equal(t, tt.wantOut, lines(out), "stdout lines should match")
			assert.Equal(t, tt.wantErrOut, lines(errOut), "stderr lines should match")
		})
	}
}

func TestLogSummary(t *testing.T) {
	tests := []struct {
		name        string
		summary     status.Summary
		wantLines   []string
		unwantLines []string
	}{
		{
			name:        "no_errors",
			summary:     status.Summary{Modified: 2, Unmatched: 5},
			wantLines:   []string{"Summary:", "Files modified: 2"},
			unwantLines: []string{"Errors encountered"},
		},
		{
			name:      "with_errors",
			summary:   status.Summary{Modified: 0, Errors: 3},
			wantLines: []string{"Summary:", "Files modified: 0", "Errors encountered: 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, out, errOut := newTestLogger(t)

			logger.LogSummary(tt.summary)

			output := out.String()
			for _, want := range tt.wantLines {
				assert.Contains(t, output, want)
			}
			for _, unwant := range tt.unwantLines {
				assert.NotContains(t, output, unwant)
			}
			assert.Empty(t, errOut.String(), "summary should not write to stderr")

			got := lines(out)
			require.NotEmpty(t, got)
			assert.Equal(t, "", got[0], "summary should start with a blank line")
			assert.Equal(t, "Summary:", got[1])
		})
	}
}
