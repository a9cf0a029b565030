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

package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/dnpm-fixup/pkg/config"
	"github.com/walteh/dnpm-fixup/pkg/log"
	"github.com/walteh/dnpm-fixup/pkg/operation"
)

const longHelp = `DNPM submission data fix-up tool. Corrects submission dates in patient
record and submission report files.

Config File Format:
  CSV file with no header. Each line contains:
    <TAN>,<ISO_8601_DATETIME>

  Example:
    306600442D212C47921B7DC0C8C2A886...,2025-10-15T14:30:00.000000000

  The TAN is a 64-character hexadecimal transfer identifier.
  The datetime format is: YYYY-MM-DDTHH:MM:SS.nnnnnnnnn (nanosecond precision)

  Files ending in .yaml, .yml, .json or .hcl may instead hold a list of
  corrections with "tan" and "date" entries. Plain rows are accepted
  under any file name.

  A TAN must be a JSON string in the record. A record whose TAN is missing,
  empty or of another type (e.g. a number) is reported and counted as an
  error.

Input File Types:
  1. Patient Records (MVH_MTBPatientRecord_Patient_<UUID>_TAN_<TAN>.json)
     - TAN read from: metadata.transferTAN
     - Field replaced: submittedAt

  2. Submission Reports (SubmissionReport_Patient_<UUID>_TAN_<TAN>.json)
     - TAN read from: id
     - Field replaced: createdAt

Only files with TANs matching config entries are written to the output directory.
Files are written with UTF-8 encoding and 2-space indentation.

Set ` + logLevelEnv + `=debug for diagnostic output on stderr.`

// newRootCmd creates the dnpm-fixup command. Output goes through console.
func newRootCmd(console *log.Logger) *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:           "dnpm-fixup",
		Short:         "Correct submission dates in DNPM patient records and submission reports",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := operation.Run(cmd.Context(), operation.Options{
				Config: cfg,
				Logger: console,
			})
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.TablePath, "config", "", "CSV config file with TAN,DATE pairs (no header)")
	flags.StringVar(&cfg.InputDir, "in-dir", "", "input directory containing MVH_MTBPatientRecord_*.json and SubmissionReport_*.json files")
	flags.StringVar(&cfg.OutputDir, "out-dir", "", "existing output directory for corrected files")

	for _, name := range []string{"config", "in-dir", "out-dir"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.AddCommand(newVersionCmd())

	return cmd
}
