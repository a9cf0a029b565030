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
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/dnpm-fixup/pkg/log"
)

// logLevelEnv selects the zerolog level of the diagnostic stream on stderr.
const logLevelEnv = "DNPM_FIXUP_LOG_LEVEL"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command line and returns the process exit code.
// Per-file problems never change the exit code; only fatal errors do.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	zlog := newLogger(stderr, getenv(logLevelEnv))
	ctx = zlog.WithContext(ctx)

	console := log.New(stdout, stderr, zlog)

	cmd := newRootCmd(console)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		zlog.Debug().Err(err).Msg("run failed")
		console.Errorf("Error: %s", err)
		return 1
	}
	return 0
}

// newLogger builds the structured logger. Unknown or empty levels fall back
// to warn so debug chatter stays off by default.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	out := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
	})
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
