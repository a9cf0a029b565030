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
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/dnpm-fixup/pkg/status"
)

// 🎯 FixOperation describes one corrected record for the running commentary
type FixOperation struct {
	Kind string // Record kind, e.g. "patient record"
	TAN  string // Transfer TAN that matched
	Date string // Timestamp written
	File string // Output path
}

// 🎯 Logger is the console sink of a run. Informational lines go to out,
// warnings and errors to errOut, and every line is mirrored to zlog at debug
// level. Lines are written in call order from a single goroutine.
type Logger struct {
	zlog   zerolog.Logger
	out    io.Writer
	errOut io.Writer
}

// 🏭 New creates a new logger
func New(out, errOut io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:   zlog,
		out:    out,
		errOut: errOut,
	}
}

func (l *Logger) println(w io.Writer, c *color.Color, msg string) {
	fmt.Fprintln(w, c.Sprint(msg))
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.println(l.out, color.New(color.Reset), msg)
	l.zlog.Debug().Str("console", "info").Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.println(l.errOut, color.New(color.FgYellow), msg)
	l.zlog.Debug().Str("console", "warning").Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.println(l.errOut, color.New(color.FgRed), msg)
	l.zlog.Debug().Str("console", "error").Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// ✏️ LogFix reports a corrected record
func (l *Logger) LogFix(op FixOperation) {
	msg := fmt.Sprintf("Fixed %s - TAN: %s, Date: %s", op.Kind, op.TAN, op.Date)
	l.println(l.out, color.New(color.FgGreen), msg)
	l.zlog.Debug().
		Str("kind", op.Kind).
		Str("tan", op.TAN).
		Str("date", op.Date).
		Str("file", op.File).
		Msg("record fixed")
}

// 📊 LogSummary prints the end-of-run totals. The error line only appears
// when at least one file failed.
func (l *Logger) LogSummary(summary status.Summary) {

	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, color.New(color.Bold).Sprint("Summary:"))

	pterm.Success.
		WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}).
		WithWriter(l.out).
		Printfln("Files modified: %d", summary.Modified)

	if summary.Errors > 0 {
		pterm.Error.
			WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}).
			WithWriter(l.out).
			Printfln("Errors encountered: %d", summary.Errors)
	}

	l.zlog.Debug().
		Int("modified", summary.Modified).
		Int("errors", summary.Errors).
		Int("unmatched", summary.Unmatched).
		Msg("run summary")
}
