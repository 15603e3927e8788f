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

// Package log renders bump runs for humans and mirrors them to zerolog.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/walteh/vbump/pkg/bump"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // Base width for filename
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	colored bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger. Colors are only used when console is a
// terminal.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		colored: isTerminal(console),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// paint returns a color that honors the logger's terminal detection
func (l *Logger) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if l.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// 📝 formatChange formats a rewritten version marker for display
func (l *Logger) formatChange(c bump.Change) string {
	return fmt.Sprintf("%s%s %s %s %s %s",
		strings.Repeat(" ", fileIndent),
		l.paint(color.FgBlue).Sprint("⟳"),
		fmt.Sprintf("%-*s", nameWidth, c.File),
		l.paint(color.FgYellow).Sprint(c.Old),
		l.paint(color.Faint).Sprint("->"),
		l.paint(color.FgGreen).Sprint(c.New))
}

// 📝 Change logs a single rewritten version marker
func (l *Logger) Change(c bump.Change) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatChange(c))

	l.zlog.Info().
		Str("file", c.Path).
		Str("old", c.Old).
		Str("new", c.New).
		Int("offset", c.Offset).
		Msg("version updated")
}

// 📝 Failure logs a file that could not be processed
func (l *Logger) Failure(f *bump.FileError) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s%s %s %s\n",
		strings.Repeat(" ", fileIndent),
		l.paint(color.FgRed).Sprint("✗"),
		fmt.Sprintf("%-*s", nameWidth, f.Path),
		l.paint(color.FgRed).Sprintf("%s failed: %v", f.Op, f.Err))

	l.zlog.Error().
		Err(f.Err).
		Str("file", f.Path).
		Str("op", string(f.Op)).
		Msg("file skipped")
}

// 📝 Skipped logs a match that was left untouched
func (l *Logger) Skipped(s bump.SkippedMatch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s%s %s %s\n",
		strings.Repeat(" ", fileIndent),
		l.paint(color.FgYellow).Sprint("-"),
		fmt.Sprintf("%-*s", nameWidth, s.Path),
		l.paint(color.Faint).Sprintf("%s (%s)", s.Text, s.Reason))

	l.zlog.Warn().
		Str("file", s.Path).
		Str("match", s.Text).
		Int("offset", s.Offset).
		Msg(s.Reason)
}

// 📊 Report prints every change, skipped match and failure of a run
// followed by its summary
func (l *Logger) Report(result *bump.Result) {
	for _, c := range result.Changes {
		l.Change(c)
	}
	for _, s := range result.Skipped {
		l.Skipped(s)
	}
	for _, f := range result.Failures {
		l.Failure(f)
	}

	l.zlog.Info().
		Str("run_id", result.RunID).
		Str("mode", result.Mode.String()).
		Int("scanned", result.Scanned).
		Int("changed", result.Changed).
		Int("failed", len(result.Failures)).
		Msg("run complete")

	switch {
	case result.Mode == bump.ModeNoOp:
		l.Info(result.Summary())
	case result.HasFailures():
		l.Warningf("%s, %d failed", result.Summary(), len(result.Failures))
	case result.HasChanges():
		l.Success(result.Summary())
	default:
		l.Warning(result.Summary())
	}
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := l.paint(color.Bold, color.FgCyan).Sprint("vbump")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, l.paint(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", l.paint(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", l.paint(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", l.paint(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
