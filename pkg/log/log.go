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
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent image entries
	nameWidth   = 35 // Base width for output name
	setWidth    = 15 // Width for transformation set
	statusWidth = 15 // Width for status text
)

// 🖼️ ImageOperation represents the processing of one image for logging
type ImageOperation struct {
	Name       string // Output file name (prefixed)
	Set        string // Transformation set name
	Status     string // Operation status
	Operations string // Rendered operation list
	IsDone     bool   // Whether the image was converted
	IsFailed   bool   // Whether the conversion failed
}

// 📦 AlbumOperation represents an album run for logging
type AlbumOperation struct {
	Name   string // Album name
	Base   string // Input directory
	Output string // Output directory
	Images int    // Number of images
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *AlbumOperation
	operations []ImageOperation
}

// 🏭 New creates a new logger. The zerolog mirror writes to stderr at level.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
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

// 📝 formatImageOperation formats an image operation for display
func (l *Logger) formatImageOperation(op ImageOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsDone:
		symbol = '✓'
		symbolColor = color.FgGreen
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	setColor := color.FgBlue
	if op.Set == "default" {
		setColor = color.FgCyan
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Name),
		color.New(setColor).Sprint(fmt.Sprintf("%-*s", setWidth, op.Set)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))

	if op.Operations != "" {
		line += color.New(color.Faint).Sprint(op.Operations)
	}
	return line
}

// 📝 LogImageOperation logs an image operation
func (l *Logger) LogImageOperation(ctx context.Context, op ImageOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatImageOperation(op))

	l.zlog.Info().
		Str("image", op.Name).
		Str("set", op.Set).
		Str("status", op.Status).
		Str("operations", op.Operations).
		Bool("done", op.IsDone).
		Bool("failed", op.IsFailed).
		Msg("image operation")
}

// 📝 StartAlbumOperation starts a new album operation
func (l *Logger) StartAlbumOperation(ctx context.Context, op AlbumOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	fmt.Fprintf(l.console, "[processing %s]\n",
		color.New(color.FgCyan).Sprint(op.Base))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Name),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprintf("%d images", op.Images))

	l.zlog.Info().
		Str("album", op.Name).
		Str("base", op.Base).
		Str("output", op.Output).
		Int("images", op.Images).
		Msg("starting album operation")
}

// 📝 EndAlbumOperation ends the current album operation and returns how many
// images were logged as done and failed.
func (l *Logger) EndAlbumOperation(ctx context.Context) (done, failed int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return 0, 0
	}

	for _, op := range l.operations {
		switch {
		case op.IsFailed:
			failed++
		case op.IsDone:
			done++
		}
	}

	l.zlog.Info().
		Str("album", l.currentOp.Name).
		Int("images", len(l.operations)).
		Int("done", done).
		Int("failed", failed).
		Msg("album operation complete")

	l.currentOp = nil
	l.operations = nil
	return done, failed
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("albumrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
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

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Print writes pre-rendered text, such as a table, to the console
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(l.console)
	}
}
