// Package logging provides the leveled logger used throughout photorename.
// It is a thin layer over zerolog: human-readable console output on
// stdout/stderr and an optional plain-text log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sheley/photo-rename-script/internal/config"
	"github.com/sheley/photo-rename-script/internal/term"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu   sync.Mutex
	zl   zerolog.Logger
	file *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile in
// append mode. ERROR lines go to stderr, everything else to stdout. Debug
// lines are emitted only when cfg.Verbose is set. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	noColor := !term.Enabled()
	w := &levelSplitWriter{
		out: zerolog.ConsoleWriter{Out: os.Stdout, NoColor: noColor, TimeFormat: timeFormat},
		err: zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor, TimeFormat: timeFormat},
	}

	l := &Logger{}
	var sink zerolog.LevelWriter = w
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("logging: ensure log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		l.file = f
		sink = zerolog.MultiLevelWriter(w, zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: timeFormat})
	}

	l.zl = zerolog.New(sink).With().Timestamp().Logger().Level(levelFor(cfg.Verbose))
	return l, nil
}

// New returns a Logger writing uncolored console lines to w. Used by tests
// and callers that capture output.
func New(w io.Writer, verbose bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: timeFormat}
	return &Logger{zl: zerolog.New(cw).With().Timestamp().Logger().Level(levelFor(verbose))}
}

func levelFor(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) emit(e *zerolog.Event, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.Msgf(format, args...)
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(l.zl.Info(), format, args)
}

// Success logs at INFO level tagged status=ok.
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(l.zl.Info().Str("status", "ok"), format, args)
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(l.zl.Warn(), format, args)
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(l.zl.Error(), format, args)
}

// Debug logs at DEBUG level; dropped unless the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(l.zl.Debug(), format, args)
}

// levelSplitWriter routes ERROR and above to err, the rest to out.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w *levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}
