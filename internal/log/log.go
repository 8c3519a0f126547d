package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// DefaultName is the logger name written in the second column of every line.
const DefaultName = "credpaste"

// Options configures the logger.
type Options struct {
	// Name is written in the name column (defaults to DefaultName)
	Name string
	// Verbose enables debug output on stdout. The log file always gets every level.
	Verbose bool
	// Dir is the directory for daily log files. If empty, file logging is disabled.
	Dir string
	// RetentionDays is how many days to keep log files (0 = no cleanup)
	RetentionDays int
	// Stdout is the writer for console output (defaults to os.Stdout)
	Stdout io.Writer
}

// Logger is a slog.Logger that owns the daily log file it writes to.
type Logger struct {
	*slog.Logger
	file *FileWriter
}

// New builds a logger that writes tab-delimited lines to stdout and, when
// opts.Dir is set, to a daily file in that directory.
func New(opts Options) (*Logger, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stdoutLevel := slog.LevelInfo
	if opts.Verbose {
		stdoutLevel = slog.LevelDebug
	}

	handlers := []slog.Handler{NewTabHandler(stdout, name, stdoutLevel)}

	l := &Logger{}
	if opts.Dir != "" {
		if opts.RetentionDays > 0 {
			Cleanup(opts.Dir, opts.RetentionDays)
		}

		fw, err := NewFileWriter(opts.Dir)
		if err != nil {
			return nil, err
		}
		l.file = fw
		handlers = append(handlers, NewTabHandler(fw, name, slog.LevelDebug))
	}

	l.Logger = slog.New(&multiHandler{handlers: handlers})
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(NewTabHandler(io.Discard, DefaultName, slog.LevelError+1))}
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// multiHandler fans out log records to multiple handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
