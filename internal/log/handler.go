package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// TimeFormat is the layout of the first column.
const TimeFormat = "2006-01-02 15:04:05"

// TabHandler writes one line per record:
//
//	<time>\t<name>\t[<LEVEL>]\t<message> key=value ...
type TabHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	name   string
	level  slog.Leveler
	prefix string
	attrs  string
}

// NewTabHandler returns a handler writing records at or above level to w.
func NewTabHandler(w io.Writer, name string, level slog.Leveler) *TabHandler {
	return &TabHandler{w: w, mu: &sync.Mutex{}, name: name, level: level}
}

func (h *TabHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *TabHandler) Handle(_ context.Context, r slog.Record) error {
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}

	var sb strings.Builder
	sb.WriteString(t.Format(TimeFormat))
	sb.WriteByte('\t')
	sb.WriteString(h.name)
	sb.WriteString("\t[")
	sb.WriteString(LevelName(r.Level))
	sb.WriteString("]\t")
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *TabHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}
	h2 := *h
	h2.attrs = h.attrs + sb.String()
	return &h2
}

func (h *TabHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

// LevelName maps slog levels onto the level names used in the log files.
func LevelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	default:
		return "ERROR"
	}
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, p, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().Format(TimeFormat)
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
