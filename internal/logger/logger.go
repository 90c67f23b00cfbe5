package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// New returns a JSON logger whose records carry timestamp, level, instance
// and message fields.
func New(w io.Writer, instance string, level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
	return slog.New(h).With("instance", instance)
}

// Install makes l the process default, so the std log package writes
// through it as well.
func Install(l *slog.Logger) {
	slog.SetDefault(l)
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		a.Key = "timestamp"
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		a.Value = slog.StringValue(strings.ToLower(a.Value.String()))
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}
