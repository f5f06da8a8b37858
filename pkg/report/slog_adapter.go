package report

import (
	"context"
	"log/slog"
)

// SlogAdapter writes report events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level; findings are logged at Info.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("run_id", event.RunID),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.RunStarted != nil:
		attrs = append(attrs,
			slog.String("file", event.RunStarted.File),
			slog.Bool("strict", event.RunStarted.Strict),
		)
		if event.RunStarted.Digest != "" {
			attrs = append(attrs, slog.String("digest", event.RunStarted.Digest))
		}
		if event.RunStarted.SchemaVersion != "" {
			attrs = append(attrs, slog.String("schema_version", event.RunStarted.SchemaVersion))
		}
	case event.Finding != nil:
		level = slog.LevelInfo
		attrs = append(attrs,
			slog.String("group", event.Finding.GroupPath),
			slog.String("attribute", event.Finding.Attribute),
			slog.String("kind", event.Finding.Kind),
			slog.String("message", event.Finding.Message),
		)
	case event.RunFinished != nil:
		attrs = append(attrs,
			slog.Int("errors", event.RunFinished.ErrorCount),
			slog.Int("groups", event.RunFinished.GroupCount),
			slog.Duration("duration", event.RunFinished.Duration),
		)
	}

	a.logger.LogAttrs(context.Background(), level, "validation", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
