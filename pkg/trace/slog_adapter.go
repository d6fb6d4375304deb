package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see exchanges in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("exchange_id", event.ExchangeID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	// Add type-specific attributes
	switch {
	case event.Message != nil:
		attrs = append(attrs,
			slog.String("version", event.Message.Version),
			slog.Uint64("request_id", uint64(event.Message.RequestID)),
			slog.Int("attributes", event.Message.Attributes),
		)
		if event.Message.Operation != nil {
			attrs = append(attrs, slog.String("operation", event.Message.Operation.String()))
		}
		if event.Message.Status != nil {
			attrs = append(attrs, slog.String("status", event.Message.Status.String()))
		}
		if event.Message.Size > 0 {
			attrs = append(attrs, slog.Int("size", event.Message.Size))
		}
		if event.Message.Elapsed != nil {
			attrs = append(attrs, slog.Duration("elapsed", *event.Message.Elapsed))
		}
	case event.Document != nil:
		attrs = append(attrs, slog.Int64("doc_size", event.Document.Size))
		if event.Document.Format != "" {
			attrs = append(attrs, slog.String("doc_format", event.Document.Format))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "ipp exchange event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
