package notifier

import (
	"log/slog"

	"storefront-engine/internal/domain/notification"
)

// LogSink writes every event to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(e notification.Event) {
	attrs := []any{
		slog.String("kind", string(e.Kind)),
		slog.String("title", e.Title),
		slog.String("message", e.Message),
	}
	if e.Ref != "" {
		attrs = append(attrs, slog.String("ref", e.Ref))
	}

	if e.IsDestructive() {
		s.logger.Warn("Notification", attrs...)
		return
	}
	s.logger.Info("Notification", attrs...)
}
