package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/wisepayru/banking/internal/event"
)

// LogSink emits each event as structured JSON. Absent optional fields are
// omitted from the emitted payload, not rendered as empty strings.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Receive(ctx context.Context, evt event.Event) error {
	b, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Kind(), err)
	}
	s.logger.InfoContext(ctx, "webhook event received",
		"category", evt.Kind(),
		"id", evt.ID(),
		"event", json.RawMessage(b),
	)
	return nil
}
