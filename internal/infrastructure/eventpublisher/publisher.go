// Package eventpublisher emits movement events for downstream consumers.
package eventpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// LogPublisher implements usecase.EventPublisher by writing events to the
// structured log. It stands in for a broker-backed publisher; consumers
// tail the event stream from the log pipeline.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish serializes the payload and emits it as a single log event.
func (p *LogPublisher) Publish(_ context.Context, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	p.logger.Info().
		Str("event_type", eventType).
		RawJSON("payload", data).
		Time("published_at", time.Now().UTC()).
		Msg("event published")

	return nil
}
