package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/pkg/logging"
)

const publishTimeout = 5 * time.Second

// publish is best effort: a failed event is logged and the write it
// describes still succeeds.
func publish(ctx context.Context, p events.Publisher, e events.Event) {
	if p == nil {
		return
	}
	e.At = time.Now().UTC()

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := p.Publish(pubCtx, e); err != nil {
		logging.FromContext(ctx).Warn("event_publish_error", "type", e.Type, "id", e.ID, "error", err)
	}
}
