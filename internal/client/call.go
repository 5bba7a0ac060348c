package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// call issues one remote action and decodes the response into T. Every call
// gets its own request id so overlapping calls can be told apart in logs.
func call[T any](ctx context.Context, c *backendClient, action string, payload map[string]any) (_ T, callErr error) {
	var zero T

	requestID := uuid.NewString()
	c.logger.DebugContext(ctx, "service call",
		slog.String("action", action),
		slog.String("request_id", requestID),
	)

	raw, err := c.caller.Call(ctx, c.cfg.Domain(), action, payload)
	if err != nil {
		c.logger.DebugContext(ctx, "service call failed",
			slog.String("action", action),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return zero, fmt.Errorf("caller.Call %s: %w", action, err)
	}

	var out T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return zero, fmt.Errorf("unmarshal %s response: %w", action, err)
		}
	}

	return out, nil
}
