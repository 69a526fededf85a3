package event

import (
	"context"
	"encoding/json"
	"event-map/common"
	"event-map/common/constant"
	"event-map/common/otel"
	"event-map/model"
	"fmt"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"time"
)

// ActivityEvent turns session activity into per-event counters.
type ActivityEvent struct {
	Cache   *redis.Client
	Timeout time.Duration
}

func (in ActivityEvent) SelectedHandler(ctx context.Context, msg []byte) error {
	return in.increment(ctx, "ActivityEvent.SelectedHandler", constant.EventSelectedKey, msg)
}

func (in ActivityEvent) DetailsHandler(ctx context.Context, msg []byte) error {
	return in.increment(ctx, "ActivityEvent.DetailsHandler", constant.EventDetailsKey, msg)
}

// ResetHandler only records the reset. Malformed payloads are dropped.
func (in ActivityEvent) ResetHandler(ctx context.Context, msg []byte) error {
	var req model.ActivityEventMessage
	if err := json.Unmarshal(msg, &req); err != nil {
		slog.WarnContext(ctx, "filters reset event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	slog.InfoContext(ctx, "filters reset", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSession, req.SessionId), slog.String("at", req.At))
	return nil
}

func (in ActivityEvent) increment(ctx context.Context, spanName, keyFormat string, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.ActivityEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "activity event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	if req.EventId <= 0 {
		slog.WarnContext(ctx, "activity event without event id", slog.Any(constant.LogFieldPayload, req))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, spanName)
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "activity event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	count, err := in.Cache.Incr(ctx, fmt.Sprintf(keyFormat, req.EventId)).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to increment activity counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	slog.DebugContext(ctx, "activity counter incremented", traceIdAttr, slog.Int("event_id", req.EventId), slog.Int64("count", count))
	return nil
}
