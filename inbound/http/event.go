package http

import (
	"event-map/common"
	"event-map/common/constant"
	"event-map/common/errs"
	"event-map/common/metrics"
	"event-map/common/otel"
	"event-map/common/vars"
	"event-map/core/catalog"
	"event-map/model"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"log/slog"
	"net/http"
	"strconv"
)

type EventHttp struct {
	Cache    *redis.Client
	Validate *validator.Validate
}

func RegisterEventHttp(mux *http.ServeMux, cache *redis.Client, validate *validator.Validate) *EventHttp {
	in := &EventHttp{Cache: cache, Validate: validate}

	mux.HandleFunc("GET /api/events", in.list)
	mux.HandleFunc("GET /api/events/{id}", in.get)
	mux.HandleFunc("GET /api/events/{id}/stats", in.stats)
	mux.HandleFunc("GET /api/categories", in.categories)

	return in
}

func (in EventHttp) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := model.ListEventsRequest{
		Query:      query.Get("q"),
		Categories: query["category"],
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.list")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.DebugContext(ctx, "list events receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	events := catalog.Filter(vars.GetCatalog(), req.Query, req.Categories)
	metrics.FilterResultSize.Observe(float64(len(events)))
	slog.DebugContext(ctx, "list events success", traceIdAttr, slog.Int(constant.LogFieldResponse, len(events)))

	writeJSONResponse(w, http.StatusOK, model.ListEventsResponse{Events: events, Count: len(events)})
}

func (in EventHttp) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathEventId(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	event, ok := vars.FindEvent(id)
	if !ok {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}

	writeJSONResponse(w, http.StatusOK, event)
}

func (in EventHttp) stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathEventId(r)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	if _, ok := vars.FindEvent(id); !ok {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "EventHttp.stats")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	values, err := in.Cache.MGet(ctx,
		fmt.Sprintf(constant.EventSelectedKey, id),
		fmt.Sprintf(constant.EventDetailsKey, id),
	).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get event stats from cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	counters := make([]int64, len(values))
	for i, value := range values {
		str, ok := value.(string)
		if !ok {
			continue
		}

		counters[i], err = strconv.ParseInt(str, 10, 64)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse event counter", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			writeErrorResponse(w, err)
			return
		}
	}

	writeJSONResponse(w, http.StatusOK, model.EventStatsResponse{
		Id:       id,
		Selected: counters[0],
		Details:  counters[1],
	})
}

func (in EventHttp) categories(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, model.ListCategoriesResponse{Categories: constant.CategoryTags})
}
