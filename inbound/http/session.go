package http

import (
	"context"
	"errors"
	"event-map/common"
	"event-map/common/constant"
	"event-map/common/contract"
	"event-map/common/errs"
	"event-map/common/metrics"
	"event-map/common/otel"
	"event-map/common/vars"
	"event-map/core/session"
	"event-map/core/sheet"
	"event-map/model"
	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"
	"log/slog"
	"net/http"
	"time"
)

type SessionHttp struct {
	Store     contract.SessionStore
	Machine   session.Machine
	Publisher contract.Publisher
	Validate  *validator.Validate

	NewId   func() string
	TimeNow func() time.Time
}

// transition applies one action to a loaded session. A non-nil activity is
// published after the new state is saved.
type transition func(ctx context.Context, sess session.Session) (session.Session, *activity, error)

type activity struct {
	subject string
	eventId int
}

func RegisterSessionHttp(
	mux *http.ServeMux,
	store contract.SessionStore,
	machine session.Machine,
	publisher contract.Publisher,
	validate *validator.Validate,
) *SessionHttp {
	in := &SessionHttp{
		Store:     store,
		Machine:   machine,
		Publisher: publisher,
		Validate:  validate,
		NewId:     func() string { return ulid.Make().String() },
		TimeNow:   time.Now,
	}

	mux.HandleFunc("POST /api/sessions", in.create)
	mux.HandleFunc("GET /api/sessions/{id}", in.get)
	mux.HandleFunc("DELETE /api/sessions/{id}", in.delete)
	mux.HandleFunc("PUT /api/sessions/{id}/search", in.search)
	mux.HandleFunc("POST /api/sessions/{id}/categories/toggle", in.toggleCategory)
	mux.HandleFunc("POST /api/sessions/{id}/reset", in.reset)
	mux.HandleFunc("POST /api/sessions/{id}/select", in.selectEvent)
	mux.HandleFunc("POST /api/sessions/{id}/details", in.details)
	mux.HandleFunc("DELETE /api/sessions/{id}/notice", in.dismissNotice)
	mux.HandleFunc("POST /api/sessions/{id}/panel/toggle", in.togglePanel)
	mux.HandleFunc("POST /api/sessions/{id}/panel/touch", in.touchPanel)

	return in
}

func (in *SessionHttp) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	sess := in.Machine.New(in.NewId())
	if err := in.Store.Save(ctx, sess); err != nil {
		slog.ErrorContext(ctx, "failed to save session", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	metrics.SessionActionsTotal.WithLabelValues("create").Inc()
	slog.InfoContext(ctx, "session created", traceIdAttr, slog.String(constant.LogFieldSession, sess.Id))

	writeJSONResponse(w, http.StatusCreated, in.view(sess))
}

func (in *SessionHttp) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.get")
	defer span.End()

	sess, err := in.load(ctx, r.PathValue("id"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, in.view(sess))
}

func (in *SessionHttp) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp.delete")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	id := r.PathValue("id")

	if err := in.Store.Delete(ctx, id); err != nil {
		slog.ErrorContext(ctx, "failed to delete session", traceIdAttr, slog.String(constant.LogFieldSession, id), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	metrics.SessionActionsTotal.WithLabelValues("delete").Inc()
	writeJSONResponse(w, http.StatusNoContent, nil)
}

func (in *SessionHttp) search(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.apply(w, r, "search", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.Search(sess, req.Query), nil, nil
	})
}

func (in *SessionHttp) toggleCategory(w http.ResponseWriter, r *http.Request) {
	var req model.ToggleCategoryRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.apply(w, r, "toggle_category", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.ToggleCategory(sess, req.Category), nil, nil
	})
}

func (in *SessionHttp) reset(w http.ResponseWriter, r *http.Request) {
	in.apply(w, r, "reset", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.Reset(sess), &activity{subject: constant.SubjectFiltersReset}, nil
	})
}

func (in *SessionHttp) selectEvent(w http.ResponseWriter, r *http.Request) {
	var req model.SelectEventRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.apply(w, r, "select", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		event, ok := vars.FindEvent(req.EventId)
		if !ok {
			return sess, nil, errs.ErrEventNotFound
		}

		return in.Machine.Select(sess, event, req.Viewport), &activity{subject: constant.SubjectEventSelected, eventId: event.Id}, nil
	})
}

func (in *SessionHttp) details(w http.ResponseWriter, r *http.Request) {
	var req model.DetailsRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.apply(w, r, "details", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		if _, ok := vars.FindEvent(req.EventId); !ok {
			return sess, nil, errs.ErrEventNotFound
		}

		return in.Machine.ShowDetails(sess), &activity{subject: constant.SubjectEventDetails, eventId: req.EventId}, nil
	})
}

func (in *SessionHttp) dismissNotice(w http.ResponseWriter, r *http.Request) {
	in.apply(w, r, "dismiss_notice", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.DismissNotice(sess), nil, nil
	})
}

func (in *SessionHttp) togglePanel(w http.ResponseWriter, r *http.Request) {
	var req model.PanelToggleRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	in.apply(w, r, "panel_toggle", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.TogglePanel(sess, req.Viewport), nil, nil
	})
}

func (in *SessionHttp) touchPanel(w http.ResponseWriter, r *http.Request) {
	var req model.PanelTouchRequest
	if err := decodeRequest(r, in.Validate, &req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	phase, err := sheet.ParsePhase(req.Phase)
	if err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	in.apply(w, r, "panel_touch", func(ctx context.Context, sess session.Session) (session.Session, *activity, error) {
		return in.Machine.Touch(sess, sheet.Touch{Phase: phase, Y: req.Y}, req.Viewport), nil, nil
	})
}

// apply loads the session named in the path, runs fn, saves the result and
// writes the new view. Concurrent actions on one session are last-write-wins.
func (in *SessionHttp) apply(w http.ResponseWriter, r *http.Request, action string, fn transition) {
	ctx, span := otel.Tracer.Start(r.Context(), "SessionHttp."+action)
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	sess, err := in.load(ctx, r.PathValue("id"))
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	sessionAttr := slog.String(constant.LogFieldSession, sess.Id)
	slog.DebugContext(ctx, "session action receive request", traceIdAttr, sessionAttr, slog.String("action", action))

	next, act, err := fn(ctx, sess)
	if errors.Is(err, errs.ErrEventNotFound) {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusNotFound, Message: "Event not found"})
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to apply session action", traceIdAttr, sessionAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if err := in.Store.Save(ctx, next); err != nil {
		slog.ErrorContext(ctx, "failed to save session", traceIdAttr, sessionAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	metrics.SessionActionsTotal.WithLabelValues(action).Inc()

	if act != nil {
		err := common.PublishMessage(ctx, in.Publisher, act.subject, model.ActivityEventMessage{
			SessionId: next.Id,
			EventId:   act.eventId,
			At:        in.TimeNow().Format(time.RFC3339),
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to publish session activity", traceIdAttr, sessionAttr, slog.String("subject", act.subject), slog.Any(constant.LogFieldErr, err))
		}
	}

	writeJSONResponse(w, http.StatusOK, in.view(next))
}

func (in *SessionHttp) load(ctx context.Context, id string) (session.Session, error) {
	sess, err := in.Store.Get(ctx, id)
	if errors.Is(err, errs.ErrSessionNotFound) {
		return session.Session{}, &errs.HttpError{Code: http.StatusNotFound, Message: "Session not found"}
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load session", common.ExtractTraceIDFromCtx(ctx), slog.String(constant.LogFieldSession, id), slog.Any(constant.LogFieldErr, err))
		return session.Session{}, err
	}

	return sess, nil
}

func (in *SessionHttp) view(sess session.Session) model.SessionViewResponse {
	view := in.Machine.View(sess, vars.GetCatalog())
	metrics.FilterResultSize.Observe(float64(view.Count))
	return view
}
