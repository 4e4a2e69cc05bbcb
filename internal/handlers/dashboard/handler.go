package dashboard

import (
	"bytes"
	"clockwise/config"
	"clockwise/infras/otel"
	"clockwise/internal/domains/catalog"
	"clockwise/internal/domains/clock"
	"clockwise/internal/domains/session/model"
	"clockwise/internal/domains/session/service"
	"clockwise/shared/constant"
	"clockwise/shared/failure"
	"clockwise/transport/http/middleware"
	"clockwise/transport/http/response"
	"clockwise/transport/http/view"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	home          = "/"
	serverFailure = "Something went wrong while loading your clocks. Please try again."
)

// Handler serves the HTML dashboard. Every action is a form post answered with a redirect home.
type Handler struct {
	session  service.Session
	catalog  catalog.Catalog
	renderer clock.Renderer
	view     view.Renderer
	cfg      *config.Config
	otel     otel.Otel
}

func New(session service.Session, catalog catalog.Catalog, renderer clock.Renderer, view view.Renderer, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		session:  session,
		catalog:  catalog,
		renderer: renderer,
		view:     view,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Dashboard)
	router.Post("/refresh", handler.Refresh)
	router.Post("/clocks", handler.AddClock)
	router.Post("/clocks/{index}/remove", handler.RemoveClock)
	router.Post("/session/reset", handler.Reset)
}

func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	id := middleware.SessionID(ctx)

	notices, err := handler.session.TakeNotices(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read notices")

		handler.fail(w, err)

		return
	}

	session, err := handler.session.Load(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load session")

		handler.fail(w, err)

		return
	}

	labels := session.List()
	board := handler.renderer.Render(ctx, labels)

	page := view.Dashboard{
		AppName:     handler.cfg.App.Name,
		Labels:      labels,
		Available:   handler.catalog.Available(labels),
		CanAdd:      session.CanAdd(),
		MaxClocks:   model.MaxClocks,
		NoSelection: model.NoSelection,
		Notices:     append(notices, board.Notices...),
		Board:       board,
	}

	var buf bytes.Buffer
	if err = handler.view.Dashboard(&buf, page); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render dashboard")

		handler.fail(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, &buf)
}

// Refresh only redirects; the next GET renders the clocks at the current time.
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	response.WithRedirect(w, r, home)
}

func (handler *Handler) AddClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddClock")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		handler.fail(w, failure.BadRequest(err))

		return
	}

	label := r.PostForm.Get(constant.RequestFormLabel)

	_, err := handler.session.Add(ctx, middleware.SessionID(ctx), label)
	handler.finish(ctx, w, r, err)
}

func (handler *Handler) RemoveClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveClock")
	defer scope.End()

	index, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamIndex))
	if err != nil {
		handler.finish(ctx, w, r, failure.InvalidIndexParam)

		return
	}

	_, err = handler.session.Remove(ctx, middleware.SessionID(ctx), index)
	handler.finish(ctx, w, r, err)
}

func (handler *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reset")
	defer scope.End()

	_, err := handler.session.Reset(ctx, middleware.SessionID(ctx))
	handler.finish(ctx, w, r, err)
}

// finish redirects home. Rejected actions leave the session as it was and queue a warning instead.
func (handler *Handler) finish(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		response.WithRedirect(w, r, home)

		return
	}

	var fail *failure.Failure
	if !errors.As(err, &fail) || fail.Code >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("failed to update session")

		handler.fail(w, err)

		return
	}

	notice := model.Notice{Level: model.LevelWarning, Message: err.Error()}
	if flashErr := handler.session.Flash(ctx, middleware.SessionID(ctx), notice); flashErr != nil {
		log.Error().Err(flashErr).Msg("failed to queue notice")
	}

	response.WithRedirect(w, r, home)
}

// fail answers a browser with an error page. Details of server errors stay in the log.
func (handler *Handler) fail(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := failure.GetMessage(err, serverFailure)
	if code >= http.StatusInternalServerError {
		message = serverFailure
	}

	page := view.Failure{
		AppName: handler.cfg.App.Name,
		Status:  code,
		Title:   http.StatusText(code),
		Message: message,
	}

	var buf bytes.Buffer
	if renderErr := handler.view.Failure(&buf, page); renderErr != nil {
		log.Error().Err(renderErr).Msg("failed to render error page")

		http.Error(w, message, code)

		return
	}

	response.WithHTML(w, code, &buf)
}
