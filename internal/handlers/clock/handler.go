package clock

import (
	"clockwise/infras/otel"
	"clockwise/internal/domains/catalog"
	"clockwise/internal/domains/clock"
	"clockwise/internal/domains/session/model"
	"clockwise/internal/domains/session/model/dto"
	"clockwise/internal/domains/session/service"
	"clockwise/shared"
	"clockwise/shared/constant"
	"clockwise/shared/failure"
	"clockwise/shared/validator"
	"clockwise/transport/http/middleware"
	"clockwise/transport/http/response"
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type BoardResponse struct {
	Session dto.SessionResponse `json:"session"`
	Board   clock.Board         `json:"board"`
}

type TimezonesResponse struct {
	Timezones []catalog.Entry `json:"timezones"`
	Total     int             `json:"total"`
}

type Handler struct {
	session  service.Session
	catalog  catalog.Catalog
	renderer clock.Renderer
	otel     otel.Otel
}

func New(session service.Session, catalog catalog.Catalog, renderer clock.Renderer, otel otel.Otel) Handler {
	return Handler{
		session:  session,
		catalog:  catalog,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clocks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetClocks)
		routerGroup.Post("/", handler.AddClock)
		routerGroup.Delete("/{index}", handler.RemoveClock)
	})

	router.Post("/session/reset", handler.ResetSession)
	router.Get("/timezones", handler.SearchTimezones)
}

func (handler *Handler) board(ctx context.Context, session *model.Session) BoardResponse {
	res := BoardResponse{Board: handler.renderer.Render(ctx, session.List())}
	res.Session.FromModel(session)

	return res
}

// GetClocks renders the clocks of the current session.
// @Summary Get clocks
// @Description Render every clock of the caller's session at the current instant.
// @Tags Clock
// @Produce json
// @Success 200 {object} BoardResponse
// @Failure 500 {object} response.Error
// @Router /v1/clocks [get]
func (handler *Handler) GetClocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClocks")
	defer scope.End()

	session, err := handler.session.Load(ctx, middleware.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.board(ctx, session))
}

// AddClock appends a clock to the current session.
// @Summary Add a clock
// @Tags Clock
// @Accept json
// @Produce json
// @Param request body dto.AddClockRequest true "Add Clock Request"
// @Success 201 {object} BoardResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/clocks [post]
func (handler *Handler) AddClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddClock")
	defer scope.End()

	req := dto.AddClockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.session.Add(ctx, middleware.SessionID(ctx), req.Label)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("label", req.Label).Msg("failed to add clock")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clock added")

	response.WithJSON(w, http.StatusCreated, handler.board(ctx, session))
}

// RemoveClock removes the clock at a zero based index.
// @Summary Remove a clock
// @Tags Clock
// @Produce json
// @Param index path int true "Clock index"
// @Success 200 {object} BoardResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/clocks/{index} [delete]
func (handler *Handler) RemoveClock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveClock")
	defer scope.End()

	index, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamIndex))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.InvalidIndexParam)

		return
	}

	session, err := handler.session.Remove(ctx, middleware.SessionID(ctx), index)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Int("index", index).Msg("failed to remove clock")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.board(ctx, session))
}

// ResetSession restores the default clock.
// @Summary Reset clocks
// @Tags Clock
// @Produce json
// @Success 200 {object} BoardResponse
// @Router /v1/session/reset [post]
func (handler *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetSession")
	defer scope.End()

	session, err := handler.session.Reset(ctx, middleware.SessionID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.board(ctx, session))
}

// SearchTimezones lists catalog entries matching q.
// @Summary Search timezones
// @Tags Clock
// @Produce json
// @Param q query string false "Fuzzy search over labels and zones"
// @Param limit query int false "Maximum results"
// @Param available query bool false "Exclude clocks already on the board"
// @Success 200 {object} TimezonesResponse
// @Failure 400 {object} response.Error
// @Router /v1/timezones [get]
func (handler *Handler) SearchTimezones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchTimezones")
	defer scope.End()

	query := r.URL.Query()

	limit := constant.DefaultValueLimit
	if raw := query.Get(constant.RequestParamLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.WithError(w, failure.InvalidLimitParam)

			return
		}

		limit = shared.ClampLimit(parsed, constant.DefaultValueLimit, constant.MaxValueLimit)
	}

	var exclude []string

	if available := shared.ConvertStringToBool(query.Get(constant.RequestParamAvailable)); available != nil && *available {
		labels, err := handler.session.List(ctx, middleware.SessionID(ctx))
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to list session clocks")

			response.WithError(w, err)

			return
		}

		exclude = labels
	}

	entries := handler.catalog.Search(query.Get(constant.RequestParamQuery), limit, exclude...)

	response.WithJSON(w, http.StatusOK, TimezonesResponse{
		Timezones: entries,
		Total:     len(entries),
	})
}
