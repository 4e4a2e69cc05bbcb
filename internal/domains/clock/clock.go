// Package clock turns a list of selected labels into renderable clock faces.
package clock

import (
	"clockwise/infras/otel"
	"clockwise/internal/domains/catalog"
	"clockwise/internal/domains/session/model"
	"clockwise/shared/constant"
	"clockwise/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	Columns = 3
	Failed  = "Error"
)

// View is one clock face. Time and Date hold Failed when the zone could not be resolved.
type View struct {
	Label  string `json:"label"`
	Zone   string `json:"zone,omitempty"`
	Time   string `json:"time"`
	Date   string `json:"date"`
	Offset string `json:"offset,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (v View) Failed() bool {
	return v.Error != ""
}

// Board is the full grid for one render.
type Board struct {
	Clocks     []View         `json:"clocks"`
	Rows       [][]View       `json:"-"`
	Columns    int            `json:"columns"`
	Notices    []model.Notice `json:"notices,omitempty"`
	RenderedAt time.Time      `json:"rendered_at"`
}

func (b Board) Empty() bool {
	return len(b.Clocks) == 0
}

type Renderer interface {
	Render(ctx context.Context, labels []string) Board
}

type rendererImpl struct {
	catalog catalog.Catalog
	otel    otel.Otel
	now     func() time.Time
}

func New(catalog catalog.Catalog, otel otel.Otel) Renderer {
	return NewWithClock(catalog, otel, time.Now)
}

// NewWithClock uses now as the time source for every render.
func NewWithClock(catalog catalog.Catalog, otel otel.Otel, now func() time.Time) Renderer {
	return &rendererImpl{
		catalog: catalog,
		otel:    otel,
		now:     now,
	}
}

// Render formats every label at a single instant. A failing clock never affects the others.
func (r *rendererImpl) Render(ctx context.Context, labels []string) Board {
	_, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Render")
	defer scope.End()

	now := r.now()

	scope.SetAttributes(map[string]any{
		"clock.count":       len(labels),
		"clock.labels":      labels,
		"board.rendered_at": now,
	})
	board := Board{
		Clocks:     make([]View, 0, len(labels)),
		Columns:    min(len(labels), Columns),
		RenderedAt: now,
	}

	for _, label := range labels {
		view, err := r.view(label, now)
		if err != nil {
			scope.AddEvent("clock.failed", map[string]any{
				"clock.label": label,
				"error":       err,
			})
			log.Warn().Err(err).Str("label", label).Msg("failed to render clock")

			board.Notices = append(board.Notices, model.Notice{
				Level:   model.LevelError,
				Message: fmt.Sprintf("Error getting time for %s: %s", label, err),
			})
		}

		board.Clocks = append(board.Clocks, view)
	}

	board.Rows = Layout(board.Clocks, Columns)

	return board
}

func (r *rendererImpl) view(label string, now time.Time) (View, error) {
	view := View{Label: label, Time: Failed, Date: Failed}

	zone, err := r.catalog.Lookup(label)
	if err != nil {
		view.Error = err.Error()

		return view, err
	}

	view.Zone = zone

	local, err := timezone.In(now, zone)
	if err != nil {
		view.Error = err.Error()

		return view, err
	}

	view.Time = timezone.FormatTime(local)
	view.Date = timezone.FormatDate(local)
	view.Offset = timezone.FormatOffset(local)

	return view, nil
}

// Layout splits views into rows of at most columns entries.
func Layout(views []View, columns int) [][]View {
	if columns <= 0 || len(views) == 0 {
		return nil
	}

	rows := make([][]View, 0, (len(views)+columns-1)/columns)

	for start := 0; start < len(views); start += columns {
		end := min(start+columns, len(views))
		rows = append(rows, views[start:end])
	}

	return rows
}
