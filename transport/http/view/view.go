// Package view renders the server-side dashboard from embedded templates.
package view

import (
	"clockwise/internal/domains/clock"
	"clockwise/internal/domains/session/model"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
)

const (
	baseTemplate      = "base"
	dashboardTemplate = "dashboard.html"
	errorTemplate     = "error.html"
)

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

var funcMap = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"noticeClass": func(level model.Level) string {
		switch level {
		case model.LevelError:
			return "notice notice-error"
		case model.LevelWarning:
			return "notice notice-warning"
		default:
			return "notice notice-info"
		}
	},
	"gridClass": func(columns int) string {
		return fmt.Sprintf("clock-grid columns-%d", columns)
	},
	"city": func(label string) string {
		if i := strings.LastIndex(label, "/"); i >= 0 {
			return label[i+1:]
		}

		return label
	},
}

// Dashboard is everything the dashboard page shows.
type Dashboard struct {
	AppName     string
	Labels      []string
	Available   []string
	CanAdd      bool
	MaxClocks   int
	NoSelection string
	Notices     []model.Notice
	Board       clock.Board
}

// Failure is the page shown when a dashboard request cannot be served.
type Failure struct {
	AppName string
	Status  int
	Title   string
	Message string
}

type Renderer interface {
	Dashboard(w io.Writer, page Dashboard) error
	Failure(w io.Writer, page Failure) error
}

type rendererImpl struct {
	pages *template.Template
}

// New parses the embedded templates once. It panics on a malformed template.
func New() Renderer {
	return &rendererImpl{
		pages: template.Must(template.New(baseTemplate).Funcs(funcMap).ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *rendererImpl) Dashboard(w io.Writer, page Dashboard) error {
	if err := r.pages.ExecuteTemplate(w, dashboardTemplate, page); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}

	return nil
}

func (r *rendererImpl) Failure(w io.Writer, page Failure) error {
	if err := r.pages.ExecuteTemplate(w, errorTemplate, page); err != nil {
		return fmt.Errorf("failed to render error page: %w", err)
	}

	return nil
}

// Static exposes the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
