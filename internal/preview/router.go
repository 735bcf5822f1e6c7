// Package preview serves a local demo page with the generated widget embedded
// so the bundle can be tried in a real browser.
package preview

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/socialwidget/internal/config"
	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

// Source yields the configuration to render. It is called once per request,
// and each request renders from the snapshot it returns.
type Source func() (widget.Config, error)

// StaticSource always serves cfg.
func StaticSource(cfg widget.Config) Source {
	snapshot := cfg.Clone()
	return func() (widget.Config, error) {
		return snapshot, nil
	}
}

// FileSource re-reads the widget document at path on every request, so edits
// show up on reload.
func FileSource(path string) Source {
	return func() (widget.Config, error) {
		return config.Load(path)
	}
}

// NewRouter wires the preview routes.
func NewRouter(src Source, log *logger.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(NewLoggerMiddleware(log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	h := newHandlers(src, log)
	r.Get("/", h.Page)
	r.Get("/snippet", h.Snippet)
	r.Get("/validation", h.Validation)
	return r
}
