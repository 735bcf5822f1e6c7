package preview

import (
	"embed"
	"encoding/json"
	"net/http"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/socialwidget/internal/generator"
	"github.com/alexisbeaulieu97/socialwidget/internal/logger"
	"github.com/alexisbeaulieu97/socialwidget/internal/validation"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
)

//go:embed templates/page.html.tmpl
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/page.html.tmpl"))

type pageData struct {
	Title  string
	Report validation.ReportJSON
	Bundle string
}

type handlers struct {
	source Source
	log    *logger.Logger
}

func newHandlers(src Source, log *logger.Logger) *handlers {
	return &handlers{source: src, log: log}
}

func (h *handlers) Page(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.snapshot(w)
	if !ok {
		return
	}

	var b strings.Builder
	data := pageData{
		Title:  cfg.HeaderText,
		Report: validation.ValidateConfig(cfg).JSON(),
		Bundle: generator.Generate(cfg),
	}
	if err := pageTemplate.Execute(&b, data); err != nil {
		h.log.Error(err, "render preview page")
		http.Error(w, "failed to render preview page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(b.String()))
}

func (h *handlers) Snippet(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.snapshot(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(generator.Generate(cfg)))
}

func (h *handlers) Validation(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.snapshot(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(validation.ValidateConfig(cfg).JSON()); err != nil {
		h.log.Error(err, "encode validation report")
	}
}

func (h *handlers) snapshot(w http.ResponseWriter) (widget.Config, bool) {
	cfg, err := h.source()
	if err != nil {
		h.log.Error(err, "load widget configuration")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return widget.Config{}, false
	}
	return cfg, true
}
