package handlers

import (
	"bytes"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SumYin/formula-booklet-website/internal/catalog"
	"github.com/SumYin/formula-booklet-website/internal/config"
	"github.com/SumYin/formula-booklet-website/internal/effects"
	"github.com/SumYin/formula-booklet-website/internal/web"
)

type Handler struct {
	cfg     config.Config
	dir     string
	builder *catalog.Builder
	home    *template.Template
	contact *template.Template
}

// New creates the site handler serving booklets from dir. The mapper decides
// which presentation effect each booklet gets.
func New(cfg config.Config, dir string, mapper *effects.Mapper) *Handler {
	return &Handler{
		cfg:     cfg,
		dir:     dir,
		builder: catalog.New(dir, mapper),
		home:    template.Must(template.ParseFS(web.Templates, "templates/layout.html", "templates/index.html")),
		contact: template.Must(template.ParseFS(web.Templates, "templates/layout.html", "templates/contact.html")),
	}
}

// Routes assembles the route table for the site.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", h.HandleHome)
	r.Get("/contact", h.HandleContact)
	r.Get("/booklets/*", h.HandleBooklet)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})

	return r
}

// render executes a page template set into a buffer first, so a template
// failure can still produce a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, tpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("Unable to render page", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Unable to write page", "err", err)
	}
}
