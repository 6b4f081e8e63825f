// Package view renders the HTML pages served next to the capture endpoint.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/akave-ai/eventcap/internal/model"
)

// Template names.
const (
	IndexPage   = "index.html"
	EventsPage  = "events.html"
	TrackerPage = "events_tracker.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Item is a log entry prepared for display.
type Item struct {
	model.LogEntry
	Pretty string
}

// Index is the data for IndexPage.
type Index struct {
	Count int
	Items []Item
}

// NewIndex formats entries, which are expected newest first.
func NewIndex(entries []model.LogEntry) Index {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{LogEntry: e, Pretty: PrettyJSON(e.Body)})
	}
	return Index{Count: len(items), Items: items}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
