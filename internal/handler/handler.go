package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/akave-ai/eventcap/internal/capture"
	"github.com/akave-ai/eventcap/internal/response"
	"github.com/akave-ai/eventcap/internal/store"
	"github.com/akave-ai/eventcap/internal/view"
)

// Handler serves the viewer pages, the events feed and the capture endpoint.
// It only depends on echo through echo.Context.
type Handler struct {
	Store    *store.Store
	Recorder *capture.Recorder
	Logger   zerolog.Logger
}

// feed is the body of GET /events-feed.
type feed struct {
	Events []store.Event `json:"events"`
}

// Index renders captured requests newest first (GET /).
func (h *Handler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, view.IndexPage, view.NewIndex(h.Store.Snapshot()))
}

// EventsView serves the live events page (GET /events-view).
func (h *Handler) EventsView(c echo.Context) error {
	return c.Render(http.StatusOK, view.EventsPage, nil)
}

// EventsTracker serves the three-pane tracker page (GET /events-tracker).
func (h *Handler) EventsTracker(c echo.Context) error {
	return c.Render(http.StatusOK, view.TrackerPage, nil)
}

// EventsFeed returns every event found in captured bodies (GET /events-feed).
func (h *Handler) EventsFeed(c echo.Context) error {
	return c.JSON(http.StatusOK, feed{Events: h.Store.Events()})
}

// Clear empties the log and sends the browser back to the viewer (POST /clear).
func (h *Handler) Clear(c echo.Context) error {
	n := h.Store.Len()
	h.Store.Clear()
	h.Logger.Info().Int("dropped", n).Msg("request log cleared")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Capture records any other request and acknowledges it.
func (h *Handler) Capture(c echo.Context) error {
	req := c.Request()
	receipt := h.Recorder.Capture(req.Method, req.URL.Path, req.Body)
	return response.OK(c, receipt.Endpoint, receipt.Method)
}
