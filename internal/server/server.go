package server

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/akave-ai/eventcap/internal/capture"
	"github.com/akave-ai/eventcap/internal/clock"
	"github.com/akave-ai/eventcap/internal/config"
	"github.com/akave-ai/eventcap/internal/handler"
	"github.com/akave-ai/eventcap/internal/logger"
	"github.com/akave-ai/eventcap/internal/response"
	"github.com/akave-ai/eventcap/internal/store"
	"github.com/akave-ai/eventcap/internal/view"
)

// CaptureMethods are the methods accepted on any path.
var CaptureMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
	Store  *store.Store
	logger zerolog.Logger
}

// New builds the Echo server and registers routes. st is the single request
// log shared by every handler.
func New(cfg *config.Config, st *store.Store, src clock.Source, log zerolog.Logger) (*Server, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = response.ErrorHandler(log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	e.Use(
		middleware.Recover(),
		logger.RequestLogger(log),
		middleware.CORSWithConfig(middleware.CORSConfig{
			// A bare OPTIONS request is captured like any other method.
			Skipper: func(c echo.Context) bool {
				r := c.Request()
				return r.Method == http.MethodOptions && r.Header.Get(echo.HeaderAccessControlRequestMethod) == ""
			},
			AllowOrigins:     cfg.Server.CORSAllowedOrigins,
			AllowMethods:     CaptureMethods,
			AllowCredentials: !slices.Contains(cfg.Server.CORSAllowedOrigins, "*"),
		}),
	)

	h := &handler.Handler{
		Store:    st,
		Recorder: capture.NewRecorder(st, src, log),
		Logger:   log,
	}

	route(e, http.MethodGet, "/", h.Index, h.Capture)
	route(e, http.MethodGet, "/events-view", h.EventsView, h.Capture)
	route(e, http.MethodGet, "/events-tracker", h.EventsTracker, h.Capture)
	route(e, http.MethodGet, "/events-feed", h.EventsFeed, h.Capture)
	route(e, http.MethodPost, capture.ClearPath, h.Clear, h.Capture)
	e.Match(CaptureMethods, "/*", h.Capture)

	return &Server{Echo: e, Config: cfg, Store: st, logger: log}, nil
}

// route registers h for method on path and sends the remaining capture
// methods on the same path to fallback.
func route(e *echo.Echo, method, path string, h, fallback echo.HandlerFunc) {
	e.Add(method, path, h)
	others := slices.DeleteFunc(slices.Clone(CaptureMethods), func(m string) bool { return m == method })
	e.Match(others, path, fallback)
}

// Start starts the HTTP server. Blocks until the context is cancelled or the server fails.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	addr := s.Config.Server.Addr()
	s.logger.Info().Str("addr", addr).Msg("listening")
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Int("entries", s.Store.Len()).Msg("shutting down")
	return s.Echo.Shutdown(ctx)
}
