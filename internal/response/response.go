package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Received echoes what the capture endpoint saw.
type Received struct {
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// Ack is the body returned for every captured request.
type Ack struct {
	Status   string   `json:"status"`
	Received Received `json:"received"`
}

// APIError is the standard error response shape.
type APIError struct {
	Error  string `json:"error"`
	Path   string `json:"path"`
	Status int    `json:"status"`
}

// pathFromContext returns the request path from Echo context.
func pathFromContext(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().URL.Path
}

// OK acknowledges a captured request.
func OK(c echo.Context, endpoint, method string) error {
	return c.JSON(http.StatusOK, Ack{
		Status:   "ok",
		Received: Received{Endpoint: endpoint, Method: method},
	})
}

// Error sends a JSON error response using APIError.
func Error(c echo.Context, status int, errDetail string) error {
	return c.JSON(status, APIError{
		Error:  errDetail,
		Path:   pathFromContext(c),
		Status: status,
	})
}

// ErrorHandler maps errors returned by handlers and middleware to APIError
// bodies. It replaces echo's default handler.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		detail := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if he.Message != nil {
				detail = fmt.Sprint(he.Message)
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", pathFromContext(c)).Msg("request failed")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = Error(c, status, detail)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
