package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"account-service/app/utils/security"
)

// maxInspectedBodyBytes caps how much of a request body the IDS reads.
// Auth and profile payloads are small; anything larger is inspected
// only up to this limit.
const maxInspectedBodyBytes = 8 * 1024

// IntrusionDetection screens requests through the IDS before they reach
// the handlers. IPs that have escalated to a high threat level are
// refused outright.
func IntrusionDetection(ids *security.IntrusionDetectionSystem, logger *slog.Logger) echo.MiddlewareFunc {
	log := logger.With("component", "ids_middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if ids.IsBlocked(ip) {
				log.Warn("Blocked request from flagged IP", "ip", ip, "path", c.Path())
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Request refused",
				})
			}

			body := peekBody(c)
			if !ids.AnalyzeRequest(ip, c.Request().UserAgent(), c.Request().URL.Path, body) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Request refused",
				})
			}

			return next(c)
		}
	}
}

// peekBody reads a bounded prefix of the request body for inspection and
// restores it so binding still works downstream.
func peekBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}

	prefix, err := io.ReadAll(io.LimitReader(req.Body, maxInspectedBodyBytes))
	if err != nil {
		return ""
	}

	rest := req.Body
	req.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(prefix), rest), rest}

	return string(prefix)
}
