package middleware

import (
	"time"

	"strategy-scanner/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewRequestLogger logs one line per request and stores a request scoped
// logger in the request context for handlers further down.
func NewRequestLogger(log *logger.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqLog := log.With(
				logger.StringField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			if _, ok := skip[req.URL.Path]; ok {
				return nil
			}

			reqLog.Info("http request",
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
				logger.IntField("status", c.Response().Status),
				logger.DurationField("latency", time.Since(start)),
				logger.StringField("remote_ip", c.RealIP()),
			)
			return nil
		}
	}
}
