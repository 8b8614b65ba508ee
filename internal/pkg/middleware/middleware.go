package middleware

import (
	"time"

	"github.com/davetran/wayfare/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestID propagates an incoming X-Request-ID header or generates one
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set("X-Request-ID", requestID)
			c.Set("request_id", requestID)

			return next(c)
		}
	}
}

// RequestLogger logs every request with its outcome and latency
func RequestLogger(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			requestID, _ := c.Get("request_id").(string)
			zapLogger.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return err
		}
	}
}
