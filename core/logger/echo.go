package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EchoMiddleware logs each request with a request-scoped logger and stores that
// logger in the request context. It expects echo's RequestID middleware to run first.
func EchoMiddleware(l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			ctx, reqLogger := WithRequestID(req.Context(), l, requestID)
			reqLogger = reqLogger.With(
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(WithContext(ctx, reqLogger)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("client_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			switch {
			case status >= 500:
				reqLogger.Error("HTTP Request", fields...)
			case status >= 400:
				reqLogger.Warn("HTTP Request", fields...)
			default:
				reqLogger.Info("HTTP Request", fields...)
			}
			return nil
		}
	}
}
