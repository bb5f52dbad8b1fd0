package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"bundle-inventory.GO/core/logger"
)

// NewServer builds the echo instance with middleware, the /api modules and
// the root routes registered so far.
func NewServer(d *Deps) *echo.Echo {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler(d.Log)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(logger.EchoMiddleware(d.Log))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())

	ApplyModules(e.Group("/api"), d)
	ApplyRoutes(e, d)
	return e
}
