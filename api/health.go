package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func init() {
	RegisterRoute(registerHealthRoutes)
}

func registerHealthRoutes(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		status := http.StatusOK
		db := "ok"
		if err := pingDB(c.Request().Context(), d); err != nil {
			status = http.StatusServiceUnavailable
			db = err.Error()
		}
		return c.JSON(status, echo.Map{"status": http.StatusText(status), "database": db})
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))
	}
}

func pingDB(ctx context.Context, d *Deps) error {
	if d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
