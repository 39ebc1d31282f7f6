// Package ops exposes the watch-mode operational endpoints: a liveness probe
// and the Prometheus metrics the remote client records.
package ops

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 3 * time.Second

// NewRouter builds the Echo instance with the operational routes registered.
func NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())

	e.GET("/health", liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// liveness confirms the process is alive; there are no readiness
// dependencies here; the remote service is polled by watch itself.
func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Serve runs the listener until ctx is cancelled, then shuts down cleanly.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	e := NewRouter()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("ops listener started")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
