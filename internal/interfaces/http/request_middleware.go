package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

// HTTPObserver recibe una observación por petición respondida.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, d time.Duration)
}

// responseStatus devuelve el status final aunque el handler haya retornado
// un error que aún no pasó por el ErrorHandler de Fiber.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// routePath usa la ruta registrada (/api/analytics/rotation) y no la URL
// con query para acotar la cardinalidad de las métricas.
func routePath(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return r.Path
	}
	return c.Path()
}

// RequestLogger registra método, ruta, status, latencia y tenant de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("tenant_id", GetTenantID(c)).
			Msg("http")
		return err
	}
}

// Metrics mide cada petición con el observer dado.
func Metrics(obs HTTPObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		obs.ObserveHTTP(c.Method(), routePath(c), responseStatus(c, err), time.Since(start))
		return err
	}
}
