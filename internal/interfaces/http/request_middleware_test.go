package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/bodegapp/bodegapp-api/internal/interfaces/http"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

type observation struct {
	method, path string
	status       int
}

type recorder struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recorder) ObserveHTTP(method, path string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{method, path, status})
}

func TestMetrics_UsaRutaRegistradaYStatus(t *testing.T) {
	rec := &recorder{}
	app := fiber.New()
	app.Use(apphttp.Metrics(rec))
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusAccepted) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "tetera") })

	for _, url := range []string{"/items/42?x=1", "/boom"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, rec.obs, 2)
	assert.Equal(t, observation{"GET", "/items/:id", fiber.StatusAccepted}, rec.obs[0])
	assert.Equal(t, observation{"GET", "/boom", fiber.StatusTeapot}, rec.obs[1])
}

func TestRequestLogger_RegistraStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	out := buf.String()
	assert.Contains(t, out, `"path":"/ok"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"status":400`)
}
