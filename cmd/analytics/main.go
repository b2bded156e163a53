// bodegapp-analytics corre la analítica de una tienda desde la terminal.
//
// Uso:
//
//	bodegapp-analytics report --tenant <uuid> [--format json|text]
//	bodegapp-analytics evaluate --file snapshot.json [--now 2026-03-15T12:00:00Z] [--encoding windows-1252]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/bodegapp/bodegapp-api/internal/application/usecase"
	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
	"github.com/bodegapp/bodegapp-api/internal/infrastructure/postgres"
	"github.com/bodegapp/bodegapp-api/pkg/config"
	"github.com/bodegapp/bodegapp-api/pkg/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "bodegapp-analytics",
		Usage: "Rotación, rentabilidad, quiebre de stock y tendencias de una tienda",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "Salida: json o text",
				Value: "text",
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "Idioma del resumen en texto (es, en)",
				Value:   "es",
				EnvVars: []string{"BODEGAPP_LANG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "Dashboard de un tenant leyendo el data store",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "tenant",
						Usage:    "UUID del tenant (tienda)",
						Required: true,
						EnvVars:  []string{"BODEGAPP_TENANT_ID"},
					},
				},
				Action: runReport,
			},
			{
				Name:  "evaluate",
				Usage: "Dashboard sobre un snapshot JSON (products + sales), sin base de datos",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "Ruta del snapshot; - para stdin",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "encoding",
						Usage: "Codificación del archivo: utf-8, windows-1252 o latin1",
						Value: "utf-8",
					},
					&cli.TimestampFlag{
						Name:   "now",
						Usage:  "Fecha de referencia (RFC3339); por defecto la hora actual",
						Layout: time.RFC3339,
					},
					&cli.IntFlag{Name: "days-threshold", Usage: "Días para 'slow' (0 = configurado)"},
					&cli.IntFlag{Name: "lookback-days", Usage: "Ventana de velocidad (0 = configurada)"},
					&cli.IntFlag{Name: "lead-time-days", Usage: "Tiempo de reposición (0 = configurado)"},
				},
				Action: runEvaluate,
			},
		},
	}
}

func runReport(c *cli.Context) error {
	tenantID := c.String("tenant")
	if _, err := uuid.Parse(tenantID); err != nil {
		return fmt.Errorf("--tenant debe ser un UUID: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a %s: %w", postgres.Target(cfg.DB), err)
	}
	defer pool.Close()

	uc := usecase.NewAnalyticsUseCase(
		postgres.NewProductRepository(pool),
		postgres.NewSaleRepository(pool),
		nil, nil,
		analytics.NewEngine(cfg.Analytics.Thresholds()),
		cliLogger(cfg),
	)
	out, err := uc.GetDashboard(ctx, tenantID)
	if err != nil {
		return err
	}
	return render(c.App.Writer, c.String("format"), c.String("lang"), out)
}

func runEvaluate(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	req, err := readSnapshot(c.String("file"), c.String("encoding"), c.App.Reader)
	if err != nil {
		return err
	}
	if now := c.Timestamp("now"); now != nil {
		req.Now = now
	}
	req.DaysThreshold = c.Int("days-threshold")
	req.LookbackDays = c.Int("lookback-days")
	req.LeadTimeDays = c.Int("lead-time-days")

	uc := usecase.NewAnalyticsUseCase(nil, nil, nil, nil,
		analytics.NewEngine(cfg.Analytics.Thresholds()), cliLogger(cfg))
	out, err := uc.Evaluate(c.Context, *req)
	if err != nil {
		return err
	}
	return render(c.App.Writer, c.String("format"), c.String("lang"), out)
}

// cliLogger escribe a stderr para no mezclar logs con el reporte.
func cliLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})
}
