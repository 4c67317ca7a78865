package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/kojofoli/temperature-toolkit/internal/api/http"
	"github.com/kojofoli/temperature-toolkit/internal/config"
	"github.com/kojofoli/temperature-toolkit/internal/importer"
	"github.com/kojofoli/temperature-toolkit/internal/logging"
	"github.com/kojofoli/temperature-toolkit/internal/scheduler"
	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.AppEnv, cfg.LogLevel)

	// In-memory record store, optionally pre-loaded with the demo data set.
	memStore := store.NewMemoryStore()
	if cfg.SeedSample {
		seedSampleRecords(memStore)
		log.Info("seeded sample records", "count", memStore.Len())
	}

	// Importer with resilience (backoff + circuit breaker), when enabled.
	var im *importer.Importer
	if cfg.ImportEnabled {
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		im = importer.New(memStore, httpClient, cfg.ImportLat, cfg.ImportLon, cfg.ImportDateFormat)
	}

	// Scheduler that periodically logs a digest of the stored records.
	sched := scheduler.New(memStore, im, log, cfg.ReportInterval, cfg.ExtremeThreshold)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "temperature-toolkit",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "temperature-toolkit",
		})
	})

	httpapi.RegisterRoutes(app, memStore, im, httpapi.Defaults{
		ExtremeThreshold: cfg.ExtremeThreshold,
		SpikeThreshold:   cfg.SpikeThreshold,
	})

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}

// seedSampleRecords loads the demo data set: a week of celsius readings plus
// one kelvin day, matching the toolkit's original walkthrough.
func seedSampleRecords(st *store.MemoryStore) {
	samples := []struct {
		date     string
		readings []float64
		scale    temperature.Scale
	}{
		{"2025-04-27", []float64{14.2, 15.0, 13.8, 14.5, 15.1, 17.0}, temperature.ScaleCelsius},
		{"2025-04-28", []float64{17.1, 18.5, 16.4, 17.0, 18.0, 16.8}, temperature.ScaleCelsius},
		{"2025-04-29", []float64{11.0, 9.5, 12.2, 10.0, 11.3, 10.7}, temperature.ScaleCelsius},
		{"2025-04-30", []float64{20.0, 21.5, 19.8, 20.2, 21.0, 15.5}, temperature.ScaleCelsius},
		{"2025-05-01", []float64{22.0, 23.5, 21.8, 22.2, 23.0}, temperature.ScaleCelsius},
		{"2025-05-02", []float64{25.0, 26.5, 24.8, 25.2, 26.0}, temperature.ScaleCelsius},
		{"2025-05-03", []float64{20.0, 27.0, 28.5, 26.8, 27.2, 28.0}, temperature.ScaleCelsius},
		{"2025-05-05", []float64{295.52, 296.94, 298.8, 303.1, 302.27, 302.64}, temperature.ScaleKelvin},
	}

	for _, s := range samples {
		st.Put(&temperature.Record{
			Date:     s.date,
			Readings: s.readings,
			Scale:    s.scale,
		})
	}
}
