package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rewired-gh/surfbot/internal/config"
	"github.com/rewired-gh/surfbot/internal/logger"
	"github.com/rewired-gh/surfbot/internal/metrics"
	"github.com/rewired-gh/surfbot/internal/pipeline"
	"github.com/rewired-gh/surfbot/internal/surfline"
)

// configEnv names the environment variable holding the config file path.
const configEnv = "SURFBOT_CONFIG"

func main() {
	os.Exit(run())
}

func run() int {
	startTime := time.Now()
	configPath := os.Getenv(configEnv)

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.SetRunID(uuid.NewString())
	if configPath != "" {
		logger.Info("Configuration loaded from %s", configPath)
	} else {
		logger.Info("Configuration loaded from defaults and environment")
	}

	m := metrics.New()
	defer pushMetrics(m, cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := surfline.NewClient(
		cfg.Forecast.APIBaseURL,
		cfg.Forecast.Timeout,
		surfline.ClientConfig{
			SpotID:         cfg.Forecast.SpotID,
			Days:           cfg.Forecast.Days,
			IntervalHours:  cfg.Forecast.IntervalHours,
			MaxAttempts:    cfg.Forecast.MaxAttempts,
			RetryDelayBase: cfg.Forecast.RetryDelayBase,
			UserAgent:      cfg.Forecast.UserAgent,
		},
		m,
	)

	logger.Info("Fetching %d-day forecast for %s (spot %s)", cfg.Forecast.Days, cfg.Forecast.SpotName, cfg.Forecast.SpotID)
	forecast, err := client.FetchAll(ctx)
	if err != nil {
		logger.Error("Failed to fetch forecast: %v", err)
		m.ObserveRun(time.Since(startTime), false, time.Now())
		return 1
	}

	r := pipeline.Build(cfg, forecast)
	fmt.Print(r.String())

	worthy := len(r.Worthy())
	m.ObserveReport(len(r.Blocks), worthy)
	logger.Info("Found %d windows, %d worthy", len(r.Blocks), worthy)

	if worthy > 0 {
		notifiers := pipeline.Notifiers(cfg, m)
		if len(notifiers) == 0 {
			logger.Debug("Worthy windows found but no notification sink is enabled")
		}
		pipeline.Notify(ctx, r, notifiers, m)
	}

	m.ObserveRun(time.Since(startTime), true, time.Now())
	logger.Info("Run completed in %v", time.Since(startTime))
	return 0
}

func pushMetrics(m *metrics.Metrics, cfg *config.Config) {
	if cfg.Metrics.PushgatewayURL == "" {
		return
	}
	if err := m.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job, cfg.Forecast.SpotID); err != nil {
		logger.Warn("Failed to push metrics: %v", err)
		return
	}
	logger.Debug("Pushed metrics to %s", cfg.Metrics.PushgatewayURL)
}
