// Package pipeline wires the pure window stages to configuration and fans a
// finished report out to the enabled notification sinks.
package pipeline

import (
	"context"

	"github.com/rewired-gh/surfbot/internal/config"
	"github.com/rewired-gh/surfbot/internal/daylight"
	"github.com/rewired-gh/surfbot/internal/logger"
	"github.com/rewired-gh/surfbot/internal/models"
	"github.com/rewired-gh/surfbot/internal/report"
	"github.com/rewired-gh/surfbot/internal/window"
)

// ScoreConfig builds the scorer thresholds from configuration.
func ScoreConfig(cfg *config.Config) window.ScoreConfig {
	return window.ScoreConfig{
		IdealTideMaxHeight: cfg.Window.IdealTideMaxHeight,
		MinPeriodGood:      cfg.Window.MinPeriodGood,
		MinPeriodFair:      cfg.Window.MinPeriodFair,
		Offshore:           cfg.Wind.Offshore,
		Onshore:            cfg.Wind.Onshore,
		CrossShore:         cfg.Wind.CrossShore,
	}
}

// Formatter builds the report formatter, with daylight times when the spot
// has coordinates.
func Formatter(cfg *config.Config) *report.Formatter {
	f := &report.Formatter{
		SpotName: cfg.Forecast.SpotName,
		Days:     cfg.Forecast.Days,
		Interval: cfg.Interval(),
	}
	if cfg.HasCoordinates() {
		f.Daylight = daylight.New(cfg.Spot.Latitude, cfg.Spot.Longitude)
	}
	return f
}

// Build runs Merge, Group, Score and Render over one forecast.
func Build(cfg *config.Config, forecast *models.Forecast) *report.Report {
	records := window.Merge(forecast, cfg.Window.MinRating, cfg.Location())
	windows := window.Group(records, cfg.Interval())
	logger.Debug("Merged %d records into %d windows", len(records), len(windows))

	var tides []models.TideSample
	if forecast != nil {
		tides = forecast.Tides
	}
	conditions := window.NewScorer(ScoreConfig(cfg)).ScoreAll(windows, tides)

	return Formatter(cfg).Render(conditions)
}

// Notifier delivers a notification message to one sink.
type Notifier interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// FailureRecorder counts failed deliveries. It may be nil.
type FailureRecorder interface {
	ObserveNotificationFailure(sink string)
}

// Notify sends the report's worthy blocks to every notifier. Failures are
// logged and counted, never returned. It returns the number of successful
// deliveries.
func Notify(ctx context.Context, r *report.Report, notifiers []Notifier, rec FailureRecorder) int {
	text, ok := r.Notification()
	if !ok {
		logger.Info("No worthy surf blocks, skipping notifications")
		return 0
	}

	sent := 0
	for _, n := range notifiers {
		if err := n.Send(ctx, text); err != nil {
			logger.Error("Failed to send %s notification: %v", n.Name(), err)
			if rec != nil {
				rec.ObserveNotificationFailure(n.Name())
			}
			continue
		}
		logger.Info("Sent %s notification with %d worthy blocks", n.Name(), len(r.Worthy()))
		sent++
	}
	return sent
}
