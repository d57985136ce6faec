// Package config loads surfbot settings from an optional YAML file and
// SURFBOT_* environment variables. Nothing site-specific is hard-coded in the
// pipeline; every threshold flows from here.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata" // spot timezones must resolve on minimal hosts

	"github.com/spf13/viper"

	"github.com/rewired-gh/surfbot/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Forecast ForecastConfig `mapstructure:"forecast"`
	Spot     SpotConfig     `mapstructure:"spot"`
	Window   WindowConfig   `mapstructure:"window"`
	Wind     WindConfig     `mapstructure:"wind"`
	Slack    SlackConfig    `mapstructure:"slack"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ForecastConfig holds forecast API configuration
type ForecastConfig struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	SpotID         string        `mapstructure:"spot_id"`
	SpotName       string        `mapstructure:"spot_name"`
	Timezone       string        `mapstructure:"timezone"`
	Days           int           `mapstructure:"days"`
	IntervalHours  int           `mapstructure:"interval_hours"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
	RetryDelayBase time.Duration `mapstructure:"retry_delay_base"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// SpotConfig holds the spot's coordinates. Both zero disables daylight times.
type SpotConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// WindowConfig holds the window quality thresholds
type WindowConfig struct {
	MinRating          float64 `mapstructure:"min_rating"`
	IdealTideMaxHeight float64 `mapstructure:"ideal_tide_max_height"` // feet
	MinPeriodGood      float64 `mapstructure:"min_period_good"`       // seconds, FAIR_TO_GOOD and up
	MinPeriodFair      float64 `mapstructure:"min_period_fair"`       // seconds, FAIR
}

// WindConfig holds the site-specific wind bands, as source directions.
type WindConfig struct {
	Offshore   models.DirectionRange   `mapstructure:"offshore"`
	Onshore    models.DirectionRange   `mapstructure:"onshore"`
	CrossShore []models.DirectionRange `mapstructure:"cross_shore"`
}

// SlackConfig holds Slack webhook configuration
type SlackConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	WebhookURL string        `mapstructure:"webhook_url"`
	Channel    string        `mapstructure:"channel"`
	Username   string        `mapstructure:"username"`
	IconEmoji  string        `mapstructure:"icon_emoji"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// TelegramConfig holds Telegram notification configuration
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	Enabled  bool   `mapstructure:"enabled"`
}

// MetricsConfig holds Prometheus Pushgateway configuration. An empty URL
// disables pushing.
type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
	Job            string `mapstructure:"job"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. An empty path
// means defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SURFBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options.
// Keys without a meaningful default are still registered so that
// AutomaticEnv picks them up during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Forecast defaults
	v.SetDefault("forecast.api_base_url", "https://services.surfline.com/kbyg/spots/forecasts")
	v.SetDefault("forecast.spot_id", "")
	v.SetDefault("forecast.spot_name", "")
	v.SetDefault("forecast.timezone", "UTC")
	v.SetDefault("forecast.days", 6)
	v.SetDefault("forecast.interval_hours", 1)
	v.SetDefault("forecast.timeout", "30s")
	v.SetDefault("forecast.max_attempts", 3)
	v.SetDefault("forecast.retry_delay_base", "10s")
	v.SetDefault("forecast.user_agent", "surfbot/1.0")

	// Spot defaults
	v.SetDefault("spot.latitude", 0.0)
	v.SetDefault("spot.longitude", 0.0)

	// Window defaults
	v.SetDefault("window.min_rating", 2.5)
	v.SetDefault("window.ideal_tide_max_height", 0.5)
	v.SetDefault("window.min_period_good", 7.0)
	v.SetDefault("window.min_period_fair", 11.0)

	// Wind defaults
	v.SetDefault("wind.offshore", map[string]interface{}{"from": 300.0, "to": 60.0})
	v.SetDefault("wind.onshore", map[string]interface{}{"from": 120.0, "to": 240.0})
	v.SetDefault("wind.cross_shore", []map[string]interface{}{
		{"from": 75.0, "to": 105.0},
		{"from": 255.0, "to": 285.0},
	})

	// Slack defaults
	v.SetDefault("slack.enabled", false)
	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("slack.channel", "")
	v.SetDefault("slack.username", "surfbot")
	v.SetDefault("slack.icon_emoji", ":surfer:")
	v.SetDefault("slack.timeout", "15s")

	// Telegram defaults
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", "")

	// Metrics defaults
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("metrics.job", "surfbot")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Forecast config
	if c.Forecast.APIBaseURL == "" {
		return fmt.Errorf("forecast.api_base_url is required")
	}
	if _, err := url.ParseRequestURI(c.Forecast.APIBaseURL); err != nil {
		return fmt.Errorf("forecast.api_base_url is invalid: %w", err)
	}
	if c.Forecast.SpotID == "" {
		return fmt.Errorf("forecast.spot_id is required")
	}
	if c.Forecast.SpotName == "" {
		return fmt.Errorf("forecast.spot_name is required")
	}
	if _, err := time.LoadLocation(c.Forecast.Timezone); err != nil {
		return fmt.Errorf("forecast.timezone %q is invalid: %w", c.Forecast.Timezone, err)
	}
	if c.Forecast.Days < 1 || c.Forecast.Days > 17 {
		return fmt.Errorf("forecast.days must be between 1 and 17")
	}
	if c.Forecast.IntervalHours < 1 || c.Forecast.IntervalHours > 24 {
		return fmt.Errorf("forecast.interval_hours must be between 1 and 24")
	}
	if c.Forecast.Timeout <= 0 {
		return fmt.Errorf("forecast.timeout must be positive")
	}
	if c.Forecast.MaxAttempts < 1 {
		return fmt.Errorf("forecast.max_attempts must be at least 1")
	}
	if c.Forecast.RetryDelayBase < 0 {
		return fmt.Errorf("forecast.retry_delay_base must not be negative")
	}

	// Validate Spot config
	if c.Spot.Latitude < -90 || c.Spot.Latitude > 90 {
		return fmt.Errorf("spot.latitude must be between -90 and 90")
	}
	if c.Spot.Longitude < -180 || c.Spot.Longitude > 180 {
		return fmt.Errorf("spot.longitude must be between -180 and 180")
	}

	// Validate Window config
	if c.Window.MinRating < 0 {
		return fmt.Errorf("window.min_rating must not be negative")
	}
	if c.Window.MinPeriodGood <= 0 || c.Window.MinPeriodFair <= 0 {
		return fmt.Errorf("window.min_period_good and window.min_period_fair must be positive")
	}

	// Validate Wind config
	if err := c.Wind.Offshore.Validate(); err != nil {
		return fmt.Errorf("wind.offshore: %w", err)
	}
	if err := c.Wind.Onshore.Validate(); err != nil {
		return fmt.Errorf("wind.onshore: %w", err)
	}
	for i, r := range c.Wind.CrossShore {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("wind.cross_shore[%d]: %w", i, err)
		}
	}

	// Validate Slack config
	if c.Slack.Enabled {
		if c.Slack.WebhookURL == "" {
			return fmt.Errorf("slack.webhook_url is required when slack is enabled")
		}
		if c.Slack.Timeout <= 0 {
			return fmt.Errorf("slack.timeout must be positive")
		}
	}

	// Validate Telegram config
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}

	// Validate Metrics config
	if c.Metrics.PushgatewayURL != "" && c.Metrics.Job == "" {
		return fmt.Errorf("metrics.job is required when metrics.pushgateway_url is set")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// Location returns the spot's timezone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Forecast.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Interval returns the sampling interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Forecast.IntervalHours) * time.Hour
}

// HasCoordinates reports whether the spot's position is configured.
func (c *Config) HasCoordinates() bool {
	return c.Spot.Latitude != 0 || c.Spot.Longitude != 0
}
