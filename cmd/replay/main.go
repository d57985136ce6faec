// Command replay runs the report pipeline against saved forecast payloads and
// prints the report. It never sends notifications.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rewired-gh/surfbot/internal/config"
	"github.com/rewired-gh/surfbot/internal/logger"
	"github.com/rewired-gh/surfbot/internal/pipeline"
	"github.com/rewired-gh/surfbot/internal/surfline"
)

var (
	dir        = flag.String("dir", "testdata", "Directory holding rating.json, wave.json, wind.json and tides.json")
	configPath = flag.String("config", os.Getenv("SURFBOT_CONFIG"), "Path to configuration file")
	notify     = flag.Bool("show-notification", false, "Also print the notification message")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Forecast.SpotName == "" {
		cfg.Forecast.SpotName = "replay"
	}
	if cfg.Forecast.SpotID == "" {
		cfg.Forecast.SpotID = "replay"
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	forecast, err := surfline.ReadDir(*dir)
	if err != nil {
		logger.Fatal("Failed to read forecast from %s: %v", *dir, err)
	}
	logger.Info("Loaded %d ratings, %d waves, %d winds, %d tides from %s",
		len(forecast.Ratings), len(forecast.Waves), len(forecast.Winds), len(forecast.Tides), *dir)

	r := pipeline.Build(cfg, forecast)
	fmt.Print(r.String())

	if *notify {
		if text, ok := r.Notification(); ok {
			fmt.Printf("\n--- notification ---\n%s", text)
		} else {
			fmt.Println("\n--- no notification ---")
		}
	}
}
