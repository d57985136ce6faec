package surfline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rewired-gh/surfbot/internal/models"
)

// ReadDir loads a Forecast from saved API responses named rating.json,
// wave.json, wind.json and tides.json.
func ReadDir(dir string) (*models.Forecast, error) {
	var f models.Forecast
	var err error

	if err = decodeFile(dir, DatasetRating, func(file *os.File) error {
		f.Ratings, err = DecodeRatings(file)
		return err
	}); err != nil {
		return nil, err
	}
	if err = decodeFile(dir, DatasetWave, func(file *os.File) error {
		f.Waves, err = DecodeWaves(file)
		return err
	}); err != nil {
		return nil, err
	}
	if err = decodeFile(dir, DatasetWind, func(file *os.File) error {
		f.Winds, err = DecodeWinds(file)
		return err
	}); err != nil {
		return nil, err
	}
	if err = decodeFile(dir, DatasetTides, func(file *os.File) error {
		f.Tides, err = DecodeTides(file)
		return err
	}); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	return &f, nil
}

func decodeFile(dir string, d Dataset, decode func(*os.File) error) error {
	path := filepath.Join(dir, string(d)+".json")
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", d, err)
	}
	defer file.Close()

	if err := decode(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
