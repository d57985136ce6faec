// Package surfline fetches spot forecasts from the Surfline kbyg API.
//
// A forecast is four independent datasets (rating, wave, wind, tides). Each is
// fetched with a bounded retry that only backs off on HTTP 429; any other
// non-success status, transport error or malformed payload fails the dataset
// at once. FetchAll fetches the four concurrently and returns either all of
// them or an error, never a partial Forecast.
package surfline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/rewired-gh/surfbot/internal/logger"
	"github.com/rewired-gh/surfbot/internal/models"
)

// Dataset names one forecast resource; it doubles as the endpoint path
// segment and the payload key under "data".
type Dataset string

const (
	DatasetRating Dataset = "rating"
	DatasetWave   Dataset = "wave"
	DatasetWind   Dataset = "wind"
	DatasetTides  Dataset = "tides"
)

// Fetch outcomes reported to the Recorder.
const (
	OutcomeOK          = "ok"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

// maxBodyBytes caps how much of a response is read into memory.
const maxBodyBytes = 16 << 20

// ErrRateLimited matches a fetch that gave up after repeated HTTP 429s.
var ErrRateLimited = errors.New("rate limited")

// StatusError is returned when the API answers with a non-success status.
type StatusError struct {
	Dataset    Dataset
	StatusCode int
	Body       string // truncated
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Dataset, e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrRateLimited) match a 429 status.
func (e *StatusError) Is(target error) bool {
	return target == ErrRateLimited && e.StatusCode == http.StatusTooManyRequests
}

// Recorder receives per-attempt fetch outcomes. It may be nil.
type Recorder interface {
	ObserveFetch(dataset, outcome string)
}

// ClientConfig holds request and retry parameters
type ClientConfig struct {
	SpotID         string
	Days           int
	IntervalHours  int
	MaxAttempts    int
	RetryDelayBase time.Duration // wait before retry n is RetryDelayBase × n
	UserAgent      string
}

// Client provides access to the forecast API
type Client struct {
	baseURL    string
	httpClient *http.Client
	cfg        ClientConfig
	recorder   Recorder
}

// NewClient creates a new forecast client
func NewClient(baseURL string, timeout time.Duration, cfg ClientConfig, recorder Recorder) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryDelayBase < 0 {
		cfg.RetryDelayBase = 0
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		recorder:   recorder,
	}
}

// FetchAll retrieves the four datasets concurrently. The first failure cancels
// the remaining fetches.
func (c *Client) FetchAll(ctx context.Context) (*models.Forecast, error) {
	var f models.Forecast

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		f.Ratings, err = c.FetchRatings(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		f.Waves, err = c.FetchWaves(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		f.Winds, err = c.FetchWinds(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		f.Tides, err = c.FetchTides(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid forecast: %w", err)
	}
	logger.Debug("Fetched forecast: %d ratings, %d waves, %d winds, %d tides",
		len(f.Ratings), len(f.Waves), len(f.Winds), len(f.Tides))
	return &f, nil
}

// FetchRatings retrieves the rating dataset
func (c *Client) FetchRatings(ctx context.Context) ([]models.Rating, error) {
	body, err := c.fetch(ctx, DatasetRating)
	if err != nil {
		return nil, err
	}
	return DecodeRatings(bytes.NewReader(body))
}

// FetchWaves retrieves the wave dataset
func (c *Client) FetchWaves(ctx context.Context) ([]models.Wave, error) {
	body, err := c.fetch(ctx, DatasetWave)
	if err != nil {
		return nil, err
	}
	return DecodeWaves(bytes.NewReader(body))
}

// FetchWinds retrieves the wind dataset
func (c *Client) FetchWinds(ctx context.Context) ([]models.Wind, error) {
	body, err := c.fetch(ctx, DatasetWind)
	if err != nil {
		return nil, err
	}
	return DecodeWinds(bytes.NewReader(body))
}

// FetchTides retrieves the tide dataset
func (c *Client) FetchTides(ctx context.Context) ([]models.TideSample, error) {
	body, err := c.fetch(ctx, DatasetTides)
	if err != nil {
		return nil, err
	}
	return DecodeTides(bytes.NewReader(body))
}

// endpoint builds the request URL for a dataset.
func (c *Client) endpoint(d Dataset) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(string(d))

	params := url.Values{}
	params.Set("spotId", c.cfg.SpotID)
	params.Set("days", strconv.Itoa(c.cfg.Days))
	params.Set("intervalHours", strconv.Itoa(c.cfg.IntervalHours))
	params.Set("sds", "true")
	params.Set("resources", "all")
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// fetch performs the GET with retry on rate limiting and returns the body.
func (c *Client) fetch(ctx context.Context, d Dataset) ([]byte, error) {
	requestURL, err := c.endpoint(d)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		body, status, err := c.doRequest(ctx, requestURL)
		if err != nil {
			c.observe(d, OutcomeFailed)
			return nil, fmt.Errorf("failed to fetch %s: %w", d, err)
		}

		switch status {
		case http.StatusOK:
			c.observe(d, OutcomeOK)
			return body, nil

		case http.StatusTooManyRequests:
			c.observe(d, OutcomeRateLimited)
			lastErr = &StatusError{Dataset: d, StatusCode: status, Body: truncate(body)}
			if attempt < c.cfg.MaxAttempts {
				wait := c.cfg.RetryDelayBase * time.Duration(attempt)
				logger.Warn("Rate limited on %s. Retrying in %v (attempt %d/%d)", d, wait, attempt, c.cfg.MaxAttempts)
				if err := sleep(ctx, wait); err != nil {
					return nil, fmt.Errorf("%s: retry aborted: %w", d, err)
				}
			}

		default:
			c.observe(d, OutcomeFailed)
			return nil, &StatusError{Dataset: d, StatusCode: status, Body: truncate(body)}
		}
	}

	return nil, fmt.Errorf("%s: gave up after %d attempts: %w", d, c.cfg.MaxAttempts, lastErr)
}

// doRequest performs a single GET and reads the (capped) body.
func (c *Client) doRequest(ctx context.Context, requestURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) observe(d Dataset, outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveFetch(string(d), outcome)
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(body []byte) string {
	const limit = 300
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
