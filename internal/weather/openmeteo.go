// Package weather fetches current conditions from the Open-Meteo API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches current weather for a coordinate pair from Open-Meteo.
// The API is free and keyless.
type Client struct {
	client  HTTPClient   // HTTP client for making requests
	baseURL string       // Base URL for the Open-Meteo forecast API
	log     *slog.Logger // Logger for logging operations
}

// openMeteoResponse represents the relevant part of the Open-Meteo JSON response.
type openMeteoResponse struct {
	Current struct {
		Temperature              float64 `json:"temperature_2m"`
		PrecipitationProbability float64 `json:"precipitation_probability"`
	} `json:"current"`
}

// NewClient creates a new Open-Meteo weather client with a default HTTP client.
func NewClient(log *slog.Logger) *Client {
	const timeout = 10
	return &Client{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: "https://api.open-meteo.com/v1/forecast",
		log:     log,
	}
}

// NewClientWithHTTP creates a weather client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, log *slog.Logger) *Client {
	return &Client{
		client:  client,
		baseURL: "https://api.open-meteo.com/v1/forecast",
		log:     log,
	}
}

// Current returns the present-hour temperature and precipitation probability
// for the given coordinates. Values are passed through unchanged except the
// precipitation probability, which is rounded to the nearest integer percent.
func (c *Client) Current(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	c.log.DebugContext(ctx, "Fetching current weather", "lat", coords.Latitude, "lon", coords.Longitude)

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("current", "temperature_2m,precipitation_probability")
	query.Set("timezone", "auto")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Open-Meteo API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("open-meteo API returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload openMeteoResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode open-meteo response: %w", err)
	}

	return &models.WeatherReport{
		TemperatureCelsius:       payload.Current.Temperature,
		PrecipitationProbability: int(math.Round(payload.Current.PrecipitationProbability)),
	}, nil
}
