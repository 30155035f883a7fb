// Package places finds tourist attractions near a coordinate pair using the
// Overpass API over OpenStreetMap data.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Overpass API for tourism-tagged entities.
type Client struct {
	client       HTTPClient   // HTTP client for making requests
	baseURL      string       // Base URL for the Overpass interpreter
	log          *slog.Logger // Logger for logging operations
	radiusMeters int          // Search radius around the coordinate
	limit        int          // Maximum number of attractions returned
}

// overpassResponse represents the relevant part of the Overpass JSON response.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewClient creates a new Overpass places client with a default HTTP client.
func NewClient(radiusMeters, limit int, log *slog.Logger) *Client {
	const timeout = 15
	return &Client{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL:      "https://overpass-api.de/api/interpreter",
		log:          log,
		radiusMeters: radiusMeters,
		limit:        limit,
	}
}

// NewClientWithHTTP creates a places client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, radiusMeters, limit int, log *slog.Logger) *Client {
	return &Client{
		client:       client,
		baseURL:      "https://overpass-api.de/api/interpreter",
		log:          log,
		radiusMeters: radiusMeters,
		limit:        limit,
	}
}

// buildQuery assembles the Overpass QL selecting tourism entities, selected
// leisure kinds and historic sites within the configured radius.
func (c *Client) buildQuery(coords models.Coordinates) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", c.radiusMeters, coords.Latitude, coords.Longitude)

	var b strings.Builder
	b.WriteString("[out:json][timeout:15];\n(\n")
	for _, selector := range []string{
		`node["tourism"]`,
		`way["tourism"]`,
		`relation["tourism"]`,
		`node["leisure"~"^(park|theme_park)$"]`,
		`way["leisure"~"^(park|theme_park)$"]`,
		`node["historic"]`,
		`way["historic"]`,
	} {
		b.WriteString("  " + selector + around + ";\n")
	}
	b.WriteString(");\nout center;")
	return b.String()
}

// Nearby returns up to the configured limit of named attractions around the
// given coordinates. Upstream discovery order is preserved; entities without
// a usable name are skipped, and duplicates under minor tag variants are
// removed by a case- and diacritic-insensitive name key. Fewer qualifying
// entities mean a shorter list, never padding.
func (c *Client) Nearby(ctx context.Context, coords models.Coordinates) ([]models.Attraction, error) {
	c.log.DebugContext(ctx, "Fetching nearby attractions",
		"lat", coords.Latitude, "lon", coords.Longitude, "radius", c.radiusMeters)

	form := url.Values{}
	form.Set("data", c.buildQuery(coords))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Overpass API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("overpass API returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload overpassResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	return c.collect(payload.Elements), nil
}

// collect turns raw elements into the deduplicated, capped attraction list.
func (c *Client) collect(elements []overpassElement) []models.Attraction {
	attractions := make([]models.Attraction, 0, c.limit)
	seen := make(map[string]bool)

	for _, element := range elements {
		name := CleanName(element.Tags["name"])
		if name == "" {
			continue
		}

		key := dedupeKey(name)
		if seen[key] {
			continue
		}

		lat, lon := element.Lat, element.Lon
		if element.Center != nil {
			lat, lon = element.Center.Lat, element.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}

		attractions = append(attractions, models.Attraction{Name: name, Latitude: lat, Longitude: lon})
		seen[key] = true

		if len(attractions) >= c.limit {
			break
		}
	}

	return attractions
}
