// Package service sequences the interpreter, the location resolver and the
// weather/points-of-interest lookups for one query at a time.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/interpreter"
	"github.com/UnknownOlympus/hermes/internal/metrics"
	"github.com/UnknownOlympus/hermes/internal/models"
)

// WeatherClient fetches current conditions for a coordinate pair.
type WeatherClient interface {
	Current(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error)
}

// PlacesClient fetches nearby attractions for a coordinate pair.
type PlacesClient interface {
	Nearby(ctx context.Context, coords models.Coordinates) ([]models.Attraction, error)
}

// Collaborator labels used for metrics.
const (
	collaboratorGeocoding = "geocoding"
	collaboratorWeather   = "weather"
	collaboratorPlaces    = "places"
)

// Outcome labels for the processed-queries counter.
const (
	outcomeSuccess       = "success"
	outcomePartial       = "partial"
	outcomeMalformed     = "malformed_input"
	outcomePlaceNotFound = "place_not_found"
	outcomeUpstreamError = "upstream_error"
)

// Orchestrator owns the linear flow interpret -> resolve -> fetch.
// It holds no per-query state; one call to Handle serves one query.
type Orchestrator struct {
	log      *slog.Logger       // Logger for logging orchestration steps
	geocoder geocoding.Provider // Resolves place names to coordinates
	weather  WeatherClient      // Weather collaborator
	places   PlacesClient       // Points-of-interest collaborator
	metrics  *metrics.Metrics   // Metrics for tracking query handling
}

// NewOrchestrator creates a new Orchestrator with the given collaborators.
func NewOrchestrator(
	log *slog.Logger,
	geocoder geocoding.Provider,
	weather WeatherClient,
	places PlacesClient,
	appMetrics *metrics.Metrics,
) *Orchestrator {
	return &Orchestrator{
		log:      log,
		geocoder: geocoder,
		weather:  weather,
		places:   places,
		metrics:  appMetrics,
	}
}

// Handle processes one free-text query end to end and returns the populated
// QueryResult. Failures never escape as errors: every external failure is
// converted into the result's ErrorKind or a tagged lookup outcome.
func (o *Orchestrator) Handle(ctx context.Context, query string) models.QueryResult {
	o.metrics.InflightQueries.Inc()
	defer o.metrics.InflightQueries.Dec()

	parsed := interpreter.Interpret(query)
	result := models.QueryResult{
		Query:     query,
		PlaceName: parsed.Place,
		Intent:    parsed.Intent,
	}

	// Short-circuit before any network call when nothing was extracted.
	if parsed.Place == "" || parsed.Intent == models.IntentUnknown {
		o.log.InfoContext(ctx, "Query had no recognizable place", "query", query)
		result.ErrorKind = models.ErrorMalformedInput
		o.metrics.QueriesProcessed.WithLabelValues(outcomeMalformed).Inc()
		return result
	}

	resolved, err := o.resolve(ctx, parsed.Place)
	if err != nil {
		// Unresolved place is terminal: no further calls, no retry.
		if errors.Is(err, geocoding.ErrPlaceNotFound) {
			o.log.InfoContext(ctx, "Place not found", "place", parsed.Place)
			result.ErrorKind = models.ErrorPlaceNotFound
			o.metrics.QueriesProcessed.WithLabelValues(outcomePlaceNotFound).Inc()
			return result
		}

		o.log.ErrorContext(ctx, "Geocoding failed", "place", parsed.Place, "error", err)
		result.ErrorKind = models.ErrorUpstreamUnavailable
		o.metrics.QueriesProcessed.WithLabelValues(outcomeUpstreamError).Inc()
		return result
	}

	if resolved.DisplayName != "" {
		result.PlaceName = resolved.DisplayName
	}
	result.Coordinates = &resolved.Coordinates

	o.fetch(ctx, &result)

	o.metrics.QueriesProcessed.WithLabelValues(o.outcome(result)).Inc()
	return result
}

func (o *Orchestrator) resolve(ctx context.Context, place string) (*geocoding.Result, error) {
	start := time.Now()
	resolved, err := o.geocoder.Geocode(ctx, place)
	o.metrics.RequestSeconds.WithLabelValues(collaboratorGeocoding).Observe(time.Since(start).Seconds())

	if err != nil && !errors.Is(err, geocoding.ErrPlaceNotFound) {
		o.metrics.UpstreamErrors.WithLabelValues(collaboratorGeocoding).Inc()
	}
	return resolved, err
}

// fetch runs the lookups the intent requires. The two legs have no data
// dependency on each other, so for IntentBoth they run concurrently and both
// are joined before returning.
func (o *Orchestrator) fetch(ctx context.Context, result *models.QueryResult) {
	coords := *result.Coordinates
	wantWeather := result.Intent == models.IntentWeather || result.Intent == models.IntentBoth
	wantPlaces := result.Intent == models.IntentPlaces || result.Intent == models.IntentBoth

	var wgr sync.WaitGroup

	if wantWeather {
		wgr.Add(1)
		go func() {
			defer wgr.Done()
			result.Weather = o.fetchWeather(ctx, coords)
		}()
	}

	if wantPlaces {
		wgr.Add(1)
		go func() {
			defer wgr.Done()
			result.Places = o.fetchPlaces(ctx, coords)
		}()
	}

	wgr.Wait()
}

func (o *Orchestrator) fetchWeather(ctx context.Context, coords models.Coordinates) models.WeatherOutcome {
	start := time.Now()
	report, err := o.weather.Current(ctx, coords)
	o.metrics.RequestSeconds.WithLabelValues(collaboratorWeather).Observe(time.Since(start).Seconds())

	if err != nil {
		o.log.ErrorContext(ctx, "Weather lookup failed", "error", err)
		o.metrics.UpstreamErrors.WithLabelValues(collaboratorWeather).Inc()
		return models.WeatherOutcome{Status: models.LookupFailed}
	}

	return models.WeatherOutcome{Status: models.LookupOK, Report: *report}
}

func (o *Orchestrator) fetchPlaces(ctx context.Context, coords models.Coordinates) models.PlacesOutcome {
	start := time.Now()
	attractions, err := o.places.Nearby(ctx, coords)
	o.metrics.RequestSeconds.WithLabelValues(collaboratorPlaces).Observe(time.Since(start).Seconds())

	if err != nil {
		o.log.ErrorContext(ctx, "Places lookup failed", "error", err)
		o.metrics.UpstreamErrors.WithLabelValues(collaboratorPlaces).Inc()
		return models.PlacesOutcome{Status: models.LookupFailed}
	}

	return models.PlacesOutcome{Status: models.LookupOK, Attractions: attractions}
}

// outcome classifies a finished result for the processed-queries counter.
func (o *Orchestrator) outcome(result models.QueryResult) string {
	weatherFailed := result.Weather.Status == models.LookupFailed
	placesFailed := result.Places.Status == models.LookupFailed

	switch {
	case weatherFailed && placesFailed:
		return outcomeUpstreamError
	case weatherFailed || placesFailed:
		if result.Intent == models.IntentBoth {
			return outcomePartial
		}
		return outcomeUpstreamError
	default:
		return outcomeSuccess
	}
}
