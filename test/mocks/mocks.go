// Package mocks provides testify mocks for the orchestrator's collaborators.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"

	"github.com/UnknownOlympus/hermes/internal/geocoding"
	"github.com/UnknownOlympus/hermes/internal/models"
)

// Provider is a mock implementation of geocoding.Provider.
type Provider struct{ mock.Mock }

func NewProvider(t *testing.T) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Provider) Geocode(ctx context.Context, place string) (*geocoding.Result, error) {
	args := m.Called(ctx, place)
	var res *geocoding.Result
	if args.Get(0) != nil {
		res = args.Get(0).(*geocoding.Result)
	}
	return res, args.Error(1)
}

// GoogleAPIClient is a mock implementation of geocoding.GoogleAPIClient.
type GoogleAPIClient struct{ mock.Mock }

func NewGoogleAPIClient(t *testing.T) *GoogleAPIClient {
	m := &GoogleAPIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *GoogleAPIClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)
	var res []maps.GeocodingResult
	if args.Get(0) != nil {
		res = args.Get(0).([]maps.GeocodingResult)
	}
	return res, args.Error(1)
}

// WeatherClient is a mock implementation of service.WeatherClient.
type WeatherClient struct{ mock.Mock }

func NewWeatherClient(t *testing.T) *WeatherClient {
	m := &WeatherClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherClient) Current(ctx context.Context, coords models.Coordinates) (*models.WeatherReport, error) {
	args := m.Called(ctx, coords)
	var report *models.WeatherReport
	if args.Get(0) != nil {
		report = args.Get(0).(*models.WeatherReport)
	}
	return report, args.Error(1)
}

// PlacesClient is a mock implementation of service.PlacesClient.
type PlacesClient struct{ mock.Mock }

func NewPlacesClient(t *testing.T) *PlacesClient {
	m := &PlacesClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *PlacesClient) Nearby(ctx context.Context, coords models.Coordinates) ([]models.Attraction, error) {
	args := m.Called(ctx, coords)
	var attractions []models.Attraction
	if args.Get(0) != nil {
		attractions = args.Get(0).([]models.Attraction)
	}
	return attractions, args.Error(1)
}
