package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnknownOlympus/hermes/internal/favorites"
	"github.com/UnknownOlympus/hermes/internal/formatter"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/server"
)

// stubQueryHandler returns a canned result for any query.
type stubQueryHandler struct {
	result models.QueryResult
}

func (s *stubQueryHandler) Handle(_ context.Context, query string) models.QueryResult {
	result := s.result
	result.Query = query
	return result
}

func successfulResult() models.QueryResult {
	return models.QueryResult{
		PlaceName:   "Bengaluru, Karnataka, India",
		Coordinates: &models.Coordinates{Latitude: 12.9767936, Longitude: 77.590082},
		Intent:      models.IntentBoth,
		Weather: models.WeatherOutcome{
			Status: models.LookupOK,
			Report: models.WeatherReport{TemperatureCelsius: 25.6, PrecipitationProbability: 40},
		},
		Places: models.PlacesOutcome{
			Status: models.LookupOK,
			Attractions: []models.Attraction{
				{Name: "Lalbagh Botanical Garden", Latitude: 12.95, Longitude: 77.58},
			},
		},
	}
}

func newTestServer(t *testing.T, result models.QueryResult) http.Handler {
	t.Helper()
	t.Cleanup(func() { filet.CleanUp(t) })

	dir := filet.TmpDir(t, "")
	store := favorites.NewStore(filepath.Join(dir, "favorites.json"), slog.Default())
	srv := server.New(slog.Default(), &stubQueryHandler{result: result}, formatter.Format, store)
	return srv.Routes(prometheus.NewRegistry())
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleQuery(t *testing.T) {
	t.Run("successful query", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/query", map[string]string{
			"query": "I'm going to go to Bangalore, what is the temperature and the places to visit",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Response  string `json:"response"`
			PlaceName string `json:"place_name"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Bengaluru, Karnataka, India", resp.PlaceName)
		assert.Contains(t, resp.Response, "it's currently 25°C")
		assert.Contains(t, resp.Response, "Lalbagh Botanical Garden")
	})

	t.Run("empty query", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/query", map[string]string{"query": "   "})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "query cannot be empty")
	})

	t.Run("invalid body", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		req := httptest.NewRequest(http.MethodPost, "/query", bytes.NewBufferString("not json"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})
}

func TestHandleQueryMap(t *testing.T) {
	t.Run("includes map payload on success", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/query/map", map[string]string{
			"query": "I'm going to go to Bangalore, let's plan my trip.",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Coordinates *models.Coordinates   `json:"coordinates"`
			WeatherData *models.WeatherReport `json:"weather_data"`
			PlacesData  []models.Attraction   `json:"places_data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Coordinates)
		assert.InEpsilon(t, 12.9767936, resp.Coordinates.Latitude, 0.0001)
		require.NotNil(t, resp.WeatherData)
		assert.Equal(t, 40, resp.WeatherData.PrecipitationProbability)
		require.Len(t, resp.PlacesData, 1)
	})

	t.Run("omits payload for an unresolved place", func(t *testing.T) {
		handler := newTestServer(t, models.QueryResult{
			PlaceName: "Xyzabc",
			Intent:    models.IntentPlaces,
			ErrorKind: models.ErrorPlaceNotFound,
		})

		rec := doJSON(t, handler, http.MethodPost, "/query/map", map[string]string{
			"query": "I'm going to go to Xyzabc, let's plan my trip.",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "coordinates")
		assert.NotContains(t, rec.Body.String(), "weather_data")
		assert.NotContains(t, rec.Body.String(), "places_data")
	})
}

func TestFavoritesEndpoints(t *testing.T) {
	favoriteBody := map[string]any{
		"place_name":  "Bengaluru, Karnataka, India",
		"coordinates": map[string]float64{"lat": 12.9767936, "lon": 77.590082},
	}

	t.Run("list starts empty", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodGet, "/favorites", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Favorites []models.Favorite `json:"favorites"`
			Count     int               `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
		assert.Empty(t, resp.Favorites)
	})

	t.Run("add then list then remove", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/favorites", favoriteBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Favorite
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, 1, created.ID)

		rec = doJSON(t, handler, http.MethodGet, "/favorites", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)

		rec = doJSON(t, handler, http.MethodDelete, "/favorites/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)

		rec = doJSON(t, handler, http.MethodGet, "/favorites", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":0`)
	})

	t.Run("duplicate place is rejected", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/favorites", favoriteBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, handler, http.MethodPost, "/favorites", favoriteBody)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "place is already in favorites")
	})

	t.Run("missing place name", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/favorites", map[string]string{"place_name": "  "})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "place_name cannot be empty")
	})

	t.Run("remove unknown id", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodDelete, "/favorites/42", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "favorite not found")
	})

	t.Run("remove with a non-numeric id", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodDelete, "/favorites/abc", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid favorite id")
	})
}

func TestAddFavoriteFromQuery(t *testing.T) {
	t.Run("stores the resolved place with its lookups", func(t *testing.T) {
		handler := newTestServer(t, successfulResult())

		rec := doJSON(t, handler, http.MethodPost, "/favorites/add-from-query", map[string]string{
			"query": "I'm going to go to Bangalore, what is the temperature and the places to visit",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Favorite
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "Bengaluru, Karnataka, India", created.PlaceName)
		require.NotNil(t, created.WeatherData)
		require.Len(t, created.PlacesData, 1)
	})

	t.Run("rejects an unresolvable place", func(t *testing.T) {
		handler := newTestServer(t, models.QueryResult{
			PlaceName: "Xyzabc",
			Intent:    models.IntentPlaces,
			ErrorKind: models.ErrorPlaceNotFound,
		})

		rec := doJSON(t, handler, http.MethodPost, "/favorites/add-from-query", map[string]string{
			"query": "I'm going to go to Xyzabc, let's plan my trip.",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "could not geocode the place")
	})
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, successfulResult())

	rec := doJSON(t, handler, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestServer(t, successfulResult())

	rec := doJSON(t, handler, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
}
