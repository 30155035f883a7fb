package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/favorites"
	"github.com/UnknownOlympus/hermes/internal/models"
)

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Response  string `json:"response"`
	PlaceName string `json:"place_name,omitempty"`
}

type mapQueryResponse struct {
	Response    string                `json:"response"`
	PlaceName   string                `json:"place_name,omitempty"`
	Coordinates *models.Coordinates   `json:"coordinates,omitempty"`
	WeatherData *models.WeatherReport `json:"weather_data,omitempty"`
	PlacesData  []models.Attraction   `json:"places_data,omitempty"`
}

type favoriteRequest struct {
	PlaceName   string                `json:"place_name"`
	Coordinates models.Coordinates    `json:"coordinates"`
	WeatherData *models.WeatherReport `json:"weather_data,omitempty"`
	PlacesData  []models.Attraction   `json:"places_data,omitempty"`
}

type favoritesListResponse struct {
	Favorites []models.Favorite `json:"favorites"`
	Count     int               `json:"count"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.ErrorContext(r.Context(), "failed to encode response",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeQuery reads a {query} body and rejects empty or whitespace-only text.
func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if strings.TrimSpace(req.Query) == "" {
		s.writeError(w, r, http.StatusBadRequest, "query cannot be empty")
		return "", false
	}
	return req.Query, true
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}

	result := s.queries.Handle(r.Context(), query)

	s.writeJSON(w, r, http.StatusOK, queryResponse{
		Response:  s.format(result),
		PlaceName: result.PlaceName,
	})
}

func (s *Server) handleQueryMap(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}

	result := s.queries.Handle(r.Context(), query)

	resp := mapQueryResponse{
		Response:    s.format(result),
		PlaceName:   result.PlaceName,
		Coordinates: result.Coordinates,
	}
	if result.Weather.Status == models.LookupOK {
		report := result.Weather.Report
		resp.WeatherData = &report
	}
	if result.Places.Status == models.LookupOK {
		resp.PlacesData = result.Places.Attractions
	}

	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := s.favorites.List()
	if err != nil {
		s.log.ErrorContext(r.Context(), "failed to list favorites", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, r, http.StatusOK, favoritesListResponse{Favorites: favs, Count: len(favs)})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.PlaceName) == "" {
		s.writeError(w, r, http.StatusBadRequest, "place_name cannot be empty")
		return
	}

	fav, err := s.favorites.Add(models.Favorite{
		PlaceName:   req.PlaceName,
		Coordinates: req.Coordinates,
		WeatherData: req.WeatherData,
		PlacesData:  req.PlacesData,
	})
	if err != nil {
		s.addFavoriteError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, fav)
}

func (s *Server) handleAddFavoriteFromQuery(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}

	result := s.queries.Handle(r.Context(), query)
	if result.Coordinates == nil {
		s.writeError(w, r, http.StatusBadRequest, "could not geocode the place")
		return
	}

	fav := models.Favorite{
		PlaceName:   result.PlaceName,
		Coordinates: *result.Coordinates,
	}
	if result.Weather.Status == models.LookupOK {
		report := result.Weather.Report
		fav.WeatherData = &report
	}
	if result.Places.Status == models.LookupOK {
		fav.PlacesData = result.Places.Attractions
	}

	added, err := s.favorites.Add(fav)
	if err != nil {
		s.addFavoriteError(w, r, err)
		return
	}

	s.writeJSON(w, r, http.StatusCreated, added)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid favorite id")
		return
	}

	if err = s.favorites.Remove(id); err != nil {
		if errors.Is(err, favorites.ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, "favorite not found")
			return
		}
		s.log.ErrorContext(r.Context(), "failed to remove favorite", "id", id, "error", err)
		s.writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) addFavoriteError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, favorites.ErrDuplicatePlace) {
		s.writeError(w, r, http.StatusBadRequest, "place is already in favorites")
		return
	}
	s.log.ErrorContext(r.Context(), "failed to add favorite", "error", err)
	s.writeError(w, r, http.StatusInternalServerError, "internal server error")
}
