// Package favorites persists saved query results to a JSON file.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Interface is the favorites surface consumed by the HTTP layer.
type Interface interface {
	List() ([]models.Favorite, error)
	Add(fav models.Favorite) (models.Favorite, error)
	Remove(id int) error
}

// Common errors for the favorites store.
var (
	ErrDuplicatePlace = errors.New("place is already in favorites")
	ErrNotFound       = errors.New("favorite not found")
)

// Store keeps an ordered list of favorites in a single JSON file. All
// operations take a read-modify-write cycle under one mutex so concurrent
// handlers cannot lose updates.
type Store struct {
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewStore creates a favorites store backed by the file at path.
// The file is created on first write.
func NewStore(path string, log *slog.Logger) *Store {
	return &Store{path: path, log: log}
}

// List returns all favorites in insertion order.
func (s *Store) List() ([]models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Add appends a favorite, assigning the next monotonic id and the creation
// time. A place already present (case-insensitive) is rejected with
// ErrDuplicatePlace.
func (s *Store) Add(fav models.Favorite) (models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load()
	if err != nil {
		return models.Favorite{}, err
	}

	maxID := 0
	for _, existing := range favs {
		if strings.EqualFold(existing.PlaceName, fav.PlaceName) {
			return models.Favorite{}, ErrDuplicatePlace
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	fav.ID = maxID + 1
	fav.CreatedAt = time.Now().UTC()
	favs = append(favs, fav)

	if err = s.save(favs); err != nil {
		return models.Favorite{}, err
	}

	s.log.Debug("Favorite added", "id", fav.ID, "place", fav.PlaceName)
	return fav, nil
}

// Remove deletes the favorite with the given id.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := s.load()
	if err != nil {
		return err
	}

	kept := favs[:0]
	for _, fav := range favs {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if len(kept) == len(favs) {
		return ErrNotFound
	}

	return s.save(kept)
}

func (s *Store) load() ([]models.Favorite, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Favorite{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	var favs []models.Favorite
	if err = json.Unmarshal(raw, &favs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites file: %w", err)
	}
	return favs, nil
}

func (s *Store) save(favs []models.Favorite) error {
	raw, err := json.MarshalIndent(favs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err = os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	return nil
}
