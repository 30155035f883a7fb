package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/hermes/internal/models"
)

// Result is a resolved place: its coordinates plus the display name the
// upstream service knows it by.
type Result struct {
	DisplayName string
	Coordinates models.Coordinates
}

// Provider is an interface that defines a method for geocoding a place name.
// The Geocode method takes a context and a free-text place name as input,
// and returns the resolved place or an error.
type Provider interface {
	Geocode(ctx context.Context, place string) (*Result, error)
}

// ErrPlaceNotFound is returned when the upstream service has no match for
// the place name. It is a first-class outcome, distinct from transport
// failures, so callers can tell "does not exist" from "service unavailable".
var ErrPlaceNotFound = errors.New("place not found")
