package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the travel query service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The HTTP server port.
// - GeocoderType: The type of geocoding provider to use (nominatim, google).
// - APIKey: The API key for the geocoding provider (required for Google).
// - GeocodeInterval: The minimum delay between geocoding calls.
// - POIRadiusMeters: The search radius for nearby attractions.
// - POILimit: The maximum number of attractions per response.
// - FavoritesFile: Path to the JSON file backing the favorites store.
type Config struct {
	Env             string
	Port            int
	GeocoderType    string
	APIKey          string
	GeocodeInterval time.Duration
	POIRadiusMeters int
	POILimit        int
	FavoritesFile   string
}

// MustLoad loads the configuration from the environment and returns a Config.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("HERMES_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for HTTP server from configuration")
	}

	interval, err := time.ParseDuration(setDefaultEnv("HERMES_GEOCODE_INTERVAL", "1s"))
	if err != nil {
		panic("failed to parse geocode interval from configuration")
	}

	radius, err := strconv.Atoi(setDefaultEnv("HERMES_POI_RADIUS", "10000"))
	if err != nil {
		panic("failed to parse POI radius from configuration, must be an integer")
	}

	limit, err := strconv.Atoi(setDefaultEnv("HERMES_POI_LIMIT", "5"))
	if err != nil {
		panic("failed to parse POI limit from configuration, must be an integer")
	}

	return &Config{
		Env:             setDefaultEnv("HERMES_ENV", "production"),
		Port:            port,
		GeocoderType:    setDefaultEnv("HERMES_GEOCODER_TYPE", "nominatim"),
		APIKey:          os.Getenv("HERMES_GEOCODER_KEY"),
		GeocodeInterval: interval,
		POIRadiusMeters: radius,
		POILimit:        limit,
		FavoritesFile:   setDefaultEnv("HERMES_FAVORITES_FILE", "favorites.json"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
