package models

// Intent classifies what the user wants from a single query.
type Intent string

const (
	// IntentUnknown means no place or intent could be derived from the text.
	IntentUnknown Intent = "unknown"
	// IntentWeather means the user asked about current weather only.
	IntentWeather Intent = "weather"
	// IntentPlaces means the user asked about tourist attractions only.
	IntentPlaces Intent = "places"
	// IntentBoth means the user asked about weather and attractions.
	IntentBoth Intent = "both"
)

// WeatherReport holds the current conditions fetched for one query.
type WeatherReport struct {
	TemperatureCelsius       float64 `json:"temperature"`               // Current temperature in degrees Celsius.
	PrecipitationProbability int     `json:"precipitation_probability"` // Chance of rain, 0-100 percent.
}

// Attraction is a named tourism entity near the resolved place.
type Attraction struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// ErrorKind classifies why a query could not be fully answered.
type ErrorKind string

const (
	// ErrorNone means the query was answered.
	ErrorNone ErrorKind = ""
	// ErrorMalformedInput means no place candidate could be extracted from the text.
	ErrorMalformedInput ErrorKind = "malformed_input"
	// ErrorPlaceNotFound means geocoding returned no match for the place candidate.
	ErrorPlaceNotFound ErrorKind = "place_not_found"
	// ErrorUpstreamUnavailable means an external collaborator failed or timed out.
	ErrorUpstreamUnavailable ErrorKind = "upstream_unavailable"
)

// LookupStatus tags the outcome of one optional lookup leg.
type LookupStatus int

const (
	// LookupSkipped means the intent did not require this lookup.
	LookupSkipped LookupStatus = iota
	// LookupOK means the lookup completed successfully.
	LookupOK
	// LookupFailed means the lookup hit an upstream error or timeout.
	LookupFailed
)

// WeatherOutcome is the tagged result of the weather leg.
type WeatherOutcome struct {
	Status LookupStatus
	Report WeatherReport
}

// PlacesOutcome is the tagged result of the points-of-interest leg.
type PlacesOutcome struct {
	Status      LookupStatus
	Attractions []Attraction
}

// QueryResult is the aggregate produced for one handled query.
// It is created fresh per request and never mutated after formatting.
type QueryResult struct {
	Query       string
	PlaceName   string
	Coordinates *Coordinates
	Intent      Intent
	Weather     WeatherOutcome
	Places      PlacesOutcome
	ErrorKind   ErrorKind
}
