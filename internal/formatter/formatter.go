// Package formatter renders a QueryResult into the canonical response text.
// Format is a pure function: the same result always yields a byte-identical
// string.
package formatter

import (
	"fmt"
	"strings"

	"github.com/UnknownOlympus/hermes/internal/models"
)

const (
	unknownPlaceMessage = "I don't know this place exists. Could you please provide a valid place name?"
	clarifyMessage      = "I couldn't identify a place name in your query. Please specify a location."
	upstreamDownMessage = "Sorry, something went wrong while looking that up. Please try again later."

	weatherUnavailableNote = "Weather information is currently unavailable."
	placesUnavailableNote  = "Tourist attractions are currently unavailable."
)

// Format renders the collected query data into the fixed sentence templates.
func Format(res models.QueryResult) string {
	switch res.ErrorKind {
	case models.ErrorMalformedInput:
		return clarifyMessage
	case models.ErrorPlaceNotFound:
		return unknownPlaceMessage
	case models.ErrorUpstreamUnavailable:
		return upstreamDownMessage
	case models.ErrorNone:
	}

	switch res.Intent {
	case models.IntentWeather:
		return weatherOnly(res)
	case models.IntentPlaces:
		return placesOnly(res)
	case models.IntentBoth:
		return both(res)
	case models.IntentUnknown:
	}
	return clarifyMessage
}

func weatherSentence(place string, report models.WeatherReport) string {
	return fmt.Sprintf("In %s it's currently %d°C with a chance of %d%% to rain.",
		place, int(report.TemperatureCelsius), report.PrecipitationProbability)
}

func bulletList(attractions []models.Attraction) string {
	lines := make([]string, 0, len(attractions))
	for _, attraction := range attractions {
		lines = append(lines, "- "+attraction.Name)
	}
	return strings.Join(lines, "\n")
}

func placesBlock(place string, attractions []models.Attraction) string {
	return fmt.Sprintf("In %s these are the places you can go,\n%s", place, bulletList(attractions))
}

func weatherOnly(res models.QueryResult) string {
	if res.Weather.Status != models.LookupOK {
		return fmt.Sprintf("Unable to fetch weather information for %s.", res.PlaceName)
	}
	return weatherSentence(res.PlaceName, res.Weather.Report)
}

func placesOnly(res models.QueryResult) string {
	if res.Places.Status != models.LookupOK || len(res.Places.Attractions) == 0 {
		return fmt.Sprintf("Unable to find tourist attractions in %s.", res.PlaceName)
	}
	return placesBlock(res.PlaceName, res.Places.Attractions)
}

// both pattern-matches over the combination of the two tagged outcomes:
// one combined sentence when both legs succeeded, the successful part plus a
// short note when one failed, the generic apology when both did.
func both(res models.QueryResult) string {
	weatherOK := res.Weather.Status == models.LookupOK
	placesOK := res.Places.Status == models.LookupOK && len(res.Places.Attractions) > 0

	switch {
	case weatherOK && placesOK:
		return weatherSentence(res.PlaceName, res.Weather.Report) +
			" And these are the places you can go:\n" +
			bulletList(res.Places.Attractions)
	case weatherOK:
		return weatherSentence(res.PlaceName, res.Weather.Report) + " " + placesUnavailableNote
	case placesOK:
		return placesBlock(res.PlaceName, res.Places.Attractions) + "\n" + weatherUnavailableNote
	default:
		return upstreamDownMessage
	}
}
