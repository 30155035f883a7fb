package formatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UnknownOlympus/hermes/internal/formatter"
	"github.com/UnknownOlympus/hermes/internal/models"
)

func sampleAttractions() []models.Attraction {
	return []models.Attraction{
		{Name: "Lalbagh Botanical Garden"},
		{Name: "Bangalore Palace"},
		{Name: "Cubbon Park"},
	}
}

func TestFormat_WeatherOnly(t *testing.T) {
	res := models.QueryResult{
		PlaceName: "Bangalore",
		Intent:    models.IntentWeather,
		Weather: models.WeatherOutcome{
			Status: models.LookupOK,
			Report: models.WeatherReport{TemperatureCelsius: 25.6, PrecipitationProbability: 40},
		},
	}

	got := formatter.Format(res)

	assert.Equal(t, "In Bangalore it's currently 25°C with a chance of 40% to rain.", got)
}

func TestFormat_PlacesOnly(t *testing.T) {
	res := models.QueryResult{
		PlaceName: "Bangalore",
		Intent:    models.IntentPlaces,
		Places: models.PlacesOutcome{
			Status:      models.LookupOK,
			Attractions: sampleAttractions(),
		},
	}

	got := formatter.Format(res)

	want := "In Bangalore these are the places you can go,\n" +
		"- Lalbagh Botanical Garden\n" +
		"- Bangalore Palace\n" +
		"- Cubbon Park"
	assert.Equal(t, want, got)
}

func TestFormat_Both(t *testing.T) {
	res := models.QueryResult{
		PlaceName: "Bangalore",
		Intent:    models.IntentBoth,
		Weather: models.WeatherOutcome{
			Status: models.LookupOK,
			Report: models.WeatherReport{TemperatureCelsius: 25, PrecipitationProbability: 40},
		},
		Places: models.PlacesOutcome{
			Status:      models.LookupOK,
			Attractions: sampleAttractions(),
		},
	}

	got := formatter.Format(res)

	want := "In Bangalore it's currently 25°C with a chance of 40% to rain." +
		" And these are the places you can go:\n" +
		"- Lalbagh Botanical Garden\n" +
		"- Bangalore Palace\n" +
		"- Cubbon Park"
	assert.Equal(t, want, got)
}

func TestFormat_ErrorKinds(t *testing.T) {
	t.Run("place not found", func(t *testing.T) {
		res := models.QueryResult{PlaceName: "Xyzabc123", ErrorKind: models.ErrorPlaceNotFound}

		got := formatter.Format(res)

		assert.Equal(t, "I don't know this place exists. Could you please provide a valid place name?", got)
	})

	t.Run("malformed input", func(t *testing.T) {
		res := models.QueryResult{ErrorKind: models.ErrorMalformedInput}

		got := formatter.Format(res)

		assert.Equal(t, "I couldn't identify a place name in your query. Please specify a location.", got)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		res := models.QueryResult{PlaceName: "Bangalore", ErrorKind: models.ErrorUpstreamUnavailable}

		got := formatter.Format(res)

		assert.Equal(t, "Sorry, something went wrong while looking that up. Please try again later.", got)
	})
}

func TestFormat_PartialFailures(t *testing.T) {
	t.Run("both intent with failed places leg", func(t *testing.T) {
		res := models.QueryResult{
			PlaceName: "Bangalore",
			Intent:    models.IntentBoth,
			Weather: models.WeatherOutcome{
				Status: models.LookupOK,
				Report: models.WeatherReport{TemperatureCelsius: 25, PrecipitationProbability: 40},
			},
			Places: models.PlacesOutcome{Status: models.LookupFailed},
		}

		got := formatter.Format(res)

		assert.Equal(t,
			"In Bangalore it's currently 25°C with a chance of 40% to rain. Tourist attractions are currently unavailable.",
			got)
	})

	t.Run("both intent with failed weather leg", func(t *testing.T) {
		res := models.QueryResult{
			PlaceName: "Bangalore",
			Intent:    models.IntentBoth,
			Weather:   models.WeatherOutcome{Status: models.LookupFailed},
			Places: models.PlacesOutcome{
				Status:      models.LookupOK,
				Attractions: sampleAttractions(),
			},
		}

		got := formatter.Format(res)

		want := "In Bangalore these are the places you can go,\n" +
			"- Lalbagh Botanical Garden\n" +
			"- Bangalore Palace\n" +
			"- Cubbon Park\n" +
			"Weather information is currently unavailable."
		assert.Equal(t, want, got)
	})

	t.Run("both legs failed", func(t *testing.T) {
		res := models.QueryResult{
			PlaceName: "Bangalore",
			Intent:    models.IntentBoth,
			Weather:   models.WeatherOutcome{Status: models.LookupFailed},
			Places:    models.PlacesOutcome{Status: models.LookupFailed},
		}

		got := formatter.Format(res)

		assert.Equal(t, "Sorry, something went wrong while looking that up. Please try again later.", got)
	})

	t.Run("weather intent with failed lookup", func(t *testing.T) {
		res := models.QueryResult{
			PlaceName: "Bangalore",
			Intent:    models.IntentWeather,
			Weather:   models.WeatherOutcome{Status: models.LookupFailed},
		}

		got := formatter.Format(res)

		assert.Equal(t, "Unable to fetch weather information for Bangalore.", got)
	})

	t.Run("places intent with empty result", func(t *testing.T) {
		res := models.QueryResult{
			PlaceName: "Bangalore",
			Intent:    models.IntentPlaces,
			Places:    models.PlacesOutcome{Status: models.LookupOK},
		}

		got := formatter.Format(res)

		assert.Equal(t, "Unable to find tourist attractions in Bangalore.", got)
	})
}

func TestFormat_Deterministic(t *testing.T) {
	res := models.QueryResult{
		PlaceName: "Bangalore",
		Intent:    models.IntentBoth,
		Weather: models.WeatherOutcome{
			Status: models.LookupOK,
			Report: models.WeatherReport{TemperatureCelsius: 25, PrecipitationProbability: 40},
		},
		Places: models.PlacesOutcome{
			Status:      models.LookupOK,
			Attractions: sampleAttractions(),
		},
	}

	assert.Equal(t, formatter.Format(res), formatter.Format(res))
}
