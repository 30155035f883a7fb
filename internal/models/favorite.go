package models

import "time"

// Favorite is one saved query result. Ids are assigned monotonically by the store.
type Favorite struct {
	ID          int            `json:"id"`
	PlaceName   string         `json:"place_name"`
	Coordinates Coordinates    `json:"coordinates"`
	WeatherData *WeatherReport `json:"weather_data,omitempty"`
	PlacesData  []Attraction   `json:"places_data,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
