package api

import (
	"travel-api/internal/domain/model"
)

// WeatherGateway defines the interface for current-weather lookups
type WeatherGateway interface {
	// CurrentWeather fetches current conditions for the given coordinates,
	// translating the numeric weather code into a description. Unlike the
	// geocoding gateway, any transport or HTTP failure is propagated.
	CurrentWeather(lat float64, lon float64, locationLabel string) (*model.Weather, error)
}
