package external

// GeocodingSearchResponse represents the response from the Open-Meteo geocoding API
type GeocodingSearchResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult is a single geocoding match
type GeocodingResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Current   CurrentWeather `json:"current"`
}

// CurrentWeather holds the requested current-condition variables
type CurrentWeather struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature_2m"`
	Humidity    int     `json:"relative_humidity_2m"`
	WeatherCode int     `json:"weather_code"`
	WindSpeed   float64 `json:"wind_speed_10m"`
}
