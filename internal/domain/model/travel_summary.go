package model

// Weather holds current conditions for a location, fetched live per request.
type Weather struct {
	Location           string  `json:"location"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	WeatherDescription string  `json:"weather_description"`
	Humidity           int     `json:"humidity"`
	WindSpeedKmh       float64 `json:"wind_speed_kmh"`
}

// TravelSummary is the aggregated response combining country metadata, live
// weather and advisory text. Destination fields are promoted to the top level.
type TravelSummary struct {
	Destination
	CurrentWeather  Weather  `json:"current_weather"`
	TravelTips      []string `json:"travel_tips"`
	BestTimeToVisit string   `json:"best_time_to_visit"`
}

// TravelSummaryRequest selects a destination by country code.
type TravelSummaryRequest struct {
	CountryCode string `json:"country_code"`
}

// TravelSummaryByNameRequest selects a destination by country name.
type TravelSummaryByNameRequest struct {
	CountryName string `json:"country_name"`
}
