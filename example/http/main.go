package main

import (
	"time"

	"travel-api/pkg/http"
	"travel-api/pkg/log"
)

type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

type ForecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Current   CurrentWeather `json:"current"`
}

type CurrentWeather struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperature_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
}

type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

func main() {
	// Client Options with JSON as default content type
	clientOptions := http.ClientOptions{
		FollowRedirect:     true,
		DefaultContentType: "application/json",
		ReadTimeout:        30 * time.Second,
	}

	// Creating a Client
	client := http.NewHttpClient("https://geocoding-api.open-meteo.com/v1", clientOptions)

	queryParams := map[string]string{
		"name":   "Tokyo",
		"count":  "1",
		"format": "json",
	}

	// Success Request
	success, failure, status, err := client.Get("/search", queryParams, nil, &GeocodingResponse{}, &APIErrorResponse{})

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Creating other Client
	client = http.NewHttpClient("https://api.open-meteo.com/v1", clientOptions)

	// Error Request (missing required latitude/longitude parameters)
	success, failure, status, err = client.Get("/forecast", nil, nil, &ForecastResponse{}, &APIErrorResponse{})

	if err != nil {
		log.Errorw("Request Error", "status", status, "error", err, "body", failure)
	} else {
		log.Infow("Request Success", "status", status, "body", success)
	}

	// Using Request Builder
	requestSuccessBody, requestErrorBody, requestStatus, requestErr := client.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"latitude":  "35.6895",
			"longitude": "139.6917",
			"current":   "temperature_2m,wind_speed_10m",
		}).
		WithSuccessResp(&ForecastResponse{}).
		WithErrorResp(&APIErrorResponse{}).
		Execute()

	if requestErr != nil {
		log.Errorw("Request Error", "status", requestStatus, "error", requestErr, "body", requestErrorBody)
	} else {
		log.Infow("Request Success", "status", requestStatus, "body", requestSuccessBody)
	}
}
