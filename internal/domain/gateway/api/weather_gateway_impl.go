package api

import (
	"strconv"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
	"travel-api/pkg/http"
)

const currentWeatherVariables = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// CurrentWeather fetches current conditions for the given coordinates
func (g *weatherGatewayImpl) CurrentWeather(lat float64, lon float64, locationLabel string) (*model.Weather, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude": strconv.FormatFloat(lon, 'f', -1, 64),
			"current":   currentWeatherVariables,
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		Execute()

	if err != nil {
		return nil, model.NewUnavailableError("Failed to fetch weather data: %v", err)
	}

	current := successResp.(*external.ForecastResponse).Current

	return &model.Weather{
		Location:           locationLabel,
		TemperatureCelsius: current.Temperature,
		WeatherDescription: DescribeWeatherCode(current.WeatherCode),
		Humidity:           current.Humidity,
		WindSpeedKmh:       current.WindSpeed,
	}, nil
}
