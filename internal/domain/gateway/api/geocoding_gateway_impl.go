package api

import (
	"travel-api/internal/domain/model/external"
	"travel-api/pkg/http"
	"travel-api/pkg/log"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// Resolve issues a top-1 geocoding search for placeName
func (g *geocodingGatewayImpl) Resolve(placeName string) (float64, float64, bool) {
	successResp, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"name":   placeName,
			"count":  "1",
			"format": "json",
		}).
		WithSuccessResp(&external.GeocodingSearchResponse{}).
		Execute()

	if err != nil {
		log.Warnf("Geocoding lookup failed for '%s': %v", placeName, err)
		return 0, 0, false
	}

	response := successResp.(*external.GeocodingSearchResponse)
	if len(response.Results) == 0 {
		return 0, 0, false
	}

	result := response.Results[0]
	return result.Latitude, result.Longitude, true
}
