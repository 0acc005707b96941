package api

import (
	"net/url"
	"strings"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
	"travel-api/pkg/http"
)

// countryGatewayImpl implements the CountryGateway interface
type countryGatewayImpl struct {
	httpClient *http.Client
}

// NewCountryGateway creates a new instance of CountryGateway with HTTP client
func NewCountryGateway(baseUrl string, clientOptions http.ClientOptions) CountryGateway {
	return &countryGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetByCodes fetches a batch of countries in a single call
func (g *countryGatewayImpl) GetByCodes(codes []string) ([]external.Country, error) {
	successResp, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/alpha").
		WithQueryParams(map[string]string{"codes": strings.Join(codes, ",")}).
		WithSuccessResp(&[]external.Country{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, model.NewUnavailableError("Failed to fetch country data: %v", err)
	}

	countries := successResp.(*[]external.Country)
	return *countries, nil
}

// GetByCode fetches a single country by its two-letter code
func (g *countryGatewayImpl) GetByCode(code string) (*external.Country, error) {
	successResp, _, status, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/alpha/" + url.PathEscape(code)).
		WithSuccessResp(&[]external.Country{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if status == 404 {
			return nil, model.NewNotFoundError("Country %s not found", code)
		}
		return nil, model.NewUnavailableError("Failed to fetch country data: %v", err)
	}

	countries := *successResp.(*[]external.Country)
	if len(countries) == 0 {
		return nil, model.NewNotFoundError("Country %s not found", code)
	}

	return &countries[0], nil
}

// SearchByName searches countries by (partial) name
func (g *countryGatewayImpl) SearchByName(name string) ([]external.Country, error) {
	successResp, _, status, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/name/" + url.PathEscape(name)).
		WithSuccessResp(&[]external.Country{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if status == 404 {
			return nil, model.NewNotFoundError("Country '%s' not found", name)
		}
		return nil, model.NewUnavailableError("Failed to fetch country data: %v", err)
	}

	countries := successResp.(*[]external.Country)
	return *countries, nil
}
