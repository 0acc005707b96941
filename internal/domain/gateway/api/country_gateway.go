package api

import (
	"travel-api/internal/domain/model/external"
)

// CountryGateway defines the interface for REST Countries API calls
type CountryGateway interface {
	// GetByCodes fetches a batch of countries in a single call
	GetByCodes(codes []string) ([]external.Country, error)

	// GetByCode fetches a single country by its two-letter code.
	// An upstream 404 maps to a not-found error, any other failure to
	// service-unavailable.
	GetByCode(code string) (*external.Country, error)

	// SearchByName searches countries by (partial) name
	SearchByName(name string) ([]external.Country, error)
}
