package destination

import (
	"travel-api/internal/domain/model"
)

type UseCase interface {
	// ListPopular fetches the fixed popular-destination set in one batched call
	ListPopular() ([]model.Destination, error)

	// GetByCode fetches a single destination by its two-letter country code
	GetByCode(code string) (*model.Destination, error)

	// SearchByName resolves a country name to its code, matching the popular
	// set first and falling back to an upstream name search
	SearchByName(name string) (*model.CountryCodeResponse, error)
}
