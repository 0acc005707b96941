package summary

import (
	"travel-api/internal/domain/model"
)

type UseCase interface {
	// SummaryByCode builds a travel summary for a country code, running the
	// full pipeline: country lookup, capital geocoding, weather, enrichment
	SummaryByCode(code string) (*model.TravelSummary, error)

	// SummaryByName resolves a country name against the popular-destination
	// set, then runs the same pipeline as SummaryByCode
	SummaryByName(name string) (*model.TravelSummary, error)
}
