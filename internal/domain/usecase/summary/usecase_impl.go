package summary

import (
	"strings"

	"travel-api/internal/domain/enrichment"
	"travel-api/internal/domain/gateway/api"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/destination"
	"travel-api/pkg/log"
)

type summaryUseCase struct {
	destinations     destination.UseCase
	geocodingGateway api.GeocodingGateway
	weatherGateway   api.WeatherGateway
}

func NewSummaryUseCase(destinations destination.UseCase, geocodingGateway api.GeocodingGateway, weatherGateway api.WeatherGateway) UseCase {
	return &summaryUseCase{
		destinations:     destinations,
		geocodingGateway: geocodingGateway,
		weatherGateway:   weatherGateway,
	}
}

// SummaryByCode builds a travel summary for a country code
func (uc *summaryUseCase) SummaryByCode(code string) (*model.TravelSummary, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, model.NewInvalidInputError("country_code is required")
	}

	return uc.buildSummary(strings.ToUpper(code))
}

// SummaryByName resolves a country name against the popular-destination set
// only; unlike the search endpoint there is no upstream name-search fallback.
func (uc *summaryUseCase) SummaryByName(name string) (*model.TravelSummary, error) {
	name = strings.TrimSpace(name)

	destinations, err := uc.destinations.ListPopular()
	if err != nil {
		return nil, err
	}

	match := destination.MatchByName(destinations, name)
	if match == nil {
		return nil, model.NewNotFoundError(
			"Country '%s' not found in destinations. Available countries: %s...",
			name, destination.NamePreview(destinations, 5))
	}

	return uc.buildSummary(match.CountryCode)
}

// buildSummary runs the linear pipeline: country lookup, capital geocoding,
// weather fetch, enrichment. Any stage failure short-circuits the rest.
func (uc *summaryUseCase) buildSummary(code string) (*model.TravelSummary, error) {
	dest, err := uc.destinations.GetByCode(code)
	if err != nil {
		return nil, err
	}

	lat, lon, found := uc.geocodingGateway.Resolve(dest.Capital)
	if !found {
		return nil, model.NewUnavailableError("Could not find coordinates for %s", dest.Capital)
	}

	weather, err := uc.weatherGateway.CurrentWeather(lat, lon, dest.Capital)
	if err != nil {
		return nil, err
	}

	tips := enrichment.TravelTips(dest.CountryName, dest.Region, *weather)
	bestTime := enrichment.BestTimeToVisit(dest.Region, code)

	log.Infof("Built travel summary for %s (%s)", dest.CountryName, code)

	return &model.TravelSummary{
		Destination:     *dest,
		CurrentWeather:  *weather,
		TravelTips:      tips,
		BestTimeToVisit: bestTime,
	}, nil
}
