package destination

import (
	"sort"
	"strings"

	"travel-api/internal/domain/gateway/api"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
)

// PopularCountryCodes is the fixed set of destinations served by ListPopular.
var PopularCountryCodes = []string{"JP", "FR", "IT", "ES", "TH", "AU", "GB", "DE", "NZ", "CA"}

type destinationUseCase struct {
	countryGateway api.CountryGateway
}

func NewDestinationUseCase(countryGateway api.CountryGateway) UseCase {
	return &destinationUseCase{
		countryGateway: countryGateway,
	}
}

// ListPopular fetches the fixed popular-destination set in one batched call
func (uc *destinationUseCase) ListPopular() ([]model.Destination, error) {
	countries, err := uc.countryGateway.GetByCodes(PopularCountryCodes)
	if err != nil {
		return nil, err
	}

	destinations := make([]model.Destination, 0, len(countries))
	for _, country := range countries {
		destinations = append(destinations, toDestination(country))
	}

	return destinations, nil
}

// GetByCode fetches a single destination by its two-letter country code
func (uc *destinationUseCase) GetByCode(code string) (*model.Destination, error) {
	country, err := uc.countryGateway.GetByCode(strings.ToUpper(code))
	if err != nil {
		return nil, err
	}

	destination := toDestination(*country)
	return &destination, nil
}

// SearchByName resolves a country name to its code. The popular set is matched
// first; on miss a direct upstream name search is tried, taking the first result.
func (uc *destinationUseCase) SearchByName(name string) (*model.CountryCodeResponse, error) {
	destinations, err := uc.ListPopular()
	if err != nil {
		return nil, err
	}

	if match := MatchByName(destinations, name); match != nil {
		return &model.CountryCodeResponse{
			CountryCode: match.CountryCode,
			CountryName: match.CountryName,
		}, nil
	}

	countries, err := uc.countryGateway.SearchByName(name)
	if err == nil && len(countries) > 0 {
		return &model.CountryCodeResponse{
			CountryCode: countries[0].CCA2,
			CountryName: commonNameOrUnknown(countries[0]),
		}, nil
	}

	return nil, model.NewNotFoundError("Country '%s' not found. Try: %s...", name, NamePreview(destinations, 5))
}

// MatchByName finds the first destination whose name contains the query or is
// contained by it, case-insensitively.
func MatchByName(destinations []model.Destination, name string) *model.Destination {
	query := strings.ToLower(name)
	for i := range destinations {
		candidate := strings.ToLower(destinations[i].CountryName)
		if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
			return &destinations[i]
		}
	}
	return nil
}

// NamePreview joins the first n destination names, for not-found hints.
func NamePreview(destinations []model.Destination, n int) string {
	if n > len(destinations) {
		n = len(destinations)
	}

	names := make([]string, 0, n)
	for _, destination := range destinations[:n] {
		names = append(names, destination.CountryName)
	}

	return strings.Join(names, ", ")
}

// toDestination maps a raw directory-API record into a Destination, applying
// the "N/A" substitution for missing capital, currencies and languages.
func toDestination(country external.Country) model.Destination {
	capital := "N/A"
	if len(country.Capital) > 0 {
		capital = country.Capital[0]
	}

	name := commonNameOrUnknown(country)

	region := country.Region
	if region == "" {
		region = "Unknown"
	}

	return model.Destination{
		CountryCode: country.CCA2,
		CountryName: name,
		Capital:     capital,
		Region:      region,
		Population:  country.Population,
		Currencies:  currencyCodes(country.Currencies),
		Languages:   languageNames(country.Languages),
	}
}

func commonNameOrUnknown(country external.Country) string {
	if country.Name.Common == "" {
		return "Unknown"
	}
	return country.Name.Common
}

// currencyCodes returns the sorted currency codes, or ["N/A"] when absent.
func currencyCodes(currencies map[string]external.Currency) []string {
	if len(currencies) == 0 {
		return []string{"N/A"}
	}

	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}

// languageNames returns the sorted language names, or ["N/A"] when absent.
func languageNames(languages map[string]string) []string {
	if len(languages) == 0 {
		return []string{"N/A"}
	}

	names := make([]string, 0, len(languages))
	for _, language := range languages {
		names = append(names, language)
	}
	sort.Strings(names)

	return names
}
