package destination_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/model/external"
	"travel-api/internal/domain/usecase/destination"
)

// fakeCountryGateway serves canned records keyed by country code.
type fakeCountryGateway struct {
	countries     map[string]external.Country
	searchResults []external.Country
	searchErr     error
	batchErr      error
}

func (f *fakeCountryGateway) GetByCodes(codes []string) ([]external.Country, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}

	var result []external.Country
	for _, code := range codes {
		if country, ok := f.countries[code]; ok {
			result = append(result, country)
		}
	}
	return result, nil
}

func (f *fakeCountryGateway) GetByCode(code string) (*external.Country, error) {
	country, ok := f.countries[strings.ToUpper(code)]
	if !ok {
		return nil, model.NewNotFoundError("Country %s not found", code)
	}
	return &country, nil
}

func (f *fakeCountryGateway) SearchByName(name string) ([]external.Country, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func fakeCountry(code, name, capital, region string) external.Country {
	return external.Country{
		CCA2:       code,
		Name:       external.CountryName{Common: name},
		Capital:    []string{capital},
		Region:     region,
		Population: 1000000,
		Currencies: map[string]external.Currency{"XXX": {Name: "Testcoin"}},
		Languages:  map[string]string{"tst": "Testish"},
	}
}

func popularGateway() *fakeCountryGateway {
	countries := map[string]external.Country{
		"JP": fakeCountry("JP", "Japan", "Tokyo", "Asia"),
		"FR": fakeCountry("FR", "France", "Paris", "Europe"),
		"IT": fakeCountry("IT", "Italy", "Rome", "Europe"),
		"ES": fakeCountry("ES", "Spain", "Madrid", "Europe"),
		"TH": fakeCountry("TH", "Thailand", "Bangkok", "Asia"),
		"AU": fakeCountry("AU", "Australia", "Canberra", "Oceania"),
		"GB": fakeCountry("GB", "United Kingdom", "London", "Europe"),
		"DE": fakeCountry("DE", "Germany", "Berlin", "Europe"),
		"NZ": fakeCountry("NZ", "New Zealand", "Wellington", "Oceania"),
		"CA": fakeCountry("CA", "Canada", "Ottawa", "Americas"),
	}
	return &fakeCountryGateway{countries: countries}
}

func TestListPopular(t *testing.T) {
	useCase := destination.NewDestinationUseCase(popularGateway())

	destinations, err := useCase.ListPopular()
	require.NoError(t, err)
	require.Len(t, destinations, 10)

	assert.Equal(t, "JP", destinations[0].CountryCode)
	assert.Equal(t, "Japan", destinations[0].CountryName)
	assert.Equal(t, "Tokyo", destinations[0].Capital)
	assert.Equal(t, []string{"XXX"}, destinations[0].Currencies)
	assert.Equal(t, []string{"Testish"}, destinations[0].Languages)
}

func TestListPopular_UpstreamFailure(t *testing.T) {
	gateway := &fakeCountryGateway{batchErr: model.NewUnavailableError("Failed to fetch country data: boom")}
	useCase := destination.NewDestinationUseCase(gateway)

	_, err := useCase.ListPopular()
	require.Error(t, err)

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 503, apiErr.Status)
}

func TestGetByCode_UppercasesAndRoundTrips(t *testing.T) {
	useCase := destination.NewDestinationUseCase(popularGateway())

	for _, code := range destination.PopularCountryCodes {
		dest, err := useCase.GetByCode(strings.ToLower(code))
		require.NoError(t, err, "code %s", code)
		assert.Equal(t, code, strings.ToUpper(dest.CountryCode))
	}
}

func TestGetByCode_DefaultsForMissingFields(t *testing.T) {
	gateway := &fakeCountryGateway{countries: map[string]external.Country{
		"XX": {CCA2: "XX"},
	}}
	useCase := destination.NewDestinationUseCase(gateway)

	dest, err := useCase.GetByCode("XX")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", dest.CountryName)
	assert.Equal(t, "N/A", dest.Capital)
	assert.Equal(t, "Unknown", dest.Region)
	assert.Equal(t, []string{"N/A"}, dest.Currencies)
	assert.Equal(t, []string{"N/A"}, dest.Languages)
}

func TestSearchByName_PopularSet(t *testing.T) {
	useCase := destination.NewDestinationUseCase(popularGateway())

	result, err := useCase.SearchByName("Japan")
	require.NoError(t, err)
	assert.Equal(t, "JP", result.CountryCode)
	assert.Equal(t, "Japan", result.CountryName)
}

func TestSearchByName_SubstringBothDirections(t *testing.T) {
	useCase := destination.NewDestinationUseCase(popularGateway())

	// Query contained in destination name.
	result, err := useCase.SearchByName("zeal")
	require.NoError(t, err)
	assert.Equal(t, "NZ", result.CountryCode)

	// Destination name contained in query.
	result, err = useCase.SearchByName("the United Kingdom of Great Britain")
	require.NoError(t, err)
	assert.Equal(t, "GB", result.CountryCode)
}

func TestSearchByName_UpstreamFallback(t *testing.T) {
	gateway := popularGateway()
	gateway.searchResults = []external.Country{fakeCountry("PT", "Portugal", "Lisbon", "Europe")}
	useCase := destination.NewDestinationUseCase(gateway)

	result, err := useCase.SearchByName("Portugal")
	require.NoError(t, err)
	assert.Equal(t, "PT", result.CountryCode)
	assert.Equal(t, "Portugal", result.CountryName)
}

func TestSearchByName_NotFoundListsHints(t *testing.T) {
	gateway := popularGateway()
	gateway.searchErr = model.NewNotFoundError("Country 'Wakanda' not found")
	useCase := destination.NewDestinationUseCase(gateway)

	_, err := useCase.SearchByName("Wakanda")
	require.Error(t, err)

	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Country 'Wakanda' not found. Try: Japan, France, Italy, Spain, Thailand...", apiErr.Message)
}

func TestNamePreview_ShorterThanRequested(t *testing.T) {
	destinations := []model.Destination{
		{CountryName: "Japan"},
		{CountryName: "France"},
	}

	assert.Equal(t, "Japan, France", destination.NamePreview(destinations, 5))
}
