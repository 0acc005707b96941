package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-api/internal/application/controller"
	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/health"
)

type fakeDestinationUseCase struct {
	popular    []model.Destination
	popularErr error
	byCode     map[string]model.Destination
	byCodeErr  error
	searchResp *model.CountryCodeResponse
	searchErr  error
}

func (f *fakeDestinationUseCase) ListPopular() ([]model.Destination, error) {
	return f.popular, f.popularErr
}

func (f *fakeDestinationUseCase) GetByCode(code string) (*model.Destination, error) {
	if f.byCodeErr != nil {
		return nil, f.byCodeErr
	}
	dest, ok := f.byCode[strings.ToUpper(code)]
	if !ok {
		return nil, model.NewNotFoundError("Country %s not found", code)
	}
	return &dest, nil
}

func (f *fakeDestinationUseCase) SearchByName(name string) (*model.CountryCodeResponse, error) {
	return f.searchResp, f.searchErr
}

type fakeSummaryUseCase struct {
	summary *model.TravelSummary
	err     error
}

func (f *fakeSummaryUseCase) SummaryByCode(code string) (*model.TravelSummary, error) {
	return f.summary, f.err
}

func (f *fakeSummaryUseCase) SummaryByName(name string) (*model.TravelSummary, error) {
	return f.summary, f.err
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func newDestinationServer(useCase *fakeDestinationUseCase) *echo.Echo {
	e := echo.New()
	destinationController := controller.NewDestinationController(e.Group(""), useCase)
	destinationController.InitDestinationRoutes()
	return e
}

func TestFindPopularDestinations(t *testing.T) {
	useCase := &fakeDestinationUseCase{popular: []model.Destination{
		{CountryCode: "JP", CountryName: "Japan", Capital: "Tokyo", Region: "Asia",
			Currencies: []string{"JPY"}, Languages: []string{"Japanese"}},
	}}
	rec := doRequest(newDestinationServer(useCase), http.MethodGet, "/destinations", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var destinations []model.Destination
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &destinations))
	require.Len(t, destinations, 1)
	assert.Equal(t, "JP", destinations[0].CountryCode)
}

func TestFindPopularDestinations_Unavailable(t *testing.T) {
	useCase := &fakeDestinationUseCase{popularErr: model.NewUnavailableError("Failed to fetch country data: boom")}
	rec := doRequest(newDestinationServer(useCase), http.MethodGet, "/destinations", "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, errorBody(t, rec), "Failed to fetch country data")
}

func TestSearchDestinationByName(t *testing.T) {
	useCase := &fakeDestinationUseCase{searchResp: &model.CountryCodeResponse{CountryCode: "JP", CountryName: "Japan"}}
	rec := doRequest(newDestinationServer(useCase), http.MethodGet, "/destinations/search?country=Japan", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.CountryCodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "JP", result.CountryCode)
}

func TestSearchDestinationByName_MissingParam(t *testing.T) {
	rec := doRequest(newDestinationServer(&fakeDestinationUseCase{}), http.MethodGet, "/destinations/search", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "country query parameter is required", errorBody(t, rec))
}

func TestSearchDestinationByName_NotFound(t *testing.T) {
	useCase := &fakeDestinationUseCase{searchErr: model.NewNotFoundError("Country 'Wakanda' not found. Try: Japan...")}
	rec := doRequest(newDestinationServer(useCase), http.MethodGet, "/destinations/search?country=Wakanda", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorBody(t, rec), "Wakanda")
}

func TestFindDestinationByCode(t *testing.T) {
	useCase := &fakeDestinationUseCase{byCode: map[string]model.Destination{
		"FR": {CountryCode: "FR", CountryName: "France", Capital: "Paris"},
	}}
	rec := doRequest(newDestinationServer(useCase), http.MethodGet, "/destinations/fr", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var dest model.Destination
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dest))
	assert.Equal(t, "France", dest.CountryName)
}

func TestFindDestinationByCode_NotFound(t *testing.T) {
	rec := doRequest(newDestinationServer(&fakeDestinationUseCase{}), http.MethodGet, "/destinations/ZZ", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Country ZZ not found", errorBody(t, rec))
}

func newSummaryServer(useCase *fakeSummaryUseCase) *echo.Echo {
	e := echo.New()
	summaryController := controller.NewSummaryController(e.Group(""), useCase)
	summaryController.InitSummaryRoutes()
	return e
}

func TestGetTravelSummary(t *testing.T) {
	useCase := &fakeSummaryUseCase{summary: &model.TravelSummary{
		Destination: model.Destination{CountryCode: "JP", CountryName: "Japan", Capital: "Tokyo",
			Currencies: []string{"JPY"}, Languages: []string{"Japanese"}},
		CurrentWeather:  model.Weather{Location: "Tokyo", TemperatureCelsius: 21, WeatherDescription: "Clear sky"},
		TravelTips:      []string{"Weather is mild - pack versatile clothing"},
		BestTimeToVisit: "March-May (cherry blossoms) or October-November (autumn colors)",
	}}
	rec := doRequest(newSummaryServer(useCase), http.MethodPost, "/travel-summary", `{"country_code":"JP"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaryBody map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaryBody))
	assert.Equal(t, "JP", summaryBody["country_code"])
	assert.NotNil(t, summaryBody["current_weather"])
	assert.NotNil(t, summaryBody["travel_tips"])
}

func TestGetTravelSummary_MissingCode(t *testing.T) {
	useCase := &fakeSummaryUseCase{err: model.NewInvalidInputError("country_code is required")}
	rec := doRequest(newSummaryServer(useCase), http.MethodPost, "/travel-summary", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "country_code is required", errorBody(t, rec))
}

func TestGetTravelSummary_GeocodingFailure(t *testing.T) {
	useCase := &fakeSummaryUseCase{err: model.NewUnavailableError("Could not find coordinates for Tokyo")}
	rec := doRequest(newSummaryServer(useCase), http.MethodPost, "/travel-summary", `{"country_code":"JP"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Could not find coordinates for Tokyo", errorBody(t, rec))
}

func TestGetTravelSummaryByName_NotFound(t *testing.T) {
	useCase := &fakeSummaryUseCase{err: model.NewNotFoundError("Country 'Wakanda' not found in destinations. Available countries: Japan...")}
	rec := doRequest(newSummaryServer(useCase), http.MethodPost, "/travel-summary-by-name", `{"country_name":"Wakanda"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorBody(t, rec), "not found in destinations")
}

func TestGetServiceInfo(t *testing.T) {
	e := echo.New()
	infoController := controller.NewInfoController(e.Group(""))
	infoController.InitInfoRoutes()

	rec := doRequest(e, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var info model.ServiceInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Travel Data Aggregator API", info.Message)
	assert.Contains(t, info.Endpoints, "travel_summary")
}

func TestCheckHealth(t *testing.T) {
	e := echo.New()
	healthController := controller.NewHealthController(e.Group(""), health.NewHealthUseCase("travel-api"))
	healthController.InitHealthRoutes()

	rec := doRequest(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var healthBody model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &healthBody))
	assert.Equal(t, model.StatusUp, healthBody.Status)
}
