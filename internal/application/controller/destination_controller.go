package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/usecase/destination"
)

type DestinationController struct {
	api     *echo.Group
	useCase destination.UseCase
}

func NewDestinationController(api *echo.Group, useCase destination.UseCase) *DestinationController {
	return &DestinationController{api: api, useCase: useCase}
}

// InitDestinationRoutes initializes destination routes
func (controller *DestinationController) InitDestinationRoutes() {
	controller.api.GET("/destinations", controller.FindPopularDestinations)
	controller.api.GET("/destinations/search", controller.SearchDestinationByName)
	controller.api.GET("/destinations/:code", controller.FindDestinationByCode)
}

// FindPopularDestinations godoc
// @Summary List popular travel destinations
// @Description Fetch the fixed popular-destination set from the country directory
// @Tags destinations
// @Produce json
// @Success 200 {array} model.Destination "Popular destinations"
// @Failure 503 {object} map[string]string "Country directory unavailable"
// @Router /destinations [get]
func (controller *DestinationController) FindPopularDestinations(c echo.Context) error {
	destinations, err := controller.useCase.ListPopular()
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, destinations)
}

// SearchDestinationByName godoc
// @Summary Resolve a country name to its code
// @Description Match the name against the popular set, falling back to an upstream name search
// @Tags destinations
// @Produce json
// @Param country query string true "Country name (partial match)"
// @Success 200 {object} model.CountryCodeResponse "Matching country code"
// @Failure 400 {object} map[string]string "Missing country parameter"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 503 {object} map[string]string "Country directory unavailable"
// @Router /destinations/search [get]
func (controller *DestinationController) SearchDestinationByName(c echo.Context) error {
	country := c.QueryParam("country")
	if country == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "country query parameter is required"})
	}

	result, err := controller.useCase.SearchByName(country)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// FindDestinationByCode godoc
// @Summary Get detailed country info
// @Description Fetch a single destination by its two-letter country code
// @Tags destinations
// @Produce json
// @Param code path string true "Country code (ISO 3166-1 alpha-2)"
// @Success 200 {object} model.Destination "Destination details"
// @Failure 404 {object} map[string]string "Unknown country code"
// @Failure 503 {object} map[string]string "Country directory unavailable"
// @Router /destinations/{code} [get]
func (controller *DestinationController) FindDestinationByCode(c echo.Context) error {
	dest, err := controller.useCase.GetByCode(c.Param("code"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, dest)
}
