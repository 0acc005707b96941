package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
	"travel-api/internal/domain/usecase/summary"
)

type SummaryController struct {
	api     *echo.Group
	useCase summary.UseCase
}

func NewSummaryController(api *echo.Group, useCase summary.UseCase) *SummaryController {
	return &SummaryController{api: api, useCase: useCase}
}

// InitSummaryRoutes initializes travel summary routes
func (controller *SummaryController) InitSummaryRoutes() {
	controller.api.POST("/travel-summary", controller.GetTravelSummary)
	controller.api.POST("/travel-summary-by-name", controller.GetTravelSummaryByName)
}

// GetTravelSummary godoc
// @Summary Get aggregated travel summary
// @Description Aggregate country info, current capital weather and travel tips for a country code
// @Tags travel-summary
// @Accept json
// @Produce json
// @Param request body model.TravelSummaryRequest true "Country code selector"
// @Success 200 {object} model.TravelSummary "Aggregated travel summary"
// @Failure 400 {object} map[string]string "Missing country code"
// @Failure 404 {object} map[string]string "Unknown country code"
// @Failure 503 {object} map[string]string "Upstream or geocoding failure"
// @Router /travel-summary [post]
func (controller *SummaryController) GetTravelSummary(c echo.Context) error {
	var request model.TravelSummaryRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := controller.useCase.SummaryByCode(request.CountryCode)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetTravelSummaryByName godoc
// @Summary Get aggregated travel summary by country name
// @Description Resolve the name against the popular-destination set, then aggregate the travel summary
// @Tags travel-summary
// @Accept json
// @Produce json
// @Param request body model.TravelSummaryByNameRequest true "Country name selector"
// @Success 200 {object} model.TravelSummary "Aggregated travel summary"
// @Failure 404 {object} map[string]string "Country not found"
// @Failure 503 {object} map[string]string "Upstream or geocoding failure"
// @Router /travel-summary-by-name [post]
func (controller *SummaryController) GetTravelSummaryByName(c echo.Context) error {
	var request model.TravelSummaryByNameRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := controller.useCase.SummaryByName(request.CountryName)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
