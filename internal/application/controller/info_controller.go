package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
)

type InfoController struct {
	api *echo.Group
}

func NewInfoController(api *echo.Group) *InfoController {
	return &InfoController{api: api}
}

// InitInfoRoutes initializes the service descriptor route
func (controller *InfoController) InitInfoRoutes() {
	controller.api.GET("/", controller.GetServiceInfo)
}

// GetServiceInfo godoc
// @Summary Service descriptor
// @Description Describe the service, its data sources and available endpoints
// @Tags info
// @Produce json
// @Success 200 {object} model.ServiceInfo "Service descriptor"
// @Router / [get]
func (controller *InfoController) GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, model.NewServiceInfo())
}
