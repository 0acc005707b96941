package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "travel-api/configs"
	_ "travel-api/docs"
	"travel-api/internal/application/controller"
	"travel-api/internal/application/middleware"
	apigateway "travel-api/internal/domain/gateway/api"
	"travel-api/internal/domain/usecase/destination"
	"travel-api/internal/domain/usecase/health"
	"travel-api/internal/domain/usecase/summary"
	httpclient "travel-api/pkg/http"
	"travel-api/pkg/log"
	"travel-api/pkg/msg"
	"travel-api/pkg/resource"
)

// @title Travel Data Aggregator API
// @version 1.0.0
// @description Aggregates data from multiple public APIs to provide travel information
// @BasePath /
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupCORS(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateways
	upstreamTimeout := resource.GetDuration("app.upstream.timeout")
	clientOptions := httpclient.ClientOptions{
		FollowRedirect:    true,
		ConnectionTimeout: upstreamTimeout,
		ReadTimeout:       upstreamTimeout,
	}
	countryGateway := apigateway.NewCountryGateway(resource.GetString("app.upstream.rest-countries.url"), clientOptions)
	geocodingGateway := apigateway.NewGeocodingGateway(resource.GetString("app.upstream.geocoding.url"), clientOptions)
	weatherGateway := apigateway.NewWeatherGateway(resource.GetString("app.upstream.open-meteo.url"), clientOptions)

	// Init UseCase
	destinationUseCase := destination.NewDestinationUseCase(countryGateway)
	summaryUseCase := summary.NewSummaryUseCase(destinationUseCase, geocodingGateway, weatherGateway)
	healthUseCase := health.NewHealthUseCase(resource.GetString("app.name"))

	// Init Controller
	infoController := controller.NewInfoController(api)
	destinationController := controller.NewDestinationController(api, destinationUseCase)
	summaryController := controller.NewSummaryController(api, summaryUseCase)
	healthController := controller.NewHealthController(api, healthUseCase)

	// Init Routes
	infoController.InitInfoRoutes()
	destinationController.InitDestinationRoutes()
	summaryController.InitSummaryRoutes()
	healthController.InitHealthRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
