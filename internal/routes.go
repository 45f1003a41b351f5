package internal

import (
	"net/http"

	"chatalyzer/internal/controllers"
	"chatalyzer/internal/providers"
	"chatalyzer/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/api/analyze", http.HandlerFunc(apiController.AnalyzeFile))
	routers.Post("/api/analyze/text", http.HandlerFunc(apiController.AnalyzeText))
	routers.Post("/api/analyze/upload", http.HandlerFunc(apiController.AnalyzeUpload))
	return routers
}
