package internal

import (
	"agentcrm/internal/controllers"
	"agentcrm/internal/providers"
	"net/http"
)

func InitRoutes(apiController *controllers.ApiController, healthController *controllers.HealthController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/health", http.HandlerFunc(healthController.Health))
	routers.Get("/api/summary", http.HandlerFunc(apiController.GetSummary))
	routers.Get("/api/clients", http.HandlerFunc(apiController.GetClients))
	routers.Post("/api/clients", http.HandlerFunc(apiController.CreateClient))
	routers.Get("/api/deals", http.HandlerFunc(apiController.GetDeals))
	routers.Get("/api/pipeline", http.HandlerFunc(apiController.GetPipeline))
	return routers
}
