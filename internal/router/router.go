package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/handler"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/middleware"
)

// Setup sets up all routes.
func Setup(
	h *server.Hertz,
	chatHandler *handler.ChatHandler,
	catalogHandler *handler.CatalogHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// All routes sit under /api, mirroring what the SPA calls.
	api := h.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Chat
		api.POST("/chat", chatHandler.Chat)
		api.GET("/history", chatHandler.History)
		api.POST("/session/new", chatHandler.NewSession)

		// Catalog
		api.GET("/menu", catalogHandler.Menu)
		api.GET("/vendors", catalogHandler.Vendors)
	}
}
