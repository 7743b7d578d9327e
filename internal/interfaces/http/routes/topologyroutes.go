// Package routes registers the HTTP route groups.
package routes

import (
	"github.com/gin-gonic/gin"

	"patchbay/internal/interfaces/http/handlers"
)

// TopologyRouteConfig holds the handlers for cable, port, circuit, and
// trace routes.
type TopologyRouteConfig struct {
	TraceHandler   *handlers.TraceHandler
	CableHandler   *handlers.CableHandler
	PortHandler    *handlers.PortHandler
	CircuitHandler *handlers.CircuitHandler
}

// SetupTopologyRoutes registers the cable topology routes.
func SetupTopologyRoutes(router *gin.Engine, cfg *TopologyRouteConfig) {
	api := router.Group("/api")
	{
		api.GET("/terminations/:kind/:id/trace", cfg.TraceHandler.Trace)

		cables := api.Group("/cables")
		{
			cables.POST("", cfg.CableHandler.Connect)
			cables.GET("", cfg.CableHandler.List)
			cables.GET("/:id", cfg.CableHandler.Get)
			cables.DELETE("/:id", cfg.CableHandler.Disconnect)
		}

		api.POST("/ports", cfg.PortHandler.Create)

		circuits := api.Group("/circuits")
		{
			circuits.POST("", cfg.CircuitHandler.Create)
			circuits.POST("/:id/terminations", cfg.CircuitHandler.CreateTermination)
		}
	}
}
