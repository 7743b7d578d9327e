package routes

import (
	"github.com/gin-gonic/gin"

	"patchbay/internal/interfaces/http/handlers"
)

// RackRouteConfig holds the handlers for site, rack, device, and
// reservation routes.
type RackRouteConfig struct {
	RackHandler        *handlers.RackHandler
	DeviceHandler      *handlers.DeviceHandler
	SiteHandler        *handlers.SiteHandler
	ReservationHandler *handlers.ReservationHandler
}

// SetupRackRoutes registers the rack management routes.
func SetupRackRoutes(router *gin.Engine, cfg *RackRouteConfig) {
	api := router.Group("/api")
	{
		sites := api.Group("/sites")
		{
			sites.POST("", cfg.SiteHandler.Create)
			sites.GET("", cfg.SiteHandler.List)
			sites.GET("/:id", cfg.SiteHandler.Get)
		}

		racks := api.Group("/racks")
		{
			racks.POST("", cfg.RackHandler.Create)
			racks.GET("", cfg.RackHandler.List)
			racks.GET("/:id", cfg.RackHandler.Get)
			racks.DELETE("/:id", cfg.RackHandler.Delete)
			racks.GET("/:id/elevation", cfg.RackHandler.Elevation)
			racks.GET("/:id/units", cfg.RackHandler.Units)
			racks.GET("/:id/devices", cfg.DeviceHandler.ListByRack)
		}

		devices := api.Group("/devices")
		{
			devices.POST("", cfg.DeviceHandler.Mount)
			devices.GET("/:id", cfg.DeviceHandler.Get)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", cfg.ReservationHandler.Reserve)
			reservations.DELETE("/:id", cfg.ReservationHandler.Cancel)
		}
	}
}
