// Package http wires repositories, use cases, handlers, and routes into a
// Gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	rackusecases "patchbay/internal/application/rack/usecases"
	topologyusecases "patchbay/internal/application/topology/usecases"
	"patchbay/internal/infrastructure/config"
	"patchbay/internal/infrastructure/repository"
	"patchbay/internal/interfaces/http/handlers"
	"patchbay/internal/interfaces/http/middleware"
	"patchbay/internal/interfaces/http/routes"
	shareddb "patchbay/internal/shared/db"
	"patchbay/internal/shared/logger"
)

// NewRouter builds the Gin engine with all middleware, handlers, and routes.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Repositories
	cableRepo := repository.NewCableRepository(db, log)
	portRepo := repository.NewPortRepository(db, log)
	circuitRepo := repository.NewCircuitRepository(db, log)
	topologyReader := repository.NewTopologyReader(db, log)
	rackRepo := repository.NewRackRepository(db, log)
	deviceRepo := repository.NewDeviceRepository(db, log)
	siteRepo := repository.NewSiteRepository(db, log)
	reservationRepo := repository.NewReservationRepository(db, log)
	txManager := shareddb.NewTransactionManager(db)

	// Topology use cases
	traceUC := topologyusecases.NewTraceCablePathUseCase(topologyReader, log)
	connectUC := topologyusecases.NewConnectCableUseCase(cableRepo, log)
	disconnectUC := topologyusecases.NewDisconnectCableUseCase(cableRepo, log)
	getCableUC := topologyusecases.NewGetCableUseCase(cableRepo, log)
	listCablesUC := topologyusecases.NewListCablesUseCase(cableRepo, log)
	createPortUC := topologyusecases.NewCreatePortUseCase(portRepo, log)
	createCircuitUC := topologyusecases.NewCreateCircuitUseCase(circuitRepo, log)
	createCircuitTermUC := topologyusecases.NewCreateCircuitTerminationUseCase(circuitRepo, log)

	// Rack use cases
	createRackUC := rackusecases.NewCreateRackUseCase(rackRepo, siteRepo, log)
	getRackUC := rackusecases.NewGetRackUseCase(rackRepo, log)
	listRacksUC := rackusecases.NewListRacksUseCase(rackRepo, log)
	deleteRackUC := rackusecases.NewDeleteRackUseCase(rackRepo, deviceRepo, reservationRepo, txManager, log)
	elevationUC := rackusecases.NewGetRackElevationUseCase(rackRepo, deviceRepo, reservationRepo, log)
	rackUnitsUC := rackusecases.NewListRackUnitsUseCase(rackRepo, deviceRepo, log)
	mountDeviceUC := rackusecases.NewMountDeviceUseCase(deviceRepo, rackRepo, siteRepo, log)
	getDeviceUC := rackusecases.NewGetDeviceUseCase(deviceRepo, log)
	listDevicesUC := rackusecases.NewListDevicesUseCase(rackRepo, deviceRepo, log)
	createSiteUC := rackusecases.NewCreateSiteUseCase(siteRepo, log)
	getSiteUC := rackusecases.NewGetSiteUseCase(siteRepo, log)
	listSitesUC := rackusecases.NewListSitesUseCase(siteRepo, log)
	reserveUC := rackusecases.NewReserveUnitsUseCase(reservationRepo, rackRepo, log)
	cancelReservationUC := rackusecases.NewCancelReservationUseCase(reservationRepo, log)

	routes.SetupTopologyRoutes(router, &routes.TopologyRouteConfig{
		TraceHandler:   handlers.NewTraceHandler(traceUC, cfg.Trace.FollowCircuitsDefault, log),
		CableHandler:   handlers.NewCableHandler(connectUC, disconnectUC, getCableUC, listCablesUC, log),
		PortHandler:    handlers.NewPortHandler(createPortUC, log),
		CircuitHandler: handlers.NewCircuitHandler(createCircuitUC, createCircuitTermUC, log),
	})

	routes.SetupRackRoutes(router, &routes.RackRouteConfig{
		RackHandler:        handlers.NewRackHandler(createRackUC, getRackUC, listRacksUC, deleteRackUC, elevationUC, rackUnitsUC, log),
		DeviceHandler:      handlers.NewDeviceHandler(mountDeviceUC, getDeviceUC, listDevicesUC, log),
		SiteHandler:        handlers.NewSiteHandler(createSiteUC, getSiteUC, listSitesUC, log),
		ReservationHandler: handlers.NewReservationHandler(reserveUC, cancelReservationUC, log),
	})

	return router
}
