package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/rack/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// DeviceHandler serves device endpoints.
type DeviceHandler struct {
	mountUseCase *usecases.MountDeviceUseCase
	getUseCase   *usecases.GetDeviceUseCase
	listUseCase  *usecases.ListDevicesUseCase
	logger       logger.Interface
}

func NewDeviceHandler(
	mountUseCase *usecases.MountDeviceUseCase,
	getUseCase *usecases.GetDeviceUseCase,
	listUseCase *usecases.ListDevicesUseCase,
	logger logger.Interface,
) *DeviceHandler {
	return &DeviceHandler{
		mountUseCase: mountUseCase,
		getUseCase:   getUseCase,
		listUseCase:  listUseCase,
		logger:       logger,
	}
}

type mountDeviceRequest struct {
	Name      string   `json:"name" binding:"required"`
	SiteID    uint     `json:"site_id" binding:"required"`
	RackID    uint     `json:"rack_id"`
	Position  int      `json:"position"`
	Height    int      `json:"height"`
	Face      string   `json:"face"`
	FullDepth bool     `json:"full_depth"`
	Tags      []string `json:"tags"`
}

// Mount handles POST /api/devices
func (h *DeviceHandler) Mount(c *gin.Context) {
	var req mountDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	device, err := h.mountUseCase.Execute(c.Request.Context(), usecases.MountDeviceCommand{
		Name:      req.Name,
		SiteID:    req.SiteID,
		RackID:    req.RackID,
		Position:  req.Position,
		Height:    req.Height,
		Face:      req.Face,
		FullDepth: req.FullDepth,
		Tags:      req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, device, "Device mounted successfully")
}

// Get handles GET /api/devices/:id
func (h *DeviceHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	device, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetDeviceQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, device)
}

// ListByRack handles GET /api/racks/:id/devices
func (h *DeviceHandler) ListByRack(c *gin.Context) {
	rackID, err := utils.ParseUintParam(c, "id", "rack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListDevicesQuery{RackID: rackID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
