package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/topology/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// PortHandler serves port creation endpoints.
type PortHandler struct {
	createUseCase *usecases.CreatePortUseCase
	logger        logger.Interface
}

func NewPortHandler(createUseCase *usecases.CreatePortUseCase, logger logger.Interface) *PortHandler {
	return &PortHandler{
		createUseCase: createUseCase,
		logger:        logger,
	}
}

type createPortRequest struct {
	DeviceID         uint   `json:"device_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Kind             string `json:"kind" binding:"required"`
	Positions        int    `json:"positions"`
	RearPortID       uint   `json:"rear_port_id"`
	RearPortPosition int    `json:"rear_port_position"`
}

// Create handles POST /api/ports
func (h *PortHandler) Create(c *gin.Context) {
	var req createPortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	port, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePortCommand{
		DeviceID:         req.DeviceID,
		Name:             req.Name,
		Kind:             req.Kind,
		Positions:        req.Positions,
		RearPortID:       req.RearPortID,
		RearPortPosition: req.RearPortPosition,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, port, "Port created successfully")
}
