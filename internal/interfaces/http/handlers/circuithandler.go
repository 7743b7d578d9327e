package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/topology/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// CircuitHandler serves provider circuit endpoints.
type CircuitHandler struct {
	createUseCase            *usecases.CreateCircuitUseCase
	createTerminationUseCase *usecases.CreateCircuitTerminationUseCase
	logger                   logger.Interface
}

func NewCircuitHandler(
	createUseCase *usecases.CreateCircuitUseCase,
	createTerminationUseCase *usecases.CreateCircuitTerminationUseCase,
	logger logger.Interface,
) *CircuitHandler {
	return &CircuitHandler{
		createUseCase:            createUseCase,
		createTerminationUseCase: createTerminationUseCase,
		logger:                   logger,
	}
}

type createCircuitRequest struct {
	CID      string `json:"cid" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

// Create handles POST /api/circuits
func (h *CircuitHandler) Create(c *gin.Context) {
	var req createCircuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	circuit, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCircuitCommand{
		CID:      req.CID,
		Provider: req.Provider,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, circuit, "Circuit created successfully")
}

type createCircuitTerminationRequest struct {
	Side   string `json:"side" binding:"required"`
	SiteID uint   `json:"site_id"`
}

// CreateTermination handles POST /api/circuits/:id/terminations
func (h *CircuitHandler) CreateTermination(c *gin.Context) {
	circuitID, err := utils.ParseUintParam(c, "id", "circuit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createCircuitTerminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	termination, err := h.createTerminationUseCase.Execute(c.Request.Context(), usecases.CreateCircuitTerminationCommand{
		CircuitID: circuitID,
		Side:      req.Side,
		SiteID:    req.SiteID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, termination, "Circuit termination created successfully")
}
