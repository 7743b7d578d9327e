package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/topology/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// CableHandler serves cable CRUD endpoints.
type CableHandler struct {
	connectUseCase    *usecases.ConnectCableUseCase
	disconnectUseCase *usecases.DisconnectCableUseCase
	getUseCase        *usecases.GetCableUseCase
	listUseCase       *usecases.ListCablesUseCase
	logger            logger.Interface
}

func NewCableHandler(
	connectUseCase *usecases.ConnectCableUseCase,
	disconnectUseCase *usecases.DisconnectCableUseCase,
	getUseCase *usecases.GetCableUseCase,
	listUseCase *usecases.ListCablesUseCase,
	logger logger.Interface,
) *CableHandler {
	return &CableHandler{
		connectUseCase:    connectUseCase,
		disconnectUseCase: disconnectUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		logger:            logger,
	}
}

type cableEndRequest struct {
	Kind  string `json:"kind" binding:"required"`
	ID    uint   `json:"id" binding:"required"`
	Label string `json:"label"`
}

type connectCableRequest struct {
	EndA       cableEndRequest `json:"end_a" binding:"required"`
	EndB       cableEndRequest `json:"end_b" binding:"required"`
	Status     string          `json:"status"`
	Label      string          `json:"label"`
	Length     float64         `json:"length"`
	LengthUnit string          `json:"length_unit"`
	Tags       []string        `json:"tags"`
}

// Connect handles POST /api/cables
func (h *CableHandler) Connect(c *gin.Context) {
	var req connectCableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	cable, err := h.connectUseCase.Execute(c.Request.Context(), usecases.ConnectCableCommand{
		EndA:       usecases.CableEnd{Kind: req.EndA.Kind, ID: req.EndA.ID, Label: req.EndA.Label},
		EndB:       usecases.CableEnd{Kind: req.EndB.Kind, ID: req.EndB.ID, Label: req.EndB.Label},
		Status:     req.Status,
		Label:      req.Label,
		Length:     req.Length,
		LengthUnit: req.LengthUnit,
		Tags:       req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, cable, "Cable connected successfully")
}

// Get handles GET /api/cables/:id
func (h *CableHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "cable")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cable, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetCableQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, cable)
}

// List handles GET /api/cables
func (h *CableHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListCablesQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cables, result.Total, page, pageSize)
}

// Disconnect handles DELETE /api/cables/:id
func (h *CableHandler) Disconnect(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "cable")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.disconnectUseCase.Execute(c.Request.Context(), usecases.DisconnectCableCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
