package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/rack/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// ReservationHandler serves rack unit reservation endpoints.
type ReservationHandler struct {
	reserveUseCase *usecases.ReserveUnitsUseCase
	cancelUseCase  *usecases.CancelReservationUseCase
	logger         logger.Interface
}

func NewReservationHandler(
	reserveUseCase *usecases.ReserveUnitsUseCase,
	cancelUseCase *usecases.CancelReservationUseCase,
	logger logger.Interface,
) *ReservationHandler {
	return &ReservationHandler{
		reserveUseCase: reserveUseCase,
		cancelUseCase:  cancelUseCase,
		logger:         logger,
	}
}

type reserveUnitsRequest struct {
	RackID      uint   `json:"rack_id" binding:"required"`
	Units       []int  `json:"units" binding:"required"`
	Owner       string `json:"owner" binding:"required"`
	Description string `json:"description"`
}

// Reserve handles POST /api/reservations
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reserveUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	reservation, err := h.reserveUseCase.Execute(c.Request.Context(), usecases.ReserveUnitsCommand{
		RackID:      req.RackID,
		Units:       req.Units,
		Owner:       req.Owner,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, reservation, "Units reserved successfully")
}

// Cancel handles DELETE /api/reservations/:id
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "reservation")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelReservationCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
