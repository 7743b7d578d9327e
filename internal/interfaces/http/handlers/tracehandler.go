// Package handlers contains the Gin HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/topology/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// TraceHandler serves cable path traces for a termination.
type TraceHandler struct {
	traceUseCase          *usecases.TraceCablePathUseCase
	followCircuitsDefault bool
	logger                logger.Interface
}

func NewTraceHandler(
	traceUseCase *usecases.TraceCablePathUseCase,
	followCircuitsDefault bool,
	logger logger.Interface,
) *TraceHandler {
	return &TraceHandler{
		traceUseCase:          traceUseCase,
		followCircuitsDefault: followCircuitsDefault,
		logger:                logger,
	}
}

// Trace handles GET /api/terminations/:kind/:id/trace
func (h *TraceHandler) Trace(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "termination")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	kind := c.Param("kind")
	if kind == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "termination kind is required")
		return
	}

	followCircuits := utils.ParseBoolQuery(c, "follow_circuits", h.followCircuitsDefault)

	paths, err := h.traceUseCase.Execute(c.Request.Context(), usecases.TraceCablePathQuery{
		Kind:           kind,
		ID:             id,
		FollowCircuits: followCircuits,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"paths": paths})
}
