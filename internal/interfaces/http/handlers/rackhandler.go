package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/rack/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// RackHandler serves rack CRUD and elevation endpoints.
type RackHandler struct {
	createUseCase    *usecases.CreateRackUseCase
	getUseCase       *usecases.GetRackUseCase
	listUseCase      *usecases.ListRacksUseCase
	deleteUseCase    *usecases.DeleteRackUseCase
	elevationUseCase *usecases.GetRackElevationUseCase
	unitsUseCase     *usecases.ListRackUnitsUseCase
	logger           logger.Interface
}

func NewRackHandler(
	createUseCase *usecases.CreateRackUseCase,
	getUseCase *usecases.GetRackUseCase,
	listUseCase *usecases.ListRacksUseCase,
	deleteUseCase *usecases.DeleteRackUseCase,
	elevationUseCase *usecases.GetRackElevationUseCase,
	unitsUseCase *usecases.ListRackUnitsUseCase,
	logger logger.Interface,
) *RackHandler {
	return &RackHandler{
		createUseCase:    createUseCase,
		getUseCase:       getUseCase,
		listUseCase:      listUseCase,
		deleteUseCase:    deleteUseCase,
		elevationUseCase: elevationUseCase,
		unitsUseCase:     unitsUseCase,
		logger:           logger,
	}
}

type createRackRequest struct {
	Name      string `json:"name" binding:"required"`
	SiteID    uint   `json:"site_id" binding:"required"`
	UHeight   int    `json:"u_height"`
	DescUnits bool   `json:"desc_units"`
}

// Create handles POST /api/racks
func (h *RackHandler) Create(c *gin.Context) {
	var req createRackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	rackDTO, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateRackCommand{
		Name:      req.Name,
		SiteID:    req.SiteID,
		UHeight:   req.UHeight,
		DescUnits: req.DescUnits,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, rackDTO, "Rack created successfully")
}

// Get handles GET /api/racks/:id
func (h *RackHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "rack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rackDTO, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetRackQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, rackDTO)
}

// List handles GET /api/racks
func (h *RackHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	var siteID uint
	if raw := c.Query("site_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid site_id")
			return
		}
		siteID = uint(parsed)
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListRacksQuery{
		SiteID:   siteID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Racks, result.Total, page, pageSize)
}

// Delete handles DELETE /api/racks/:id
func (h *RackHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "rack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteRackCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Elevation handles GET /api/racks/:id/elevation
func (h *RackHandler) Elevation(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "rack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	slots, err := h.elevationUseCase.Execute(c.Request.Context(), usecases.GetRackElevationQuery{
		RackID:    id,
		Face:      c.Query("face"),
		Summarize: utils.ParseBoolQuery(c, "summarize", false),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"rack_id": id, "slots": slots})
}

// Units handles GET /api/racks/:id/units
func (h *RackHandler) Units(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "rack")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var excludeDeviceID uint
	if raw := c.Query("exclude"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid exclude device ID")
			return
		}
		excludeDeviceID = uint(parsed)
	}

	result, err := h.unitsUseCase.Execute(c.Request.Context(), usecases.ListRackUnitsQuery{
		RackID:          id,
		ExcludeDeviceID: excludeDeviceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
