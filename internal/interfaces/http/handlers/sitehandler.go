package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patchbay/internal/application/rack/usecases"
	"patchbay/internal/shared/logger"
	"patchbay/internal/shared/utils"
)

// SiteHandler serves site endpoints.
type SiteHandler struct {
	createUseCase *usecases.CreateSiteUseCase
	getUseCase    *usecases.GetSiteUseCase
	listUseCase   *usecases.ListSitesUseCase
	logger        logger.Interface
}

func NewSiteHandler(
	createUseCase *usecases.CreateSiteUseCase,
	getUseCase *usecases.GetSiteUseCase,
	listUseCase *usecases.ListSitesUseCase,
	logger logger.Interface,
) *SiteHandler {
	return &SiteHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		logger:        logger,
	}
}

type createSiteRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// Create handles POST /api/sites
func (h *SiteHandler) Create(c *gin.Context) {
	var req createSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	site, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateSiteCommand{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, site, "Site created successfully")
}

// Get handles GET /api/sites/:id
func (h *SiteHandler) Get(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	site, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetSiteQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, site)
}

// List handles GET /api/sites
func (h *SiteHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListSitesQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Sites, result.Total, page, pageSize)
}
