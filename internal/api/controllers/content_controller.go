package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/request_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetSitePreview godoc
// @Summary Preview the marketing site content from live configuration
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/site-preview [get]
func (s *ContentController) GetSitePreview(c *gin.Context) {
	preview, err := s.contentService.BuildSitePreview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, preview, "Site preview built successfully")
}

// SuggestCopy godoc
// @Summary Draft marketing copy for a landing-page section
// @Tags Content
// @Accept json
// @Produce json
// @Param request body request_models.SuggestCopyRequest true "Section payload"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/site-preview/suggest-copy [post]
func (s *ContentController) SuggestCopy(c *gin.Context) {
	var req request_models.SuggestCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	suggestion, err := s.contentService.SuggestCopy(c.Request.Context(), req.Section)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Copy suggestion generated")
}
