package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/request_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GetPlan godoc
// @Summary Fetch the premium plan configuration
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/plans/premium [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	plan, err := p.planService.GetPlan(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// UpdatePrice godoc
// @Summary Update the premium plan price
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePriceRequest true "Price payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/plans/premium/price [put]
func (p *PlanController) UpdatePrice(c *gin.Context) {
	var req request_models.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.planService.UpdatePrice(c.Request.Context(), req.PriceMinor); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Price updated successfully")
}

// AddFeature godoc
// @Summary Add a premium feature
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.AddFeatureRequest true "Feature payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/plans/premium/features [post]
func (p *PlanController) AddFeature(c *gin.Context) {
	var req request_models.AddFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.planService.AddFeature(c.Request.Context(), req.Feature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feature added successfully")
}

// UpdateFeature godoc
// @Summary Rename a premium feature in place
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.UpdateFeatureRequest true "Feature payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/plans/premium/features [put]
func (p *PlanController) UpdateFeature(c *gin.Context) {
	var req request_models.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.planService.UpdateFeature(c.Request.Context(), req.OldFeature, req.NewFeature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feature updated successfully")
}

// DeleteFeature godoc
// @Summary Remove a premium feature
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.DeleteFeatureRequest true "Feature payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/plans/premium/features [delete]
func (p *PlanController) DeleteFeature(c *gin.Context) {
	var req request_models.DeleteFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.planService.DeleteFeature(c.Request.Context(), req.Feature); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feature deleted successfully")
}
