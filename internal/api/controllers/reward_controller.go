package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/request_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type RewardController struct {
	rewardService services.RewardServiceInterface
}

func NewRewardController(rewardService services.RewardServiceInterface) *RewardController {
	return &RewardController{
		rewardService: rewardService,
	}
}

// ListRewards godoc
// @Summary List the configured rewards for one catalog
// @Tags Rewards
// @Produce json
// @Param kind query string true "Catalog kind: basic | premium"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/rewards [get]
func (r *RewardController) ListRewards(c *gin.Context) {
	kind, ok := parseRewardKind(c.Query("kind"))
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "kind must be one of: basic, premium")
		return
	}

	rewards, err := r.rewardService.ListRewards(c.Request.Context(), kind)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rewards, "Rewards fetched successfully")
}

// AddBasicReward godoc
// @Summary Add a basic-tier reward
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.AddBasicRewardRequest true "Reward payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/rewards/basic [post]
func (r *RewardController) AddBasicReward(c *gin.Context) {
	var req request_models.AddBasicRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reward, err := r.rewardService.AddBasicReward(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reward, "Reward added successfully")
}

// AddPremiumReward godoc
// @Summary Add a premium-tier reward
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.AddPremiumRewardRequest true "Reward payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/rewards/premium [post]
func (r *RewardController) AddPremiumReward(c *gin.Context) {
	var req request_models.AddPremiumRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reward, err := r.rewardService.AddPremiumReward(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reward, "Reward added successfully")
}

// EditReward godoc
// @Summary Edit a reward's quantity, discount or points threshold
// @Tags Rewards
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body request_models.EditRewardRequest true "Edit payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/rewards/{id} [put]
func (r *RewardController) EditReward(c *gin.Context) {
	var req request_models.EditRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reward, err := r.rewardService.EditReward(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reward, "Reward updated successfully")
}

// DeleteReward godoc
// @Summary Delete a reward
// @Tags Rewards
// @Produce json
// @Param id path string true "Reward ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/rewards/{id} [delete]
func (r *RewardController) DeleteReward(c *gin.Context) {
	if err := r.rewardService.DeleteReward(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reward deleted successfully")
}

func parseRewardKind(raw string) (db_models.RewardKind, bool) {
	switch raw {
	case "basic":
		return db_models.RewardKindBasic, true
	case "premium":
		return db_models.RewardKindPremium, true
	default:
		return "", false
	}
}
