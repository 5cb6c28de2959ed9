package controllers

import (
	"github.com/gin-gonic/gin"

	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetSubscriptionReport godoc
// @Summary Aggregate subscription counts by status
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/reports/subscriptions [get]
func (r *ReportController) GetSubscriptionReport(c *gin.Context) {
	report, err := r.reportService.BuildSubscriptionReport(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Subscription report fetched successfully")
}
