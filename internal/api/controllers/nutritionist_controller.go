package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/request_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type NutritionistController struct {
	nutritionistService services.NutritionistServiceInterface
}

func NewNutritionistController(nutritionistService services.NutritionistServiceInterface) *NutritionistController {
	return &NutritionistController{
		nutritionistService: nutritionistService,
	}
}

// SubmitApplication godoc
// @Summary Submit a nutritionist application
// @Description Uploads the certificate and creates the application record
// @Tags Nutritionists
// @Accept multipart/form-data
// @Produce json
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param email formData string true "Email"
// @Param dob formData string false "Date of birth"
// @Param certificate formData file true "Certificate file"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /nutritionist/apply [post]
func (n *NutritionistController) SubmitApplication(c *gin.Context) {
	var req request_models.SubmitApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	fileHeader, err := c.FormFile("certificate")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Certificate file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read certificate file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	app, err := n.nutritionistService.Submit(c.Request.Context(), req, file, fileHeader.Size, fileHeader.Filename, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, app, "Application submitted successfully")
}

// ListApplications godoc
// @Summary List nutritionist applications
// @Tags Nutritionists
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/nutritionists [get]
func (n *NutritionistController) ListApplications(c *gin.Context) {
	apps, err := n.nutritionistService.ListApplications(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, apps, "Applications fetched successfully")
}

// ApproveApplication godoc
// @Summary Approve a pending nutritionist application
// @Tags Nutritionists
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/nutritionists/{id}/approve [post]
func (n *NutritionistController) ApproveApplication(c *gin.Context) {
	accountID := c.Param("id")
	if accountID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	result, err := n.nutritionistService.Approve(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Application approved"
	if len(result.Warnings) > 0 {
		message = "Application approved, but the notification email failed"
	}
	utils.RespondSuccess(c, result, message)
}

// RejectApplication godoc
// @Summary Reject a pending nutritionist application
// @Tags Nutritionists
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.RejectApplicationRequest false "Rejection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/nutritionists/{id}/reject [post]
func (n *NutritionistController) RejectApplication(c *gin.Context) {
	accountID := c.Param("id")
	if accountID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	var req request_models.RejectApplicationRequest
	_ = c.ShouldBindJSON(&req) // body optional; empty reason gets the default

	result, err := n.nutritionistService.Reject(c.Request.Context(), accountID, req.RejectionReason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Application rejected"
	if len(result.Warnings) > 0 {
		message = "Application rejected, but the notification email failed"
	}
	utils.RespondSuccess(c, result, message)
}

// GetCertificateURL godoc
// @Summary Get a time-boxed signed URL for an applicant's certificate
// @Tags Nutritionists
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/nutritionists/{id}/certificate-url [get]
func (n *NutritionistController) GetCertificateURL(c *gin.Context) {
	accountID := c.Param("id")
	if accountID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	result, err := n.nutritionistService.CertificateURL(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Certificate URL issued")
}
