package controllers

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/request_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type VerificationController struct {
	verificationService services.VerificationServiceInterface
}

func NewVerificationController(verificationService services.VerificationServiceInterface) *VerificationController {
	return &VerificationController{
		verificationService: verificationService,
	}
}

// SendVerificationEmail godoc
// @Summary Send a verification email
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body request_models.SendVerificationRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /verify/send [post]
func (v *VerificationController) SendVerificationEmail(c *gin.Context) {
	var req request_models.SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if _, err := v.verificationService.Issue(c.Request.Context(), req.Email, req.WorkflowType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification email sent")
}

// ResendVerificationEmail godoc
// @Summary Resend the verification email for an existing token
// @Tags Verification
// @Accept json
// @Produce json
// @Param request body request_models.ResendVerificationRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Router /verify/resend [post]
func (v *VerificationController) ResendVerificationEmail(c *gin.Context) {
	var req request_models.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := v.verificationService.Resend(c.Request.Context(), req.Email, req.WorkflowType); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification email resent")
}

// CheckEmailVerification godoc
// @Summary Check whether an email has been verified
// @Tags Verification
// @Produce json
// @Param email query string true "Email address"
// @Param workflowType query string false "Workflow tag"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /verify/status [get]
func (v *VerificationController) CheckEmailVerification(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	verified, err := v.verificationService.CheckStatus(c.Request.Context(), email, c.Query("workflowType"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.VerificationStatusResponse{Verified: verified}, "Verification status fetched")
}

// VerifyEmailToken is the target of the emailed link. Its caller is a
// browser, so it renders an HTML page instead of the JSON envelope, and it is
// safe to open twice.
func (v *VerificationController) VerifyEmailToken(c *gin.Context) {
	token := c.Query("token")
	email := c.Query("email")
	if token == "" || email == "" {
		renderVerifyPage(c, http.StatusBadRequest, "Verification failed", "The verification link is incomplete. Please use the link from your email.")
		return
	}

	err := v.verificationService.Confirm(c.Request.Context(), token, email)
	switch {
	case err == nil:
		renderVerifyPage(c, http.StatusOK, "Email verified", "Your email address has been verified. You can close this tab and return to the dashboard.")
	case errors.Is(err, utils.ErrRecordNotFound):
		renderVerifyPage(c, http.StatusNotFound, "Verification failed", "This verification link is invalid or has expired. Please request a new one.")
	case errors.Is(err, utils.ErrConflict):
		renderVerifyPage(c, http.StatusConflict, "Verification failed", "This link does not match the email address it was issued for.")
	default:
		renderVerifyPage(c, http.StatusInternalServerError, "Verification failed", "Something went wrong on our side. Please try again later.")
	}
}

func renderVerifyPage(c *gin.Context, status int, title, message string) {
	page := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="UTF-8"><title>%s</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 80px auto; text-align: center;">
  <h1>%s</h1>
  <p>%s</p>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), html.EscapeString(message))

	c.Data(status, "text/html; charset=utf-8", []byte(page))
}
