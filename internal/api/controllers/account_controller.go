package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbite/internal/models/request_models"
	"fitbite/internal/services"
	"fitbite/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Login godoc
// @Summary Log in to the admin dashboard
// @Description Authenticate an operator and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}

// GetAllAccounts godoc
// @Summary List all accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {
	accounts, err := a.accountService.GetAllAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}

// SuspendUser godoc
// @Summary Suspend a user account
// @Description Disables the identity, marks the profile Inactive and revokes sessions
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id}/suspend [post]
func (a *AccountController) SuspendUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := a.accountService.Suspend(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User suspended successfully")
}

// UnsuspendUser godoc
// @Summary Reactivate a suspended user account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id}/unsuspend [post]
func (a *AccountController) UnsuspendUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := a.accountService.Unsuspend(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User unsuspended successfully")
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{id}/delete [post]
func (a *AccountController) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}

// InviteAdmin godoc
// @Summary Start admin creation with email verification
// @Description Creates a pending profile and returns a verification link
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.InviteAdminRequest true "Invite payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/admins/invite [post]
func (a *AccountController) InviteAdmin(c *gin.Context) {
	var req request_models.InviteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.accountService.InviteAdmin(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Verification email sent")
}

// CreateAdminUser godoc
// @Summary Finalize an admin account
// @Description Requires a previously verified email token for the address
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.CreateAdminRequest true "Admin payload"
// @Success 200 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/admins [post]
func (a *AccountController) CreateAdminUser(c *gin.Context) {
	var req request_models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAdminUser(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Admin account created successfully")
}

// AddAdminRole godoc
// @Summary Grant the admin role to an existing account
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.AddAdminRoleRequest true "Email payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/admins/role [post]
func (a *AccountController) AddAdminRole(c *gin.Context) {
	var req request_models.AddAdminRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.AddAdminRole(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Admin role granted successfully")
}
