package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/request_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
	Suspend(ctx context.Context, accountID string) error
	Unsuspend(ctx context.Context, accountID string) error
	InviteAdmin(ctx context.Context, request request_models.InviteAdminRequest) (*response_models.InviteAdminResponse, error)
	CreateAdminUser(ctx context.Context, request request_models.CreateAdminRequest) error
	AddAdminRole(ctx context.Context, email string) error
	DeleteAccount(ctx context.Context, accountID string) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	identity     IdentityService
	verification VerificationServiceInterface
	appBaseURL   string
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	identity IdentityService,
	verification VerificationServiceInterface,
	appBaseURL string,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		identity:     identity,
		verification: verification,
		appBaseURL:   appBaseURL,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if account.Disabled || account.Status == db_models.StatusInactive {
		return nil, utils.ErrPermissionDenied
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.identity.IssueToken(account)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	claims := db_models.ClaimSetFromJSON(account.Claims)
	return &response_models.LoginResponse{
		Token:   token,
		IsAdmin: claims.Admin,
	}, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return out, nil
}

// Suspend disables the identity, flips the profile to Inactive and revokes
// outstanding sessions, in that order. The steps are sequential remote calls
// with no transaction around them; a failure surfaces to the admin, who
// simply retries.
func (a *AccountService) Suspend(ctx context.Context, accountID string) error {
	if err := a.identity.Disable(ctx, accountID); err != nil {
		return err
	}

	if err := a.setStatus(ctx, accountID, db_models.StatusInactive); err != nil {
		return err
	}

	return a.identity.RevokeSessions(ctx, accountID)
}

func (a *AccountService) Unsuspend(ctx context.Context, accountID string) error {
	if err := a.identity.Enable(ctx, accountID); err != nil {
		return err
	}

	return a.setStatus(ctx, accountID, db_models.StatusActive)
}

// InviteAdmin issues a verification token for the address and stores a
// pending profile record; the final admin account is only unlocked by
// CreateAdminUser once the link has been confirmed.
func (a *AccountService) InviteAdmin(ctx context.Context, request request_models.InviteAdminRequest) (*response_models.InviteAdminResponse, error) {
	token, err := a.verification.Issue(ctx, request.Email, db_models.WorkflowAdminCreation)
	if err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pending := &db_models.Account{
		DisplayName:  strings.TrimSpace(request.FirstName + " " + request.LastName),
		Email:        request.Email,
		PasswordHash: hashed,
		DateOfBirth:  request.DOB,
		Role:         db_models.RoleBasic,
		Status:       db_models.StatusPendingEmailVerification,
	}
	if err := a.accountRepo.Insert(ctx, pending); err != nil {
		return nil, utils.ErrDatabaseError
	}

	link := fmt.Sprintf("%s/verify-email?token=%s&email=%s",
		strings.TrimRight(a.appBaseURL, "/"),
		url.QueryEscape(token), url.QueryEscape(request.Email))

	return &response_models.InviteAdminResponse{VerificationLink: link}, nil
}

// CreateAdminUser promotes the pending profile to a full admin. It fails with
// FailedPrecondition unless a verified token exists for the email. The
// verification record is consumed only after the account write succeeds, so
// a failed write never strands the operator into a fresh email round trip.
func (a *AccountService) CreateAdminUser(ctx context.Context, request request_models.CreateAdminRequest) error {
	if err := a.verification.RequireVerified(ctx, request.Email, db_models.WorkflowAdminCreation); err != nil {
		return err
	}

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if account != nil && account.Status != db_models.StatusPendingEmailVerification {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if account == nil {
		account = &db_models.Account{Email: request.Email}
	}
	account.DisplayName = strings.TrimSpace(request.FirstName + " " + request.LastName)
	account.PasswordHash = hashed
	account.DateOfBirth = request.DOB
	account.Role = db_models.RoleAdmin
	account.Status = db_models.StatusActive
	account.Claims = db_models.ClaimSet{Admin: true}.ToJSON()

	if account.ID == uuid.Nil {
		err = a.accountRepo.Insert(ctx, account)
	} else {
		err = a.accountRepo.Update(ctx, account)
	}
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.verification.ConsumeVerified(ctx, request.Email, db_models.WorkflowAdminCreation); err != nil {
		// The admin exists; a leftover verification row cannot be
		// replayed because the email is no longer pending.
		log.Printf("Admin account for %s created but verification cleanup failed: %v", request.Email, err)
	}

	log.Printf("Admin account created for %s", request.Email)
	return nil
}

// AddAdminRole grants the admin claim to an existing account and revokes its
// sessions so the grant only rides on freshly issued tokens.
func (a *AccountService) AddAdminRole(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	account.Role = db_models.RoleAdmin
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return a.identity.SetClaims(ctx, account.ID.String(), db_models.ClaimPatch{
		Admin: db_models.BoolPtr(true),
	})
}

// DeleteAccount disables the identity before soft-deleting the profile so a
// half-completed delete still locks the account out.
func (a *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := a.identity.Disable(ctx, accountID); err != nil {
		return err
	}

	if err := a.accountRepo.Delete(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) setStatus(ctx context.Context, accountID string, status db_models.AccountStatus) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	account.Status = status
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Role:        string(account.Role),
		Status:      string(account.Status),
		IsPremium:   account.IsPremium,
		Points:      account.Points,
		Disabled:    account.Disabled,
		CreatedAt:   account.CreatedAt,
	}
}
