package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/request_models"
	"fitbite/pkg/utils"
)

func TestLoginDisabledAccountIsDenied(t *testing.T) {
	accountRepo := &mockAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{Email: email, Disabled: true}, nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, &mockVerificationService{}, "https://admin.example.com")

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestLoginUnknownEmailIsInvalidCredentials(t *testing.T) {
	svc := NewAccountService(&mockAccountRepo{}, &mockIdentityService{}, &mockVerificationService{}, "")

	_, err := svc.Login(context.Background(), request_models.LoginRequest{Email: "ghost@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSuspendDisablesThenRevokesSessions(t *testing.T) {
	account := &db_models.Account{Status: db_models.StatusActive}
	account.ID = uuid.New()

	accountRepo := &mockAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return account, nil
		},
	}

	var calls []string
	identity := &mockIdentityService{
		disableFn: func(ctx context.Context, accountID string) error {
			calls = append(calls, "disable")
			return nil
		},
		revokeSessionsFn: func(ctx context.Context, accountID string) error {
			calls = append(calls, "revoke")
			return nil
		},
	}
	svc := NewAccountService(accountRepo, identity, &mockVerificationService{}, "")

	if err := svc.Suspend(context.Background(), account.ID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Status != db_models.StatusInactive {
		t.Errorf("expected Inactive, got %q", account.Status)
	}
	if len(calls) != 2 || calls[0] != "disable" || calls[1] != "revoke" {
		t.Errorf("expected disable before revoke, got %v", calls)
	}
}

func TestUnsuspendRestoresActiveWithoutRevoking(t *testing.T) {
	account := &db_models.Account{Status: db_models.StatusInactive}
	account.ID = uuid.New()

	accountRepo := &mockAccountRepo{
		findByIdFn: func(ctx context.Context, id string) (*db_models.Account, error) {
			return account, nil
		},
	}
	revoked := false
	identity := &mockIdentityService{
		revokeSessionsFn: func(ctx context.Context, accountID string) error {
			revoked = true
			return nil
		},
	}
	svc := NewAccountService(accountRepo, identity, &mockVerificationService{}, "")

	if err := svc.Unsuspend(context.Background(), account.ID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Status != db_models.StatusActive {
		t.Errorf("expected Active, got %q", account.Status)
	}
	if revoked {
		t.Error("unsuspend has no sessions to revoke")
	}
}

func TestInviteAdminBuildsVerificationLink(t *testing.T) {
	var pending *db_models.Account
	accountRepo := &mockAccountRepo{
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			pending = account
			return nil
		},
	}
	verification := &mockVerificationService{
		issueFn: func(ctx context.Context, email, workflowType string) (string, error) {
			return "tok-123", nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, verification, "https://admin.example.com/")

	resp, err := svc.InviteAdmin(context.Background(), request_models.InviteAdminRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     "ana@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.VerificationLink, "https://admin.example.com/verify-email?token=tok-123") {
		t.Errorf("unexpected link %q", resp.VerificationLink)
	}
	if pending == nil {
		t.Fatal("expected a pending account row")
	}
	if pending.Status != db_models.StatusPendingEmailVerification {
		t.Errorf("invited accounts stay pending, got %q", pending.Status)
	}
	if pending.Role == db_models.RoleAdmin {
		t.Error("the admin role is only granted after verification")
	}
}

func TestInviteAdminExistingEmailFails(t *testing.T) {
	verification := &mockVerificationService{
		issueFn: func(ctx context.Context, email, workflowType string) (string, error) {
			return "", utils.ErrEmailAlreadyExists
		},
	}
	inserted := false
	accountRepo := &mockAccountRepo{
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			inserted = true
			return nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, verification, "")

	_, err := svc.InviteAdmin(context.Background(), request_models.InviteAdminRequest{Email: "taken@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if inserted {
		t.Error("no pending account may be created when issuance fails")
	}
}

func TestCreateAdminUserRequiresVerifiedToken(t *testing.T) {
	verification := &mockVerificationService{
		requireVerifiedFn: func(ctx context.Context, email, workflowType string) error {
			return utils.ErrFailedPrecondition
		},
	}
	svc := NewAccountService(&mockAccountRepo{}, &mockIdentityService{}, verification, "")

	err := svc.CreateAdminUser(context.Background(), request_models.CreateAdminRequest{Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrFailedPrecondition) {
		t.Fatalf("expected ErrFailedPrecondition, got %v", err)
	}
}

func TestCreateAdminUserConsumesTokenAfterAccountWrite(t *testing.T) {
	var calls []string
	verification := &mockVerificationService{
		consumeVerifiedFn: func(ctx context.Context, email, workflowType string) error {
			calls = append(calls, "consume")
			return nil
		},
	}
	accountRepo := &mockAccountRepo{
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			calls = append(calls, "insert")
			return nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, verification, "")

	err := svc.CreateAdminUser(context.Background(), request_models.CreateAdminRequest{Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "insert" || calls[1] != "consume" {
		t.Fatalf("the token must outlive a pending account write, got %v", calls)
	}
}

func TestCreateAdminUserKeepsTokenWhenAccountWriteFails(t *testing.T) {
	consumed := false
	verification := &mockVerificationService{
		consumeVerifiedFn: func(ctx context.Context, email, workflowType string) error {
			consumed = true
			return nil
		},
	}
	accountRepo := &mockAccountRepo{
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			return errors.New("connection reset")
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, verification, "")

	err := svc.CreateAdminUser(context.Background(), request_models.CreateAdminRequest{Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
	if consumed {
		t.Error("a failed account write must leave the verification token intact")
	}
}

func TestCreateAdminUserPromotesPendingAccount(t *testing.T) {
	pending := &db_models.Account{
		Email:  "ana@example.com",
		Status: db_models.StatusPendingEmailVerification,
		Role:   db_models.RoleBasic,
	}
	pending.ID = uuid.New()

	var updated *db_models.Account
	accountRepo := &mockAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return pending, nil
		},
		updateFn: func(ctx context.Context, account *db_models.Account) error {
			updated = account
			return nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, &mockVerificationService{}, "")

	err := svc.CreateAdminUser(context.Background(), request_models.CreateAdminRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     "ana@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil {
		t.Fatal("expected the pending row to be updated, not a new insert")
	}
	if updated.Role != db_models.RoleAdmin || updated.Status != db_models.StatusActive {
		t.Errorf("expected an active admin, got role=%q status=%q", updated.Role, updated.Status)
	}
	if !db_models.ClaimSetFromJSON(updated.Claims).Admin {
		t.Error("the admin claim should be set")
	}
}

func TestCreateAdminUserActiveEmailFails(t *testing.T) {
	active := &db_models.Account{Email: "a@example.com", Status: db_models.StatusActive}
	active.ID = uuid.New()

	accountRepo := &mockAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return active, nil
		},
	}
	svc := NewAccountService(accountRepo, &mockIdentityService{}, &mockVerificationService{}, "")

	err := svc.CreateAdminUser(context.Background(), request_models.CreateAdminRequest{Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAddAdminRoleSetsClaimViaGateway(t *testing.T) {
	account := &db_models.Account{Email: "a@example.com", Role: db_models.RoleBasic}
	account.ID = uuid.New()

	accountRepo := &mockAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return account, nil
		},
	}
	var patched *db_models.ClaimPatch
	identity := &mockIdentityService{
		setClaimsFn: func(ctx context.Context, accountID string, patch db_models.ClaimPatch) error {
			patched = &patch
			return nil
		},
	}
	svc := NewAccountService(accountRepo, identity, &mockVerificationService{}, "")

	if err := svc.AddAdminRole(context.Background(), "a@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Role != db_models.RoleAdmin {
		t.Errorf("role should become admin, got %q", account.Role)
	}
	if patched == nil || patched.Admin == nil || !*patched.Admin {
		t.Error("the admin claim must be granted through the claims gateway")
	}
	if patched.Nutritionist != nil || patched.Approved != nil || patched.Rejected != nil {
		t.Error("unrelated claims must be left untouched")
	}
}

func TestDeleteAccountDisablesFirst(t *testing.T) {
	var calls []string
	accountRepo := &mockAccountRepo{
		deleteFn: func(ctx context.Context, id string) error {
			calls = append(calls, "delete")
			return nil
		},
	}
	identity := &mockIdentityService{
		disableFn: func(ctx context.Context, accountID string) error {
			calls = append(calls, "disable")
			return nil
		},
	}
	svc := NewAccountService(accountRepo, identity, &mockVerificationService{}, "")

	if err := svc.DeleteAccount(context.Background(), uuid.NewString()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "disable" || calls[1] != "delete" {
		t.Errorf("expected disable before delete, got %v", calls)
	}
}
