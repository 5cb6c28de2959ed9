package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbite/internal/models/db_models"
	"fitbite/pkg/utils"
)

func TestIssueRejectsExistingAccountEmail(t *testing.T) {
	accountRepo := &mockAccountRepo{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return &db_models.Account{Email: email}, nil
		},
	}
	svc := NewVerificationService(&mockVerificationRepo{}, accountRepo, &mockMailService{})

	_, err := svc.Issue(context.Background(), "taken@example.com", db_models.WorkflowAdminCreation)
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestIssueSendsTokenByMail(t *testing.T) {
	var inserted *db_models.EmailVerification
	var mailedToken string

	verificationRepo := &mockVerificationRepo{
		insertFn: func(ctx context.Context, v *db_models.EmailVerification) error {
			inserted = v
			return nil
		},
	}
	mail := &mockMailService{
		sendVerificationFn: func(to, token, email string) error {
			mailedToken = token
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, mail)

	token, err := svc.Issue(context.Background(), "new@example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted == nil {
		t.Fatal("expected a verification row to be inserted")
	}
	if inserted.WorkflowType != db_models.WorkflowAdminCreation {
		t.Errorf("empty workflow should default to %q, got %q", db_models.WorkflowAdminCreation, inserted.WorkflowType)
	}
	if token != inserted.Token || token != mailedToken {
		t.Errorf("token mismatch: returned %q, stored %q, mailed %q", token, inserted.Token, mailedToken)
	}
}

func TestIssueTokenGenerationFailureIsNotADatabaseError(t *testing.T) {
	inserts := 0
	verificationRepo := &mockVerificationRepo{
		insertFn: func(ctx context.Context, v *db_models.EmailVerification) error {
			inserts++
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})
	svc.(*VerificationService).generateToken = func(byteLen int) (string, error) {
		return "", errors.New("entropy pool exhausted")
	}

	_, err := svc.Issue(context.Background(), "new@example.com", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, utils.ErrDatabaseError) {
		t.Fatal("a local token-generation failure must not be reported as a database error")
	}
	if inserts != 0 {
		t.Errorf("no row may be inserted without a token, got %d inserts", inserts)
	}
}

func TestConfirmUnknownTokenIsNotFound(t *testing.T) {
	svc := NewVerificationService(&mockVerificationRepo{}, &mockAccountRepo{}, &mockMailService{})

	err := svc.Confirm(context.Background(), "nope", "a@example.com")
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestConfirmEmailMismatchIsConflict(t *testing.T) {
	verificationRepo := &mockVerificationRepo{
		findByTokenFn: func(ctx context.Context, token string) (*db_models.EmailVerification, error) {
			return &db_models.EmailVerification{Token: token, Email: "owner@example.com"}, nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	err := svc.Confirm(context.Background(), "tok", "intruder@example.com")
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestConfirmIsIdempotent(t *testing.T) {
	verifiedAt := int64(1700000000)
	updates := 0

	record := &db_models.EmailVerification{
		Token:      "tok",
		Email:      "a@example.com",
		Verified:   true,
		VerifiedAt: &verifiedAt,
	}
	record.CreatedAt = time.Now().Unix()

	verificationRepo := &mockVerificationRepo{
		findByTokenFn: func(ctx context.Context, token string) (*db_models.EmailVerification, error) {
			return record, nil
		},
		updateFn: func(ctx context.Context, v *db_models.EmailVerification) error {
			updates++
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	if err := svc.Confirm(context.Background(), "tok", "a@example.com"); err != nil {
		t.Fatalf("second confirm should succeed, got %v", err)
	}
	if updates != 0 {
		t.Errorf("already-verified confirm must not write, got %d updates", updates)
	}
	if *record.VerifiedAt != verifiedAt {
		t.Errorf("VerifiedAt must not move, got %d", *record.VerifiedAt)
	}
}

func TestConfirmExpiredTokenIsNotFound(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com"}
	record.CreatedAt = time.Now().Add(-25 * time.Hour).Unix()

	verificationRepo := &mockVerificationRepo{
		findByTokenFn: func(ctx context.Context, token string) (*db_models.EmailVerification, error) {
			return record, nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	err := svc.Confirm(context.Background(), "tok", "a@example.com")
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("expired token should read as missing, got %v", err)
	}
}

func TestCheckStatusExpiredUnverifiedIsNotFound(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com"}
	record.CreatedAt = time.Now().Add(-25 * time.Hour).Unix()

	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	_, err := svc.CheckStatus(context.Background(), "a@example.com", "")
	if !errors.Is(err, utils.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestResendVerifiedTokenFails(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com", Verified: true}
	record.CreatedAt = time.Now().Unix()

	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	err := svc.Resend(context.Background(), "a@example.com", "")
	if !errors.Is(err, utils.ErrFailedPrecondition) {
		t.Fatalf("expected ErrFailedPrecondition, got %v", err)
	}
}

func TestResendReusesTokenAndStampsResentAt(t *testing.T) {
	record := &db_models.EmailVerification{Token: "original-token", Email: "a@example.com"}
	record.CreatedAt = time.Now().Unix()

	var mailedToken string
	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
	}
	mail := &mockMailService{
		sendVerificationFn: func(to, token, email string) error {
			mailedToken = token
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, mail)

	if err := svc.Resend(context.Background(), "a@example.com", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailedToken != "original-token" {
		t.Errorf("resend must reuse the existing token, mailed %q", mailedToken)
	}
	if record.ResentAt == nil {
		t.Error("ResentAt should be stamped")
	}
}

func TestConsumeVerifiedRequiresVerifiedToken(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com", Verified: false}
	record.CreatedAt = time.Now().Unix()

	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	err := svc.ConsumeVerified(context.Background(), "a@example.com", "")
	if !errors.Is(err, utils.ErrFailedPrecondition) {
		t.Fatalf("expected ErrFailedPrecondition, got %v", err)
	}
}

func TestRequireVerifiedDoesNotTouchRows(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com", Verified: true}
	record.CreatedAt = time.Now().Unix()

	deleted := false
	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
		deleteByEmailFn: func(ctx context.Context, email, workflowType string) error {
			deleted = true
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	if err := svc.RequireVerified(context.Background(), "a@example.com", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("the check must leave the verification rows in place")
	}
}

func TestConsumeVerifiedDeletesRows(t *testing.T) {
	record := &db_models.EmailVerification{Token: "tok", Email: "a@example.com", Verified: true}
	record.CreatedAt = time.Now().Unix()

	deleted := false
	verificationRepo := &mockVerificationRepo{
		findLatestFn: func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
			return record, nil
		},
		deleteByEmailFn: func(ctx context.Context, email, workflowType string) error {
			deleted = true
			return nil
		},
	}
	svc := NewVerificationService(verificationRepo, &mockAccountRepo{}, &mockMailService{})

	if err := svc.ConsumeVerified(context.Background(), "a@example.com", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("verification rows should be deleted after consumption")
	}
}
