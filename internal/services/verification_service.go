package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitbite/internal/models/db_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

// Tokens older than this are treated as nonexistent by Confirm and
// CheckStatus even though the row may still be on disk.
const verificationTokenTTL = 24 * time.Hour

type VerificationServiceInterface interface {
	Issue(ctx context.Context, email, workflowType string) (string, error)
	Confirm(ctx context.Context, token, email string) error
	CheckStatus(ctx context.Context, email, workflowType string) (bool, error)
	Resend(ctx context.Context, email, workflowType string) error
	RequireVerified(ctx context.Context, email, workflowType string) error
	ConsumeVerified(ctx context.Context, email, workflowType string) error
	CleanupExpired(ctx context.Context) error
}

type VerificationService struct {
	verificationRepo repositories.VerificationRepository
	accountRepo      repositories.AccountRepository
	mailService      IMailService
	generateToken    func(byteLen int) (string, error)
}

func NewVerificationService(
	verificationRepo repositories.VerificationRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
) VerificationServiceInterface {
	return &VerificationService{
		verificationRepo: verificationRepo,
		accountRepo:      accountRepo,
		mailService:      mailService,
		generateToken:    utils.GenerateSecureToken,
	}
}

// Issue creates a fresh token and emails the verification link. An existing
// account with the same email blocks issuance so the flow cannot be used to
// hijack a registered address.
func (v *VerificationService) Issue(ctx context.Context, email, workflowType string) (string, error) {
	if email == "" {
		return "", utils.ErrInvalidArgument
	}
	if workflowType == "" {
		workflowType = db_models.WorkflowAdminCreation
	}

	existing, err := v.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	token, err := v.generateToken(32)
	if err != nil {
		// Not a storage problem; let it surface as an unclassified 500.
		return "", fmt.Errorf("generate verification token: %w", err)
	}

	record := &db_models.EmailVerification{
		Token:        token,
		Email:        email,
		WorkflowType: workflowType,
	}
	if err := v.verificationRepo.Insert(ctx, record); err != nil {
		return "", utils.ErrDatabaseError
	}

	if err := v.mailService.SendVerificationEmail(email, token, email); err != nil {
		log.Printf("Failed to send verification email to %s: %v", email, err)
		return "", utils.ErrExternalService
	}

	return token, nil
}

// Confirm marks the token verified. It is reachable from an emailed link and
// must tolerate being hit twice: an already-verified token is a success, not
// an error, and VerifiedAt is never overwritten.
func (v *VerificationService) Confirm(ctx context.Context, token, email string) error {
	record, err := v.verificationRepo.FindByToken(ctx, token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrRecordNotFound
	}
	if record.Email != email {
		return utils.ErrConflict
	}
	if record.Verified {
		return nil
	}
	if v.expired(record) {
		return utils.ErrRecordNotFound
	}

	record.Verified = true
	record.VerifiedAt = utils.UnixPtr(utils.NowUnixSeconds())
	if err := v.verificationRepo.Update(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (v *VerificationService) CheckStatus(ctx context.Context, email, workflowType string) (bool, error) {
	if workflowType == "" {
		workflowType = db_models.WorkflowAdminCreation
	}

	record, err := v.verificationRepo.FindLatest(ctx, email, workflowType)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if record == nil {
		return false, utils.ErrRecordNotFound
	}
	if !record.Verified && v.expired(record) {
		return false, utils.ErrRecordNotFound
	}

	return record.Verified, nil
}

// Resend re-sends the link for the existing token rather than minting a new
// one, and stamps ResentAt.
func (v *VerificationService) Resend(ctx context.Context, email, workflowType string) error {
	if workflowType == "" {
		workflowType = db_models.WorkflowAdminCreation
	}

	record, err := v.verificationRepo.FindLatest(ctx, email, workflowType)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrRecordNotFound
	}
	if record.Verified {
		return utils.ErrFailedPrecondition
	}

	if err := v.mailService.SendVerificationEmail(email, record.Token, email); err != nil {
		log.Printf("Failed to resend verification email to %s: %v", email, err)
		return utils.ErrExternalService
	}

	record.ResentAt = utils.UnixPtr(utils.NowUnixSeconds())
	if err := v.verificationRepo.Update(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// RequireVerified fails with FailedPrecondition unless a verified token
// exists for the email. It does not touch the rows, so a gated workflow can
// check upfront and consume only after its own writes succeed.
func (v *VerificationService) RequireVerified(ctx context.Context, email, workflowType string) error {
	if workflowType == "" {
		workflowType = db_models.WorkflowAdminCreation
	}

	record, err := v.verificationRepo.FindLatest(ctx, email, workflowType)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil || !record.Verified {
		return utils.ErrFailedPrecondition
	}
	return nil
}

// ConsumeVerified deletes the verification rows once the gated workflow
// completes. The same verified-token check guards it so a bare consume
// cannot erase an unverified row.
func (v *VerificationService) ConsumeVerified(ctx context.Context, email, workflowType string) error {
	if err := v.RequireVerified(ctx, email, workflowType); err != nil {
		return err
	}
	if workflowType == "" {
		workflowType = db_models.WorkflowAdminCreation
	}

	if err := v.verificationRepo.DeleteByEmail(ctx, email, workflowType); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// CleanupExpired purges stale unverified rows. Correctness does not depend on
// it; expired tokens are already invisible to Confirm and CheckStatus.
func (v *VerificationService) CleanupExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-verificationTokenTTL).Unix()
	n, err := v.verificationRepo.DeleteExpiredUnverified(ctx, cutoff)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n > 0 {
		log.Printf("Purged %d expired verification tokens", n)
	}
	return nil
}

func (v *VerificationService) expired(record *db_models.EmailVerification) bool {
	created := time.Unix(record.CreatedAt, 0)
	return time.Since(created) > verificationTokenTTL
}
