package services

import (
	"context"
	"log"
	"time"

	"fitbite/internal/models/db_models"
	"fitbite/internal/repositories"
	mem "fitbite/pkg/memcache"
	"fitbite/pkg/utils"
)

// IdentityService is the claims gateway: it owns every mutation of an
// account's grant set and session validity. Claims are cached inside issued
// tokens, so any claim mutation must be followed by a session revocation.
// SetClaims does both and callers must not bypass it.
type IdentityService interface {
	SetClaims(ctx context.Context, accountID string, patch db_models.ClaimPatch) error
	RevokeSessions(ctx context.Context, accountID string) error
	Disable(ctx context.Context, accountID string) error
	Enable(ctx context.Context, accountID string) error
	IssueToken(account *db_models.Account) (string, error)
}

type identityService struct {
	accountRepo repositories.AccountRepository
	revocations mem.RevocationStore
}

func NewIdentityService(accountRepo repositories.AccountRepository, revocations mem.RevocationStore) IdentityService {
	return &identityService{
		accountRepo: accountRepo,
		revocations: revocations,
	}
}

func (s *identityService) SetClaims(ctx context.Context, accountID string, patch db_models.ClaimPatch) error {
	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	merged := db_models.ClaimSetFromJSON(account.Claims).Merge(patch)
	account.Claims = merged.ToJSON()

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return s.RevokeSessions(ctx, accountID)
}

func (s *identityService) RevokeSessions(ctx context.Context, accountID string) error {
	now := time.Now()

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	account.SessionsRevokedAt = now.Unix()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		// A failed revoke leaves a stale-claim window until token expiry.
		log.Printf("FAILED to persist session revocation for account %s: %v", accountID, err)
		return utils.ErrDatabaseError
	}

	s.revocations.Revoke(accountID, now)
	return nil
}

func (s *identityService) Disable(ctx context.Context, accountID string) error {
	return s.setDisabled(ctx, accountID, true)
}

func (s *identityService) Enable(ctx context.Context, accountID string) error {
	return s.setDisabled(ctx, accountID, false)
}

func (s *identityService) setDisabled(ctx context.Context, accountID string, disabled bool) error {
	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	account.Disabled = disabled
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *identityService) IssueToken(account *db_models.Account) (string, error) {
	claims := db_models.ClaimSetFromJSON(account.Claims)
	return utils.CreateToken(account.ID, string(account.Role), utils.TokenGrants{
		Admin:        claims.Admin,
		Nutritionist: claims.Nutritionist,
		Approved:     claims.Approved,
		Rejected:     claims.Rejected,
	})
}
