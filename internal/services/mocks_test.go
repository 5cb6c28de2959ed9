package services

import (
	"context"
	"io"
	"time"

	"fitbite/internal/models/db_models"
)

type mockAccountRepo struct {
	insertFn      func(ctx context.Context, account *db_models.Account) error
	updateFn      func(ctx context.Context, account *db_models.Account) error
	deleteFn      func(ctx context.Context, id string) error
	findByIdFn    func(ctx context.Context, id string) (*db_models.Account, error)
	findByEmailFn func(ctx context.Context, email string) (*db_models.Account, error)
	findAllFn     func(ctx context.Context) ([]db_models.Account, error)
	countByRoleFn func(ctx context.Context, role db_models.AccountRole) (int64, error)
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if m.findByIdFn != nil {
		return m.findByIdFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindAll(ctx context.Context) ([]db_models.Account, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockAccountRepo) CountByRole(ctx context.Context, role db_models.AccountRole) (int64, error) {
	if m.countByRoleFn != nil {
		return m.countByRoleFn(ctx, role)
	}
	return 0, nil
}

type mockVerificationRepo struct {
	insertFn                  func(ctx context.Context, v *db_models.EmailVerification) error
	updateFn                  func(ctx context.Context, v *db_models.EmailVerification) error
	deleteByEmailFn           func(ctx context.Context, email, workflowType string) error
	findByTokenFn             func(ctx context.Context, token string) (*db_models.EmailVerification, error)
	findLatestFn              func(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error)
	deleteExpiredUnverifiedFn func(ctx context.Context, before int64) (int64, error)
}

func (m *mockVerificationRepo) Insert(ctx context.Context, v *db_models.EmailVerification) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, v)
	}
	return nil
}

func (m *mockVerificationRepo) Update(ctx context.Context, v *db_models.EmailVerification) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, v)
	}
	return nil
}

func (m *mockVerificationRepo) DeleteByEmail(ctx context.Context, email, workflowType string) error {
	if m.deleteByEmailFn != nil {
		return m.deleteByEmailFn(ctx, email, workflowType)
	}
	return nil
}

func (m *mockVerificationRepo) FindByToken(ctx context.Context, token string) (*db_models.EmailVerification, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockVerificationRepo) FindLatest(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
	if m.findLatestFn != nil {
		return m.findLatestFn(ctx, email, workflowType)
	}
	return nil, nil
}

func (m *mockVerificationRepo) DeleteExpiredUnverified(ctx context.Context, before int64) (int64, error) {
	if m.deleteExpiredUnverifiedFn != nil {
		return m.deleteExpiredUnverifiedFn(ctx, before)
	}
	return 0, nil
}

type mockApplicationRepo struct {
	insertFn          func(ctx context.Context, app *db_models.NutritionistApplication) error
	updateFn          func(ctx context.Context, app *db_models.NutritionistApplication) error
	findByAccountIdFn func(ctx context.Context, accountID string) (*db_models.NutritionistApplication, error)
	findByEmailFn     func(ctx context.Context, email string) (*db_models.NutritionistApplication, error)
	findAllFn         func(ctx context.Context) ([]db_models.NutritionistApplication, error)
}

func (m *mockApplicationRepo) Insert(ctx context.Context, app *db_models.NutritionistApplication) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, app)
	}
	return nil
}

func (m *mockApplicationRepo) Update(ctx context.Context, app *db_models.NutritionistApplication) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, app)
	}
	return nil
}

func (m *mockApplicationRepo) FindByAccountId(ctx context.Context, accountID string) (*db_models.NutritionistApplication, error) {
	if m.findByAccountIdFn != nil {
		return m.findByAccountIdFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindByEmail(ctx context.Context, email string) (*db_models.NutritionistApplication, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindAll(ctx context.Context) ([]db_models.NutritionistApplication, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

type mockRewardRepo struct {
	insertFn            func(ctx context.Context, reward *db_models.Reward) error
	updateFn            func(ctx context.Context, reward *db_models.Reward) error
	deleteFn            func(ctx context.Context, id string) error
	findByIdFn          func(ctx context.Context, id string) (*db_models.Reward, error)
	findByKindAndNameFn func(ctx context.Context, kind db_models.RewardKind, name string) (*db_models.Reward, error)
	findByKindFn        func(ctx context.Context, kind db_models.RewardKind) ([]db_models.Reward, error)
}

func (m *mockRewardRepo) Insert(ctx context.Context, reward *db_models.Reward) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, reward)
	}
	return nil
}

func (m *mockRewardRepo) Update(ctx context.Context, reward *db_models.Reward) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, reward)
	}
	return nil
}

func (m *mockRewardRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockRewardRepo) FindById(ctx context.Context, id string) (*db_models.Reward, error) {
	if m.findByIdFn != nil {
		return m.findByIdFn(ctx, id)
	}
	return nil, nil
}

func (m *mockRewardRepo) FindByKindAndName(ctx context.Context, kind db_models.RewardKind, name string) (*db_models.Reward, error) {
	if m.findByKindAndNameFn != nil {
		return m.findByKindAndNameFn(ctx, kind, name)
	}
	return nil, nil
}

func (m *mockRewardRepo) FindByKind(ctx context.Context, kind db_models.RewardKind) ([]db_models.Reward, error) {
	if m.findByKindFn != nil {
		return m.findByKindFn(ctx, kind)
	}
	return nil, nil
}

type mockPlanRepo struct {
	findByCodeFn   func(ctx context.Context, code string) (*db_models.Plan, error)
	updateFn       func(ctx context.Context, plan *db_models.Plan) error
	ensureSeededFn func(ctx context.Context, plan *db_models.Plan) error
}

func (m *mockPlanRepo) FindByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	if m.findByCodeFn != nil {
		return m.findByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *db_models.Plan) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepo) EnsureSeeded(ctx context.Context, plan *db_models.Plan) error {
	if m.ensureSeededFn != nil {
		return m.ensureSeededFn(ctx, plan)
	}
	return nil
}

type mockSubscriptionRepo struct {
	countByStatusFn func(ctx context.Context, status db_models.SubscriptionStatus) (int64, error)
	countTotalFn    func(ctx context.Context) (int64, error)
	findRecentFn    func(ctx context.Context, limit int) ([]db_models.Subscription, error)
}

func (m *mockSubscriptionRepo) CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error) {
	if m.countByStatusFn != nil {
		return m.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *mockSubscriptionRepo) CountTotal(ctx context.Context) (int64, error) {
	if m.countTotalFn != nil {
		return m.countTotalFn(ctx)
	}
	return 0, nil
}

func (m *mockSubscriptionRepo) FindRecent(ctx context.Context, limit int) ([]db_models.Subscription, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, limit)
	}
	return nil, nil
}

type mockMailService struct {
	sendVerificationFn func(to, token, email string) error
	sendApprovalFn     func(to, firstName string) error
	sendRejectionFn    func(to, firstName, reason string) error
}

func (m *mockMailService) SendVerificationEmail(to, token, email string) error {
	if m.sendVerificationFn != nil {
		return m.sendVerificationFn(to, token, email)
	}
	return nil
}

func (m *mockMailService) SendApprovalNotice(to, firstName string) error {
	if m.sendApprovalFn != nil {
		return m.sendApprovalFn(to, firstName)
	}
	return nil
}

func (m *mockMailService) SendRejectionNotice(to, firstName, reason string) error {
	if m.sendRejectionFn != nil {
		return m.sendRejectionFn(to, firstName, reason)
	}
	return nil
}

type mockCertificateStore struct {
	uploadFn       func(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	existsFn       func(ctx context.Context, objectName string) (bool, error)
	presignedURLFn func(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	deleteFn       func(ctx context.Context, objectName string) error
}

func (m *mockCertificateStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, objectName, reader, size, contentType)
	}
	return nil
}

func (m *mockCertificateStore) Exists(ctx context.Context, objectName string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, objectName)
	}
	return true, nil
}

func (m *mockCertificateStore) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if m.presignedURLFn != nil {
		return m.presignedURLFn(ctx, objectName, expiry)
	}
	return "https://example.invalid/signed", nil
}

func (m *mockCertificateStore) Delete(ctx context.Context, objectName string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, objectName)
	}
	return nil
}

type mockIdentityService struct {
	setClaimsFn      func(ctx context.Context, accountID string, patch db_models.ClaimPatch) error
	revokeSessionsFn func(ctx context.Context, accountID string) error
	disableFn        func(ctx context.Context, accountID string) error
	enableFn         func(ctx context.Context, accountID string) error
	issueTokenFn     func(account *db_models.Account) (string, error)
}

func (m *mockIdentityService) SetClaims(ctx context.Context, accountID string, patch db_models.ClaimPatch) error {
	if m.setClaimsFn != nil {
		return m.setClaimsFn(ctx, accountID, patch)
	}
	return nil
}

func (m *mockIdentityService) RevokeSessions(ctx context.Context, accountID string) error {
	if m.revokeSessionsFn != nil {
		return m.revokeSessionsFn(ctx, accountID)
	}
	return nil
}

func (m *mockIdentityService) Disable(ctx context.Context, accountID string) error {
	if m.disableFn != nil {
		return m.disableFn(ctx, accountID)
	}
	return nil
}

func (m *mockIdentityService) Enable(ctx context.Context, accountID string) error {
	if m.enableFn != nil {
		return m.enableFn(ctx, accountID)
	}
	return nil
}

func (m *mockIdentityService) IssueToken(account *db_models.Account) (string, error) {
	if m.issueTokenFn != nil {
		return m.issueTokenFn(account)
	}
	return "token", nil
}

type mockVerificationService struct {
	issueFn           func(ctx context.Context, email, workflowType string) (string, error)
	confirmFn         func(ctx context.Context, token, email string) error
	checkStatusFn     func(ctx context.Context, email, workflowType string) (bool, error)
	resendFn          func(ctx context.Context, email, workflowType string) error
	requireVerifiedFn func(ctx context.Context, email, workflowType string) error
	consumeVerifiedFn func(ctx context.Context, email, workflowType string) error
}

func (m *mockVerificationService) Issue(ctx context.Context, email, workflowType string) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, email, workflowType)
	}
	return "issued-token", nil
}

func (m *mockVerificationService) Confirm(ctx context.Context, token, email string) error {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, token, email)
	}
	return nil
}

func (m *mockVerificationService) CheckStatus(ctx context.Context, email, workflowType string) (bool, error) {
	if m.checkStatusFn != nil {
		return m.checkStatusFn(ctx, email, workflowType)
	}
	return false, nil
}

func (m *mockVerificationService) Resend(ctx context.Context, email, workflowType string) error {
	if m.resendFn != nil {
		return m.resendFn(ctx, email, workflowType)
	}
	return nil
}

func (m *mockVerificationService) RequireVerified(ctx context.Context, email, workflowType string) error {
	if m.requireVerifiedFn != nil {
		return m.requireVerifiedFn(ctx, email, workflowType)
	}
	return nil
}

func (m *mockVerificationService) ConsumeVerified(ctx context.Context, email, workflowType string) error {
	if m.consumeVerifiedFn != nil {
		return m.consumeVerifiedFn(ctx, email, workflowType)
	}
	return nil
}

func (m *mockVerificationService) CleanupExpired(ctx context.Context) error {
	return nil
}
