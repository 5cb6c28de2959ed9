package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/request_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

const (
	certificateURLExpiry = 15 * time.Minute

	// Persisted when a rejecting admin gives no reason; the record never
	// carries an empty reason.
	DefaultRejectionReason = "Your application did not meet our requirements."
)

type NutritionistServiceInterface interface {
	Submit(ctx context.Context, req request_models.SubmitApplicationRequest, certificate io.Reader, size int64, fileName, contentType string) (*response_models.ApplicationResponse, error)
	CertificateURL(ctx context.Context, accountID string) (*response_models.CertificateURLResponse, error)
	Approve(ctx context.Context, accountID string) (*response_models.ReviewResult, error)
	Reject(ctx context.Context, accountID, reason string) (*response_models.ReviewResult, error)
	ListApplications(ctx context.Context) ([]response_models.ApplicationResponse, error)
}

type NutritionistService struct {
	applicationRepo repositories.ApplicationRepository
	accountRepo     repositories.AccountRepository
	identity        IdentityService
	certificates    CertificateStore
	mailService     IMailService
}

func NewNutritionistService(
	applicationRepo repositories.ApplicationRepository,
	accountRepo repositories.AccountRepository,
	identity IdentityService,
	certificates CertificateStore,
	mailService IMailService,
) NutritionistServiceInterface {
	return &NutritionistService{
		applicationRepo: applicationRepo,
		accountRepo:     accountRepo,
		identity:        identity,
		certificates:    certificates,
		mailService:     mailService,
	}
}

// Submit uploads the certificate first and writes the application record only
// once the upload succeeded, so a storage failure never leaves a record
// without a certificate behind it.
func (n *NutritionistService) Submit(ctx context.Context, req request_models.SubmitApplicationRequest, certificate io.Reader, size int64, fileName, contentType string) (*response_models.ApplicationResponse, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || fileName == "" {
		return nil, utils.ErrInvalidArgument
	}

	existing, err := n.applicationRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyExists
	}

	account, err := n.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	objectName := fmt.Sprintf("certificates/%s%s", account.ID.String(), filepath.Ext(fileName))
	if err := n.certificates.Upload(ctx, objectName, certificate, size, contentType); err != nil {
		log.Printf("Certificate upload failed for %s: %v", req.Email, err)
		return nil, utils.ErrStorageError
	}

	app := &db_models.NutritionistApplication{
		AccountID:           account.ID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		DateOfBirth:         req.DOB,
		CertificateObject:   objectName,
		CertificateFileName: fileName,
		Status:              db_models.AppStatusPending,
		AppliedAt:           utils.NowUnixSeconds(),
	}
	if err := n.applicationRepo.Insert(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

// CertificateURL confirms the blob still exists and mints a 15-minute signed
// read URL. The stored reference itself is never exposed.
func (n *NutritionistService) CertificateURL(ctx context.Context, accountID string) (*response_models.CertificateURLResponse, error) {
	app, err := n.applicationRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, utils.ErrRecordNotFound
	}

	exists, err := n.certificates.Exists(ctx, app.CertificateObject)
	if err != nil {
		return nil, utils.ErrStorageError
	}
	if !exists {
		return nil, utils.ErrRecordNotFound
	}

	url, err := n.certificates.PresignedURL(ctx, app.CertificateObject, certificateURLExpiry)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	return &response_models.CertificateURLResponse{
		URL:       url,
		ExpiresIn: int64(certificateURLExpiry.Seconds()),
	}, nil
}

// Approve moves a pending application to its terminal approved state. The
// order is fixed: merge claims in memory, persist the durable records, then
// push claims to the gateway and revoke sessions, then notify. A crash
// between steps must never leave the gateway ahead of the durable record.
func (n *NutritionistService) Approve(ctx context.Context, accountID string) (*response_models.ReviewResult, error) {
	app, account, err := n.loadForReview(ctx, accountID)
	if err != nil {
		return nil, err
	}

	switch app.Status {
	case db_models.AppStatusApproved:
		// Repeating a decision is a safe no-op.
		return &response_models.ReviewResult{Status: string(app.Status)}, nil
	case db_models.AppStatusRejected:
		return nil, utils.ErrFailedPrecondition
	}

	claims := db_models.ClaimSetFromJSON(account.Claims).Merge(db_models.ClaimPatch{
		Nutritionist: db_models.BoolPtr(true),
		Approved:     db_models.BoolPtr(true),
		Rejected:     db_models.BoolPtr(false),
	})

	app.Status = db_models.AppStatusApproved
	app.ApprovedAt = utils.UnixPtr(utils.NowUnixSeconds())
	if err := n.applicationRepo.Update(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	account.Claims = claims.ToJSON()
	account.Role = db_models.RoleNutritionist
	if err := n.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := n.identity.RevokeSessions(ctx, accountID); err != nil {
		log.Printf("FAILED to revoke sessions after approving %s: %v", accountID, err)
		return nil, err
	}

	result := &response_models.ReviewResult{Status: string(db_models.AppStatusApproved)}
	if err := n.mailService.SendApprovalNotice(app.Email, app.FirstName); err != nil {
		// Notification is best-effort; the approval stands.
		log.Printf("Approval email to %s failed: %v", app.Email, err)
		result.Warnings = append(result.Warnings, "approval notification email could not be sent")
	}
	return result, nil
}

// Reject mirrors Approve with the opposite claim patch. An omitted reason is
// replaced by DefaultRejectionReason before anything is persisted.
func (n *NutritionistService) Reject(ctx context.Context, accountID, reason string) (*response_models.ReviewResult, error) {
	app, account, err := n.loadForReview(ctx, accountID)
	if err != nil {
		return nil, err
	}

	switch app.Status {
	case db_models.AppStatusRejected:
		return &response_models.ReviewResult{Status: string(app.Status)}, nil
	case db_models.AppStatusApproved:
		return nil, utils.ErrFailedPrecondition
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}

	claims := db_models.ClaimSetFromJSON(account.Claims).Merge(db_models.ClaimPatch{
		Nutritionist: db_models.BoolPtr(false),
		Approved:     db_models.BoolPtr(false),
		Rejected:     db_models.BoolPtr(true),
	})

	app.Status = db_models.AppStatusRejected
	app.RejectedAt = utils.UnixPtr(utils.NowUnixSeconds())
	app.RejectionReason = &reason
	if err := n.applicationRepo.Update(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	account.Claims = claims.ToJSON()
	if account.Role == db_models.RoleNutritionist {
		account.Role = db_models.RoleBasic
	}
	if err := n.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := n.identity.RevokeSessions(ctx, accountID); err != nil {
		log.Printf("FAILED to revoke sessions after rejecting %s: %v", accountID, err)
		return nil, err
	}

	result := &response_models.ReviewResult{Status: string(db_models.AppStatusRejected)}
	if err := n.mailService.SendRejectionNotice(app.Email, app.FirstName, reason); err != nil {
		log.Printf("Rejection email to %s failed: %v", app.Email, err)
		result.Warnings = append(result.Warnings, "rejection notification email could not be sent")
	}
	return result, nil
}

func (n *NutritionistService) ListApplications(ctx context.Context) ([]response_models.ApplicationResponse, error) {
	apps, err := n.applicationRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out, nil
}

func (n *NutritionistService) loadForReview(ctx context.Context, accountID string) (*db_models.NutritionistApplication, *db_models.Account, error) {
	app, err := n.applicationRepo.FindByAccountId(ctx, accountID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, nil, utils.ErrRecordNotFound
	}

	account, err := n.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, nil, utils.ErrAccountNotFound
	}

	return app, account, nil
}

func toApplicationResponse(app *db_models.NutritionistApplication) response_models.ApplicationResponse {
	return response_models.ApplicationResponse{
		ID:                  app.ID,
		AccountID:           app.AccountID,
		FirstName:           app.FirstName,
		LastName:            app.LastName,
		Email:               app.Email,
		Status:              string(app.Status),
		CertificateFileName: app.CertificateFileName,
		AppliedAt:           app.AppliedAt,
		ApprovedAt:          app.ApprovedAt,
		RejectedAt:          app.RejectedAt,
		RejectionReason:     app.RejectionReason,
	}
}
