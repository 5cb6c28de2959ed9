package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitbite/internal/models/db_models"
)

type VerificationRepository interface {
	Insert(ctx context.Context, v *db_models.EmailVerification) error
	Update(ctx context.Context, v *db_models.EmailVerification) error
	DeleteByEmail(ctx context.Context, email, workflowType string) error
	FindByToken(ctx context.Context, token string) (*db_models.EmailVerification, error)
	// FindLatest returns the most recently created token for the pair; older
	// rows are ignored even if still present.
	FindLatest(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error)
	DeleteExpiredUnverified(ctx context.Context, before int64) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Insert(ctx context.Context, v *db_models.EmailVerification) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *verificationRepository) Update(ctx context.Context, v *db_models.EmailVerification) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *verificationRepository) DeleteByEmail(ctx context.Context, email, workflowType string) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND workflow_type = ?", email, workflowType).
		Delete(&db_models.EmailVerification{}).Error
}

func (r *verificationRepository) FindByToken(ctx context.Context, token string) (*db_models.EmailVerification, error) {
	var v db_models.EmailVerification
	err := r.db.WithContext(ctx).First(&v, "token = ?", token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &v, nil
}

func (r *verificationRepository) FindLatest(ctx context.Context, email, workflowType string) (*db_models.EmailVerification, error) {
	var v db_models.EmailVerification
	err := r.db.WithContext(ctx).
		Where("email = ? AND workflow_type = ?", email, workflowType).
		Order("created_at DESC").
		First(&v).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &v, nil
}

func (r *verificationRepository) DeleteExpiredUnverified(ctx context.Context, before int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("verified = FALSE AND created_at < ?", before).
		Delete(&db_models.EmailVerification{})
	return res.RowsAffected, res.Error
}
