package repositories

import (
	"context"

	"gorm.io/gorm"

	"fitbite/internal/models/db_models"
)

type SubscriptionRepository interface {
	CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]db_models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CountByStatus(ctx context.Context, status db_models.SubscriptionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Subscription{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Subscription{}).Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) FindRecent(ctx context.Context, limit int) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
