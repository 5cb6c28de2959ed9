package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitbite/internal/models/db_models"
)

type RewardRepository interface {
	Insert(ctx context.Context, reward *db_models.Reward) error
	Update(ctx context.Context, reward *db_models.Reward) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Reward, error)
	FindByKindAndName(ctx context.Context, kind db_models.RewardKind, name string) (*db_models.Reward, error)
	FindByKind(ctx context.Context, kind db_models.RewardKind) ([]db_models.Reward, error)
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) Insert(ctx context.Context, reward *db_models.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) Update(ctx context.Context, reward *db_models.Reward) error {
	return r.db.WithContext(ctx).Save(reward).Error
}

func (r *rewardRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Reward{}, "id = ?", id).Error
}

func (r *rewardRepository) FindById(ctx context.Context, id string) (*db_models.Reward, error) {
	var reward db_models.Reward
	err := r.db.WithContext(ctx).First(&reward, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &reward, nil
}

func (r *rewardRepository) FindByKindAndName(ctx context.Context, kind db_models.RewardKind, name string) (*db_models.Reward, error) {
	var reward db_models.Reward
	err := r.db.WithContext(ctx).
		Where("kind = ? AND name = ?", kind, name).
		First(&reward).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &reward, nil
}

func (r *rewardRepository) FindByKind(ctx context.Context, kind db_models.RewardKind) ([]db_models.Reward, error) {
	var rewards []db_models.Reward
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("points_needed ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}
