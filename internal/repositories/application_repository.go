package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitbite/internal/models/db_models"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, app *db_models.NutritionistApplication) error
	Update(ctx context.Context, app *db_models.NutritionistApplication) error
	FindByAccountId(ctx context.Context, accountID string) (*db_models.NutritionistApplication, error)
	FindByEmail(ctx context.Context, email string) (*db_models.NutritionistApplication, error)
	FindAll(ctx context.Context) ([]db_models.NutritionistApplication, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Insert(ctx context.Context, app *db_models.NutritionistApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepository) Update(ctx context.Context, app *db_models.NutritionistApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *applicationRepository) FindByAccountId(ctx context.Context, accountID string) (*db_models.NutritionistApplication, error) {
	var app db_models.NutritionistApplication
	err := r.db.WithContext(ctx).First(&app, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &app, nil
}

func (r *applicationRepository) FindByEmail(ctx context.Context, email string) (*db_models.NutritionistApplication, error) {
	var app db_models.NutritionistApplication
	err := r.db.WithContext(ctx).First(&app, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &app, nil
}

func (r *applicationRepository) FindAll(ctx context.Context) ([]db_models.NutritionistApplication, error) {
	var apps []db_models.NutritionistApplication
	err := r.db.WithContext(ctx).Order("applied_at DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
