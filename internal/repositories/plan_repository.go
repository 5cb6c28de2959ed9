package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fitbite/internal/models/db_models"
)

type PlanRepository interface {
	FindByCode(ctx context.Context, code string) (*db_models.Plan, error)
	Update(ctx context.Context, plan *db_models.Plan) error
	EnsureSeeded(ctx context.Context, plan *db_models.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) FindByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

// EnsureSeeded inserts the plan unless a row with the same code exists.
func (p *planRepository) EnsureSeeded(ctx context.Context, plan *db_models.Plan) error {
	existing, err := p.FindByCode(ctx, plan.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return p.db.WithContext(ctx).Create(plan).Error
}
