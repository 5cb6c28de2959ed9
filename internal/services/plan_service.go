package services

import (
	"context"
	"log"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

type PlanServiceInterface interface {
	GetPlan(ctx context.Context) (*response_models.PlanResponse, error)
	UpdatePrice(ctx context.Context, priceMinor int64) error
	AddFeature(ctx context.Context, feature string) error
	UpdateFeature(ctx context.Context, oldFeature, newFeature string) error
	DeleteFeature(ctx context.Context, feature string) error
	SeedDefaultPlan(ctx context.Context) error
}

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) GetPlan(ctx context.Context) (*response_models.PlanResponse, error) {
	plan, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.PlanResponse{
		ID:         plan.ID,
		Code:       plan.Code,
		Name:       plan.Name,
		PriceMinor: plan.PriceMinor,
		Currency:   plan.Currency,
		Features:   []string(plan.Features),
		IsActive:   plan.IsActive,
	}, nil
}

func (p *PlanService) UpdatePrice(ctx context.Context, priceMinor int64) error {
	if priceMinor < 0 {
		return utils.ErrInvalidArgument
	}

	plan, err := p.load(ctx)
	if err != nil {
		return err
	}

	plan.PriceMinor = priceMinor
	if err := p.planRepo.Update(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) AddFeature(ctx context.Context, feature string) error {
	if feature == "" {
		return utils.ErrInvalidArgument
	}

	plan, err := p.load(ctx)
	if err != nil {
		return err
	}

	if indexOf(plan.Features, feature) >= 0 {
		return utils.ErrAlreadyExists
	}

	plan.Features = append(plan.Features, feature)
	if err := p.planRepo.Update(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdateFeature replaces a feature by value, preserving its position in the
// list. Renaming onto another existing feature is a collision.
func (p *PlanService) UpdateFeature(ctx context.Context, oldFeature, newFeature string) error {
	if oldFeature == "" || newFeature == "" {
		return utils.ErrInvalidArgument
	}

	plan, err := p.load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(plan.Features, oldFeature)
	if idx < 0 {
		return utils.ErrRecordNotFound
	}
	if newFeature != oldFeature && indexOf(plan.Features, newFeature) >= 0 {
		return utils.ErrAlreadyExists
	}

	plan.Features[idx] = newFeature
	if err := p.planRepo.Update(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) DeleteFeature(ctx context.Context, feature string) error {
	plan, err := p.load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(plan.Features, feature)
	if idx < 0 {
		return utils.ErrRecordNotFound
	}

	plan.Features = append(plan.Features[:idx], plan.Features[idx+1:]...)
	if err := p.planRepo.Update(ctx, plan); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// SeedDefaultPlan makes sure the premium plan row exists; it runs at startup
// and is a no-op once seeded.
func (p *PlanService) SeedDefaultPlan(ctx context.Context) error {
	err := p.planRepo.EnsureSeeded(ctx, &db_models.Plan{
		Code:       db_models.PlanCodePremium,
		Name:       "FitBite Premium",
		PriceMinor: 999,
		Currency:   "USD",
		Features:   []string{"Personalized meal plans", "Nutritionist chat"},
		IsActive:   true,
	})
	if err != nil {
		log.Printf("Failed to seed premium plan: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) load(ctx context.Context) (*db_models.Plan, error) {
	plan, err := p.planRepo.FindByCode(ctx, db_models.PlanCodePremium)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}
	return plan, nil
}

func indexOf(features []string, feature string) int {
	for i, f := range features {
		if f == feature {
			return i
		}
	}
	return -1
}
