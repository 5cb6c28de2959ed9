package services

import (
	"context"

	dbm "fitbite/internal/models/db_models"
	resp "fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

type ReportServiceInterface interface {
	BuildSubscriptionReport(ctx context.Context) (*resp.SubscriptionReport, error)
}

type reportService struct {
	subscriptionRepo repositories.SubscriptionRepository
}

func NewReportService(subscriptionRepo repositories.SubscriptionRepository) ReportServiceInterface {
	return &reportService{subscriptionRepo: subscriptionRepo}
}

func (s *reportService) BuildSubscriptionReport(ctx context.Context) (*resp.SubscriptionReport, error) {
	total, err := s.subscriptionRepo.CountTotal(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	active, err := s.subscriptionRepo.CountByStatus(ctx, dbm.SubStatusActive)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	expired, err := s.subscriptionRepo.CountByStatus(ctx, dbm.SubStatusExpired)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	canceled, err := s.subscriptionRepo.CountByStatus(ctx, dbm.SubStatusCanceled)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recentRows, err := s.subscriptionRepo.FindRecent(ctx, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var recent []resp.RecentSubscription
	for _, r := range recentRows {
		recent = append(recent, resp.RecentSubscription{
			ID:            r.ID,
			AccountID:     r.AccountID,
			PlanCode:      r.PlanCode,
			Status:        string(r.Status),
			StartsAt:      r.StartsAt,
			EndsAt:        r.EndsAt,
			PaymentMethod: r.PaymentMethod,
		})
	}

	return &resp.SubscriptionReport{
		Total:    total,
		Active:   active,
		Expired:  expired,
		Canceled: canceled,
		Recent:   recent,
	}, nil
}
