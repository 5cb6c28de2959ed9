package services

import (
	"context"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/request_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

type RewardServiceInterface interface {
	AddBasicReward(ctx context.Context, req request_models.AddBasicRewardRequest) (*response_models.RewardResponse, error)
	AddPremiumReward(ctx context.Context, req request_models.AddPremiumRewardRequest) (*response_models.RewardResponse, error)
	EditReward(ctx context.Context, id string, req request_models.EditRewardRequest) (*response_models.RewardResponse, error)
	DeleteReward(ctx context.Context, id string) error
	ListRewards(ctx context.Context, kind db_models.RewardKind) ([]response_models.RewardResponse, error)
}

type RewardService struct {
	rewardRepo repositories.RewardRepository
}

func NewRewardService(rewardRepo repositories.RewardRepository) RewardServiceInterface {
	return &RewardService{
		rewardRepo: rewardRepo,
	}
}

func (s *RewardService) AddBasicReward(ctx context.Context, req request_models.AddBasicRewardRequest) (*response_models.RewardResponse, error) {
	return s.add(ctx, &db_models.Reward{
		Kind:         db_models.RewardKindBasic,
		Name:         req.Name,
		Quantity:     req.Quantity,
		PointsNeeded: req.PointsNeeded,
	})
}

func (s *RewardService) AddPremiumReward(ctx context.Context, req request_models.AddPremiumRewardRequest) (*response_models.RewardResponse, error) {
	return s.add(ctx, &db_models.Reward{
		Kind:         db_models.RewardKindPremium,
		Name:         req.Reward,
		Discount:     req.Discount,
		PointsNeeded: req.PointsNeeded,
	})
}

// add rejects a catalog-key collision before writing. The check-then-write is
// not transactional against concurrent admins; the unique index on
// (kind, name) backstops it.
func (s *RewardService) add(ctx context.Context, reward *db_models.Reward) (*response_models.RewardResponse, error) {
	existing, err := s.rewardRepo.FindByKindAndName(ctx, reward.Kind, reward.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyExists
	}

	if err := s.rewardRepo.Insert(ctx, reward); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toRewardResponse(reward)
	return &resp, nil
}

// EditReward updates quantity/discount and the points threshold only; the
// catalog key is immutable after creation.
func (s *RewardService) EditReward(ctx context.Context, id string, req request_models.EditRewardRequest) (*response_models.RewardResponse, error) {
	reward, err := s.rewardRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reward == nil {
		return nil, utils.ErrRecordNotFound
	}

	if req.Quantity != nil {
		reward.Quantity = *req.Quantity
	}
	if req.Discount != nil {
		reward.Discount = *req.Discount
	}
	if req.PointsNeeded != nil {
		if *req.PointsNeeded <= 0 {
			return nil, utils.ErrInvalidArgument
		}
		reward.PointsNeeded = *req.PointsNeeded
	}

	if err := s.rewardRepo.Update(ctx, reward); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toRewardResponse(reward)
	return &resp, nil
}

func (s *RewardService) DeleteReward(ctx context.Context, id string) error {
	reward, err := s.rewardRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if reward == nil {
		return utils.ErrRecordNotFound
	}

	if err := s.rewardRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *RewardService) ListRewards(ctx context.Context, kind db_models.RewardKind) ([]response_models.RewardResponse, error) {
	rewards, err := s.rewardRepo.FindByKind(ctx, kind)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RewardResponse, 0, len(rewards))
	for i := range rewards {
		out = append(out, toRewardResponse(&rewards[i]))
	}
	return out, nil
}

func toRewardResponse(reward *db_models.Reward) response_models.RewardResponse {
	return response_models.RewardResponse{
		ID:           reward.ID,
		Kind:         string(reward.Kind),
		Name:         reward.Name,
		Quantity:     reward.Quantity,
		Discount:     reward.Discount,
		PointsNeeded: reward.PointsNeeded,
	}
}
