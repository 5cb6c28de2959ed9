package services

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"fitbite/internal/models/db_models"
	"fitbite/internal/models/response_models"
	"fitbite/internal/repositories"
	"fitbite/pkg/utils"
)

// ContentService backs the marketing-site simulator: it assembles a preview
// of the landing page from live configuration so an admin can check what the
// public site will render before publishing changes.
type ContentServiceInterface interface {
	BuildSitePreview(ctx context.Context) (*response_models.SitePreview, error)
	SuggestCopy(ctx context.Context, section string) (*response_models.CopySuggestion, error)
}

type ContentService struct {
	planRepo    repositories.PlanRepository
	rewardRepo  repositories.RewardRepository
	accountRepo repositories.AccountRepository
	openaiCli   *openai.Client // nil when OPENAI_API_KEY is unset
}

func NewContentService(
	planRepo repositories.PlanRepository,
	rewardRepo repositories.RewardRepository,
	accountRepo repositories.AccountRepository,
	openaiCli *openai.Client,
) ContentServiceInterface {
	return &ContentService{
		planRepo:    planRepo,
		rewardRepo:  rewardRepo,
		accountRepo: accountRepo,
		openaiCli:   openaiCli,
	}
}

func (s *ContentService) BuildSitePreview(ctx context.Context) (*response_models.SitePreview, error) {
	plan, err := s.planRepo.FindByCode(ctx, db_models.PlanCodePremium)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	basic, err := s.rewardRepo.FindByKind(ctx, db_models.RewardKindBasic)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	premium, err := s.rewardRepo.FindByKind(ctx, db_models.RewardKindPremium)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	nutritionists, err := s.accountRepo.CountByRole(ctx, db_models.RoleNutritionist)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	preview := &response_models.SitePreview{
		PlanName:          plan.Name,
		PriceMinor:        plan.PriceMinor,
		Currency:          plan.Currency,
		Features:          []string(plan.Features),
		NutritionistCount: nutritionists,
	}
	for i := range basic {
		preview.BasicRewards = append(preview.BasicRewards, toRewardResponse(&basic[i]))
	}
	for i := range premium {
		preview.PremiumRewards = append(preview.PremiumRewards, toRewardResponse(&premium[i]))
	}
	return preview, nil
}

// SuggestCopy drafts marketing copy for one landing-page section, grounded on
// the current plan config. Requires OPENAI_API_KEY.
func (s *ContentService) SuggestCopy(ctx context.Context, section string) (*response_models.CopySuggestion, error) {
	if section == "" {
		return nil, utils.ErrInvalidArgument
	}
	if s.openaiCli == nil {
		return nil, utils.ErrFailedPrecondition
	}

	plan, err := s.planRepo.FindByCode(ctx, db_models.PlanCodePremium)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	prompt := fmt.Sprintf(
		"Write a short marketing paragraph for the %q section of a diet-tracking app landing page. "+
			"The premium plan is called %q, costs %d %s cents per month and includes: %v. "+
			"Keep it under 60 words, friendly tone, no emojis.",
		section, plan.Name, plan.PriceMinor, plan.Currency, []string(plan.Features))

	res, err := s.openaiCli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("Copy suggestion request failed: %v", err)
		return nil, utils.ErrExternalService
	}
	if len(res.Choices) == 0 {
		return nil, utils.ErrExternalService
	}

	return &response_models.CopySuggestion{
		Section: section,
		Copy:    res.Choices[0].Message.Content,
	}, nil
}
