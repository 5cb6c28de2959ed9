package content_fx

import (
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(provideContentService)

func provideContentService(
	planRepo repositories.PlanRepository,
	rewardRepo repositories.RewardRepository,
	accountRepo repositories.AccountRepository,
) services.ContentServiceInterface {
	var client *openai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client = openai.NewClient(key)
	} else {
		log.Println("OPENAI_API_KEY not set, copy suggestions disabled")
	}

	return services.NewContentService(planRepo, rewardRepo, accountRepo, client)
}
