package reward_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(
	provideRewardService, provideRewardRepo)

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideRewardService(rewardRepo repositories.RewardRepository) services.RewardServiceInterface {
	return services.NewRewardService(rewardRepo)
}
