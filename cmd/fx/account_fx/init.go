package account_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	identity services.IdentityService,
	verification services.VerificationServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, identity, verification, os.Getenv("APP_BASE_URL"))
}
