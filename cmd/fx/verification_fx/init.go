package verification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(
	provideVerificationService, provideVerificationRepo)

func provideVerificationRepo(db *gorm.DB) repositories.VerificationRepository {
	return repositories.NewVerificationRepository(db)
}

func provideVerificationService(
	verificationRepo repositories.VerificationRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.VerificationServiceInterface {
	return services.NewVerificationService(verificationRepo, accountRepo, mailService)
}
