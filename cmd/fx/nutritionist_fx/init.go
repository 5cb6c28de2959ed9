package nutritionist_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(
	provideNutritionistService, provideApplicationRepo)

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideNutritionistService(
	applicationRepo repositories.ApplicationRepository,
	accountRepo repositories.AccountRepository,
	identity services.IdentityService,
	certificates services.CertificateStore,
	mailService services.IMailService,
) services.NutritionistServiceInterface {
	return services.NewNutritionistService(applicationRepo, accountRepo, identity, certificates, mailService)
}
