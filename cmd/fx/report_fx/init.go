package report_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
)

var Module = fx.Provide(
	provideReportService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideReportService(subscriptionRepo repositories.SubscriptionRepository) services.ReportServiceInterface {
	return services.NewReportService(subscriptionRepo)
}
