package controllers_fx

import (
	"go.uber.org/fx"

	"fitbite/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewVerificationController),
	fx.Provide(controllers.NewNutritionistController),
	fx.Provide(controllers.NewRewardController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewContentController))
