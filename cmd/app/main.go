package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fitbite/cmd/fx/account_fx"
	"fitbite/cmd/fx/content_fx"
	"fitbite/cmd/fx/controllers_fx"
	"fitbite/cmd/fx/db_fx"
	"fitbite/cmd/fx/identity_fx"
	"fitbite/cmd/fx/mail_fx"
	"fitbite/cmd/fx/memcache_fx"
	"fitbite/cmd/fx/nutritionist_fx"
	"fitbite/cmd/fx/plan_fx"
	"fitbite/cmd/fx/report_fx"
	"fitbite/cmd/fx/reward_fx"
	"fitbite/cmd/fx/storage_fx"
	"fitbite/cmd/fx/verification_fx"
	"fitbite/internal/api/controllers"
	"fitbite/internal/services"
	mem "fitbite/pkg/memcache"
	"fitbite/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set; refusing to sign tokens with an empty key")
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         dsn,
			Environment: os.Getenv("APP_ENV"),
		}); err != nil {
			log.Printf("Sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		storage_fx.Module,
		identity_fx.Module,
		account_fx.Module,
		verification_fx.Module,
		nutritionist_fx.Module,
		reward_fx.Module,
		plan_fx.Module,
		report_fx.Module,
		content_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedPlan),
		fx.Invoke(StartVerificationCleanup),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

// SeedPlan guarantees the premium plan row exists before the API takes traffic.
func SeedPlan(lc fx.Lifecycle, planService services.PlanServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return planService.SeedDefaultPlan(ctx)
		},
	})
}

// StartVerificationCleanup purges expired unverified email rows once an hour.
func StartVerificationCleanup(lc fx.Lifecycle, verificationService services.VerificationServiceInterface) {
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker := time.NewTicker(time.Hour)
			go func() {
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if err := verificationService.CleanupExpired(context.Background()); err != nil {
							log.Printf("verification cleanup failed: %v", err)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	verificationController *controllers.VerificationController,
	nutritionistController *controllers.NutritionistController,
	rewardController *controllers.RewardController,
	planController *controllers.PlanController,
	reportController *controllers.ReportController,
	contentController *controllers.ContentController,
	revocations mem.RevocationStore) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		verificationController,
		nutritionistController,
		rewardController,
		planController,
		reportController,
		contentController,
		revocations)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	verificationController *controllers.VerificationController,
	nutritionistController *controllers.NutritionistController,
	rewardController *controllers.RewardController,
	planController *controllers.PlanController,
	reportController *controllers.ReportController,
	contentController *controllers.ContentController,
	revocations mem.RevocationStore) {

	r.POST("/accounts/login", accountController.Login)
	r.GET("/verify-email", verificationController.VerifyEmailToken)
	r.POST("/nutritionist/apply", nutritionistController.SubmitApplication)

	verifyGroup := r.Group("/verify")
	verifyGroup.POST("/send", verificationController.SendVerificationEmail)
	verifyGroup.POST("/resend", verificationController.ResendVerificationEmail)
	verifyGroup.GET("/status", verificationController.CheckEmailVerification)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(revocations))
	adminGroup.Use(middleware.AdminMiddleware())

	adminGroup.GET("/users", accountController.GetAllAccounts)
	adminGroup.POST("/users/:id/suspend", accountController.SuspendUser)
	adminGroup.POST("/users/:id/unsuspend", accountController.UnsuspendUser)
	adminGroup.POST("/users/:id/delete", accountController.DeleteUser)

	adminGroup.POST("/admins/invite", accountController.InviteAdmin)
	adminGroup.POST("/admins", accountController.CreateAdminUser)
	adminGroup.POST("/admins/role", accountController.AddAdminRole)

	adminGroup.GET("/nutritionists", nutritionistController.ListApplications)
	adminGroup.POST("/nutritionists/:id/approve", nutritionistController.ApproveApplication)
	adminGroup.POST("/nutritionists/:id/reject", nutritionistController.RejectApplication)
	adminGroup.GET("/nutritionists/:id/certificate-url", nutritionistController.GetCertificateURL)

	adminGroup.GET("/rewards", rewardController.ListRewards)
	adminGroup.POST("/rewards/basic", rewardController.AddBasicReward)
	adminGroup.POST("/rewards/premium", rewardController.AddPremiumReward)
	adminGroup.PUT("/rewards/:id", rewardController.EditReward)
	adminGroup.DELETE("/rewards/:id", rewardController.DeleteReward)

	adminGroup.GET("/plans/premium", planController.GetPlan)
	adminGroup.PUT("/plans/premium/price", planController.UpdatePrice)
	adminGroup.POST("/plans/premium/features", planController.AddFeature)
	adminGroup.PUT("/plans/premium/features", planController.UpdateFeature)
	adminGroup.DELETE("/plans/premium/features", planController.DeleteFeature)

	adminGroup.GET("/reports/subscriptions", reportController.GetSubscriptionReport)

	adminGroup.GET("/site-preview", contentController.GetSitePreview)
	adminGroup.POST("/site-preview/suggest-copy", contentController.SuggestCopy)
}
