package routes

import (
	"github.com/gofiber/adaptor/v2"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vytal-health/DashboardBack/internal/config"
	"github.com/vytal-health/DashboardBack/internal/handlers"
	"github.com/vytal-health/DashboardBack/internal/middleware"
	"github.com/vytal-health/DashboardBack/internal/repository"
	"github.com/vytal-health/DashboardBack/internal/services"
	chatws "github.com/vytal-health/DashboardBack/internal/websocket"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewProfileSnapshotRepository(db)
	chatLogRepo := repository.NewChatLogRepository(db)

	profileService := services.NewProfileService(snapshotRepo)
	ledgerService := services.NewLedgerService(profileService)
	assistantService := services.NewAssistantService(profileService, chatLogRepo)

	authHandler := handlers.NewAuthHandler(userRepo, profileService, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profileService)
	onboardingHandler := handlers.NewOnboardingHandler(profileService)
	actionsHandler := handlers.NewActionsHandler(profileService, ledgerService)
	progressHandler := handlers.NewProgressHandler(profileService)
	referenceHandler := handlers.NewReferenceHandler()

	assistantHub := chatws.NewHub()
	go assistantHub.Run()
	chatHandler := handlers.NewChatHandler(assistantService, assistantHub, cfg.JWTSecret)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	profile := authProtected.Group("/profile")
	profile.Get("", profileHandler.GetProfile)
	profile.Put("", profileHandler.UpdateProfile)
	profile.Put("/goal", profileHandler.SetGoal)
	profile.Delete("", profileHandler.ResetProfile)

	onboarding := authProtected.Group("/onboarding")
	onboarding.Get("/plan", onboardingHandler.PreviewPlan)
	onboarding.Post("/complete", onboardingHandler.CompleteOnboarding)

	actions := authProtected.Group("/actions")
	actions.Get("", actionsHandler.ListActions)
	actions.Get("/stats", actionsHandler.GetStats)
	actions.Post("/:id/log", actionsHandler.LogAction)

	progress := authProtected.Group("/progress")
	progress.Get("/projections", progressHandler.GetProjections)

	chat := authProtected.Group("/chat")
	chat.Post("", chatHandler.SendMessage)
	chat.Get("/history", chatHandler.GetHistory)
	chat.Delete("/history", chatHandler.ClearHistory)

	ref := authProtected.Group("/reference")
	ref.Get("/statistics", referenceHandler.GetStatistics)
	ref.Get("/risk", referenceHandler.GetRiskDistribution)
	ref.Get("/correlations", referenceHandler.GetCorrelations)
	ref.Get("/demographics", referenceHandler.GetDemographics)
	ref.Get("/findings", referenceHandler.GetKeyFindings)

	api.Use("/v1/ws", chatHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(chatHandler.HandleWebSocket))

	if cfg.DocsEnabled() {
		RegisterDocs(app)
	}
}
