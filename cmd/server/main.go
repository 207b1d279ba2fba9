package main

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5"

	"github.com/vytal-health/DashboardBack/internal/config"
	"github.com/vytal-health/DashboardBack/internal/database"
	"github.com/vytal-health/DashboardBack/internal/models"
	"github.com/vytal-health/DashboardBack/internal/repository"
	"github.com/vytal-health/DashboardBack/internal/routes"
	"github.com/vytal-health/DashboardBack/pkg/utils"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl, cfg.DBMaxConns, cfg.DBMinConns); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if err := seedDemoUser(cfg); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	routes.RegisterRoutes(app, cfg, database.DB)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// seedDemoUser creates the demo account on startup when one is configured,
// so a fresh deployment has a login to try.
func seedDemoUser(cfg *config.Config) error {
	if cfg.DemoUserEmail == "" || cfg.DemoUserPassword == "" {
		return nil
	}

	userRepo := repository.NewUserRepository(database.DB)
	ctx := context.Background()

	_, err := userRepo.GetByEmail(ctx, cfg.DemoUserEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := utils.HashPassword(cfg.DemoUserPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        cfg.DemoUserEmail,
		PasswordHash: hashed,
		DisplayName:  cfg.DemoUserName,
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	log.Printf("Seeded demo user %s", cfg.DemoUserEmail)
	return nil
}
