package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/karripar/personal-project-s25/internal/asset"
	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	store, err := asset.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to open storage root: %v", err)
	}

	extractor := asset.NewFrameExtractor(cfg.FFmpegPath, cfg.FFprobePath, cfg.FFmpegTimeout)
	assetService, err := asset.NewService(store, extractor)
	if err != nil {
		log.Fatalf("Failed to initialize asset service: %v", err)
	}

	authService := service.NewAuthService(cfg)
	assetHandler := asset.NewHandler(assetService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    500 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Stored files and their artifacts are served as-is.
	app.Static("/uploads", cfg.UploadDir)

	v1 := app.Group("/api/v1", middleware.AuthRequired(authService))
	v1.Post("/upload", assetHandler.Upload)
	v1.Delete("/delete/:filename", assetHandler.Delete)
	v1.Post("/profile/upload", assetHandler.UploadProfile)
	v1.Delete("/profile/delete/:filename", assetHandler.DeleteProfile)

	log.Printf("Asset store starting on port %s", cfg.UploadPort)
	if err := app.Listen(":" + cfg.UploadPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
