package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/karripar/personal-project-s25/internal/config"
	"github.com/karripar/personal-project-s25/internal/handler"
	"github.com/karripar/personal-project-s25/internal/middleware"
	"github.com/karripar/personal-project-s25/internal/repository"
	"github.com/karripar/personal-project-s25/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (responses will not be cached)", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
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
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Media API starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	// Reads are public, writes require a token.
	media := v1.Group("/media")
	media.Get("/", h.Media.List)
	media.Get("/search", h.Media.Search)
	media.Get("/mostliked", h.Media.MostLiked)
	media.Get("/user/:id", h.Media.ListByUser)
	media.Get("/:id", h.Media.Get)

	protectedMedia := media.Group("", middleware.AuthRequired(authService))
	protectedMedia.Get("/own/list", h.Media.ListOwn)
	protectedMedia.Get("/followed/feed", h.Media.ListFollowed)
	protectedMedia.Post("/", h.Media.Create)
	protectedMedia.Put("/:id", h.Media.Update)
	protectedMedia.Delete("/:id", h.Media.Delete)

	tags := v1.Group("/tags")
	tags.Get("/", h.Tag.List)
	tags.Get("/media/:mediaId", h.Tag.ListByMedia)
	tags.Get("/:tagId/media", h.Tag.MediaByTag)

	protectedTags := tags.Group("", middleware.AuthRequired(authService))
	protectedTags.Post("/media/:mediaId", h.Tag.Attach)
	protectedTags.Delete("/media/:mediaId/:tagId", h.Tag.Detach)
	protectedTags.Delete("/:tagId", h.Tag.Delete)

	likes := v1.Group("/likes")
	likes.Get("/media/:mediaId/count", h.Like.Count)

	protectedLikes := likes.Group("", middleware.AuthRequired(authService))
	protectedLikes.Post("/media/:mediaId", h.Like.Add)
	protectedLikes.Delete("/media/:mediaId", h.Like.Remove)
	protectedLikes.Get("/media/:mediaId/own", h.Like.HasLiked)
	protectedLikes.Get("/own", h.Like.ListOwn)

	comments := v1.Group("/comments")
	comments.Get("/media/:mediaId", h.Comment.ListByMedia)
	comments.Get("/media/:mediaId/count", h.Comment.Count)

	protectedComments := comments.Group("", middleware.AuthRequired(authService))
	protectedComments.Post("/media/:mediaId", h.Comment.Create)
	protectedComments.Put("/:id", h.Comment.Update)
	protectedComments.Delete("/:id", h.Comment.Delete)

	ratings := v1.Group("/ratings")
	ratings.Get("/media/:mediaId/average", h.Rating.Average)

	protectedRatings := ratings.Group("", middleware.AuthRequired(authService))
	protectedRatings.Post("/media/:mediaId", h.Rating.Rate)
	protectedRatings.Delete("/media/:mediaId", h.Rating.Remove)
	protectedRatings.Get("/own", h.Rating.ListOwn)

	favorites := v1.Group("/favorites")
	favorites.Get("/media/:mediaId/count", h.Favorite.Count)

	protectedFavorites := favorites.Group("", middleware.AuthRequired(authService))
	protectedFavorites.Post("/media/:mediaId", h.Favorite.Add)
	protectedFavorites.Delete("/media/:mediaId", h.Favorite.Remove)
	protectedFavorites.Get("/own", h.Favorite.ListOwn)

	follows := v1.Group("/follows")
	follows.Get("/followers/:userId", h.Follow.Followers)
	follows.Get("/following/:userId", h.Follow.Following)

	protectedFollows := follows.Group("", middleware.AuthRequired(authService))
	protectedFollows.Post("/:userId", h.Follow.Follow)
	protectedFollows.Delete("/:userId", h.Follow.Unfollow)

	notifications := v1.Group("/notifications", middleware.AuthRequired(authService))
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.CountUnread)
	notifications.Patch("/:id/read", h.Notification.MarkRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllRead)
	notifications.Patch("/:id/archive", h.Notification.Archive)

	analytics := v1.Group("/analytics", middleware.AuthRequired(authService))
	analytics.Get("/activity", h.Analytics.UserActivity)
	analytics.Get("/notifications", h.Analytics.UserNotifications)
	analytics.Get("/latestnotifications", h.Analytics.LatestNotifications)
	analytics.Get("/latestmedia", h.Analytics.LatestMedia)
	analytics.Get("/mediaratings", h.Analytics.MediaRatings)
	analytics.Get("/mediacomments", h.Analytics.MediaComments)
}
