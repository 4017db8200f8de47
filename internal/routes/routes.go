package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/handlers"
	"github.com/inkleapp/inkle-backend/internal/middleware"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	postHandler *handlers.PostHandler,
	activityHandler *handlers.ActivityHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Users and relationships
	users := api.Group("/users", middleware.JWTProtected(cfg))
	users.Get("/me", authHandler.Me)
	users.Get("/:username", userHandler.GetProfile)
	users.Post("/:username/follow", userHandler.Follow)
	users.Post("/:username/unfollow", userHandler.Unfollow)
	users.Post("/:username/block", userHandler.Block)
	users.Post("/:username/unblock", userHandler.Unblock)

	// Posts and likes
	posts := api.Group("/posts", middleware.JWTProtected(cfg))
	posts.Post("/", postHandler.Create)
	posts.Get("/", postHandler.Feed)
	posts.Get("/:id", postHandler.Get)
	posts.Delete("/:id", postHandler.Delete)
	posts.Post("/:id/like", postHandler.Like)
	posts.Post("/:id/unlike", postHandler.Unlike)

	// Activity audit stream
	api.Get("/activities/global", middleware.JWTProtected(cfg), activityHandler.Global)

	// Content reports
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.Create)

	// Admin moderation panel
	admin := api.Group("/admin", middleware.JWTOrAdminToken(cfg), middleware.RequireRole(db, cfg, models.RoleAdmin))
	admin.Delete("/posts/:id", adminHandler.DeletePost)
	admin.Delete("/users/:username", adminHandler.DeleteUser)
	admin.Get("/reports", adminHandler.ListReports)
	admin.Put("/reports/:id", adminHandler.ActionReport)

	// Owner-only role management
	owners := api.Group("/admin/owners", middleware.JWTOrAdminToken(cfg), middleware.RequireRole(db, cfg, models.RoleOwner))
	owners.Post("/promote/:username", adminHandler.Promote)
	owners.Post("/demote/:username", adminHandler.Demote)
}
