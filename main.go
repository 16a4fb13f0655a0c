package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/database"
	"github.com/mdhaziqomar/memories/handlers"
	"github.com/mdhaziqomar/memories/logger"
	"github.com/mdhaziqomar/memories/middleware"
	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"
	"github.com/mdhaziqomar/memories/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("starting school media archive")

	// Secrets live in .env locally; absence is fine in deployed environments.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.InviteCode{},
		&models.Media{},
		&models.MediaLike{},
		&models.MediaTag{},
	)
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, "uploads"), 0o755); err != nil {
		log.Fatalf("create uploads dir failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(database.DB).BuildContainer()
	serviceContainer := services.NewContainer(repoContainer)
	handlers.SetServices(serviceContainer)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	setupRoutes(r, repoContainer)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine, repos repositories.Container) {
	cfg := config.AppConfig
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
	}

	authRequired := middleware.AuthRequired(repos.Users)
	optionalAuth := middleware.OptionalAuth(repos.Users)
	adminRequired := middleware.AdminRequired()

	api.POST("/auth/invite-codes", authRequired, adminRequired, handlers.CreateInviteCode)
	api.GET("/auth/profile", authRequired, handlers.GetProfile)
	api.GET("/auth/verify", authRequired, handlers.VerifyToken)

	events := api.Group("/events")
	{
		events.GET("", optionalAuth, handlers.ListEvents)
		events.GET("/:id", optionalAuth, handlers.GetEvent)
		events.POST("", authRequired, adminRequired, handlers.CreateEvent)
		events.PUT("/:id", authRequired, adminRequired, handlers.UpdateEvent)
		events.DELETE("/:id", authRequired, adminRequired, handlers.DeleteEvent)
	}

	users := api.Group("/users")
	{
		users.GET("", authRequired, adminRequired, handlers.ListUsers)
		users.GET("/active", authRequired, handlers.ListActiveUsers)
		users.PATCH("/:id/toggle-status", authRequired, adminRequired, handlers.ToggleUserStatus)
	}

	media := api.Group("/media")
	{
		uploadHandlers := []gin.HandlerFunc{authRequired}
		if cfg.RateLimit.Enabled {
			uploadHandlers = append(uploadHandlers,
				middleware.UploadRateLimiter(database.RedisClient, cfg.RateLimit.UploadsPerMin, time.Minute))
		}
		uploadHandlers = append(uploadHandlers, handlers.UploadMedia)
		media.POST("/upload", uploadHandlers...)

		media.GET("", optionalAuth, handlers.ListMedia)
		media.GET("/:id", optionalAuth, handlers.GetMediaDetail)
		media.GET("/:id/file", optionalAuth, handlers.ServeMediaFile)
		media.GET("/:id/thumbnail", optionalAuth, handlers.ServeMediaThumbnail)
		media.POST("/:id/like", authRequired, handlers.ToggleLike)
		media.POST("/:id/tag", authRequired, handlers.TagUser)
	}
}
