package main

import (
	"context"
	"fmt"
	"time"

	"task-scheduler/configs"
	v1 "task-scheduler/internal/api/v1"
	"task-scheduler/internal/api/v1/handlers"
	"task-scheduler/internal/cache"
	"task-scheduler/internal/middleware"
	"task-scheduler/internal/repository"
	"task-scheduler/internal/token"
	myws "task-scheduler/internal/websocket"
	"task-scheduler/pkg/database"
	"task-scheduler/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.ErrorLogger.Fatal("JWT_SECRET is not set")
	}

	db := database.ConnectDB(cfg)
	defer db.Close()
	logger.SystemLogger.Info("Database Connected")

	repository.CreateTableIfNotExists(db)

	redisClient := database.ConnectRedis(context.Background(), cfg)
	defer redisClient.Close()

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	taskCache := cache.NewTaskCache(redisClient)

	hub := myws.NewHub()
	go hub.Run()

	h := handlers.NewHandler(userRepo, taskRepo, tokens, taskCache, hub)

	app := fiber.New()

	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	v1.RegisterRoutes(app, h, tokens)

	// WebSocket task-event feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		client := &myws.Client{Conn: c}
		hub.Register <- client
		defer func() {
			hub.Unregister <- client
		}()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	logger.SystemLogger.Info("Application ready", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
