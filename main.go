// main.go
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/token"
	"hotel-booking/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional hotel cache
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := cache.Connect(ctx, config.Redis.Addr, config.Redis.Password, config.Redis.DB)
	cancel()
	if err != nil {
		logger.Warn("Redis unavailable, hotel cache disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	}

	deps := usecase.Dependencies{
		Tokens: token.NewJWT(config.JWT.Secret, config.JWT.Expiry),
		Cache:  cache.New(redisClient, config.Redis.CacheTTL, logger),
		Mailer: mailer.NewSMTPMailer(mailer.Config{
			Host:     config.Email.Host,
			Port:     config.Email.Port,
			User:     config.Email.User,
			Password: config.Email.Password,
		}),
		Metrics: metrics.New(),
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, deps, config, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}
