package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	dbadapter "ripple/internal/adapters/database"
	"ripple/internal/adapters/httpapi"
	redisadapter "ripple/internal/adapters/redis"
	"ripple/internal/config"
	postapp "ripple/internal/core/post/service"
	userapp "ripple/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init()

	mongoClient, db := config.InitMongo()
	redisClient := config.InitRedis()
	defer closeResources(mongoClient, redisClient, config.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := config.EnsureIndexes(ctx, db); err != nil {
		config.Logger.Fatal("Error creating indexes:", zap.Error(err))
	}
	config.Logger.Info("✅ Database indexes ensured")

	userRepo := dbadapter.NewUserRepositoryMongo(db.Collection("users"))
	postRepo := dbadapter.NewPostRepositoryMongo(db.Collection("posts"))
	limiter := redisadapter.NewRateLimiterRedis(redisClient)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")), config.Logger)
	postSvc := postapp.NewPostService(postRepo, userSvc, config.Logger)

	writeLimit, err := strconv.Atoi(os.Getenv("RATE_LIMIT"))
	if err != nil || writeLimit <= 0 {
		writeLimit = 60
	}
	windowSec, err := strconv.Atoi(os.Getenv("RATE_WINDOW_SEC"))
	if err != nil || windowSec <= 0 {
		windowSec = 60
	}

	r := httpapi.SetupRoutes(
		userSvc,
		postSvc,
		[]byte(os.Getenv("JWT_SECRET")),
		limiter,
		writeLimit,
		time.Duration(windowSec)*time.Second,
		config.Logger,
	)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("App is running...", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(mongoClient *mongo.Client, redisClient *redis.Client, logger *zap.Logger) {
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("Error closing MongoDB connection:", zap.Error(err))
	}
}
