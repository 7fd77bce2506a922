package app

import (
	"os"

	"mi-ciec/internal/middleware"
	"mi-ciec/internal/shared/blobstore"
	"mi-ciec/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, modules and routes onto the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	blobs, err := blobstore.NewS3Store()
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.GatewayUser())

	return registerModules(router, sqlDB, gormDB, redisClient, blobs)
}
