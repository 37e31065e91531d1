package app

import (
	"database/sql"

	"go-worktime/internal/messaging/kafka"
	"go-worktime/internal/middleware"
	"go-worktime/internal/shared/counter"
	"go-worktime/internal/timeentry"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	// --- Repositories ---
	timeEntryRepo := timeentry.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	timeEntryService := timeentry.NewServiceWithOutbox(db, timeEntryRepo, counterRepo, rdb, outboxRepo)

	// --- Handlers ---
	timeEntryHandler := timeentry.NewHandler(timeEntryService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		timeentry.RegisterRoutes(api, timeEntryHandler, rdb)
	}

	return nil
}
