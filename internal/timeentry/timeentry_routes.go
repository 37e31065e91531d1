package timeentry

import (
	"go-worktime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	entries := r.Group("/time-entries")
	entries.Use(middleware.AuthMiddleware())
	{
		entries.POST("/clock-in", middleware.RateLimitByUser(rate.Limit(1), 5), middleware.Idempotency(rdb), handler.ClockIn)
		entries.POST("/clock-out", middleware.RateLimitByUser(rate.Limit(1), 5), middleware.Idempotency(rdb), handler.ClockOut)
		entries.POST("/leave", middleware.Idempotency(rdb), handler.CreateLeave)
		entries.GET("", handler.GetAll)
		entries.GET("/summary/:date", handler.DaySummary)
		entries.GET("/:id", handler.GetById)
		entries.PUT("/:id", handler.Update)
		entries.DELETE("/:id", handler.Delete)
	}
}
