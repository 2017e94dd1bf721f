package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jose-TorresCL/Diditracker-bot/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *handlers.HandlerServices) {
	router.Use(requestID())

	v1 := router.Group("/api/v1")
	{
		// Trip endpoints
		v1.POST("/trips/add", h.AddTrip)
		v1.POST("/trips/dailyStats", h.DailyStats)
		v1.POST("/trips/weeklyStats", h.WeeklyStats)
		v1.POST("/trips/reset", h.ResetTrips)
		v1.POST("/trips/export", h.ExportWeekly)
	}
}

// requestID tags every request with an id for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
