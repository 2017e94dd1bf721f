// handlers/trip_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

// AddTrip records a trip and returns the derived rates.
// Positivity of fare/distance/duration is validated here, before the core:
// the store itself accepts whatever it is given.
func (h *HandlerServices) AddTrip(c *gin.Context) {
	var request models.AddTripRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := utils.ValidateTripInput(request.Fare, request.Distance, request.Duration); err != nil {
		utils.HandleError(c, err)
		return
	}

	perKm, perHour, err := h.TripService.RecordTrip(
		request.UserID, request.UserName, request.Fare, request.Distance, request.Duration,
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.AddTripResponse{
		PerKm:     utils.Round(perKm),
		PerHour:   utils.Round(perHour),
		MetTarget: perKm >= h.MetaPerKm,
	})
}

// DailyStats returns today's aggregates for a user (or an explicit day).
// A user with no trips gets zeros, not an error.
func (h *HandlerServices) DailyStats(c *gin.Context) {
	var request models.StatsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stats, err := h.TripService.DailyStats(request.UserID, request.Day)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.StatsResponse{
		Stats:     stats,
		MetTarget: stats.AvgPerKm >= h.MetaPerKm,
	})
}

// WeeklyStats returns the trailing 7-day aggregates for a user
func (h *HandlerServices) WeeklyStats(c *gin.Context) {
	var request models.StatsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	stats, err := h.TripService.WeeklyStats(request.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.StatsResponse{
		Stats:     stats,
		MetTarget: stats.AvgPerKm >= h.MetaPerKm,
	})
}

// ResetTrips deletes a user's trips for one day (default today).
// The confirm flag is the HTTP version of the bot's "/reset confirm" gate.
func (h *HandlerServices) ResetTrips(c *gin.Context) {
	var request models.ResetRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if !request.Confirm {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrConfirmRequired))
		return
	}

	deleted, err := h.TripService.ResetDay(request.UserID, request.Day)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.ResetResponse{Deleted: deleted})
}

// ExportWeekly streams the weekly Excel report as a download
func (h *HandlerServices) ExportWeekly(c *gin.Context) {
	var request models.ExportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	excelFile, filename, err := h.ExcelService.ExportWeeklyReport(request.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export trips: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
