package handlers

import (
	"github.com/Jose-TorresCL/Diditracker-bot/services"
)

// HandlerServices contains all service dependencies for the HTTP API,
// plus the presentation-only per-km target read once at startup
type HandlerServices struct {
	TripService  *services.TripService
	ExcelService *services.ExcelService
	MetaPerKm    float64
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(tripService *services.TripService, excelService *services.ExcelService, metaPerKm float64) *HandlerServices {
	return &HandlerServices{
		TripService:  tripService,
		ExcelService: excelService,
		MetaPerKm:    metaPerKm,
	}
}
