// models/models.go
package models

import "time"

// Trip represents a single recorded ride with its derived profitability rates.
// Trips are immutable: they are inserted once and only removed in bulk by the
// per-day reset operation.
type Trip struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"userId"`
	UserName string  `json:"userName,omitempty"`
	Fare     float64 `json:"fare"`
	Distance float64 `json:"distance"` // kilometers
	Duration int     `json:"duration"` // minutes
	PerKm    float64 `json:"perKm"`
	PerHour  float64 `json:"perHour"`
	// CreatedAt is assigned by the store. Day is the local calendar date
	// (YYYY-MM-DD) at the moment of insertion and is never recomputed.
	CreatedAt time.Time `json:"createdAt"`
	Day       string    `json:"day"`
}

// TripStats is the aggregate answer for the daily and weekly queries.
// A window with no trips yields the zero value, never an error.
type TripStats struct {
	TripCount     int     `json:"tripCount"`
	TotalFare     float64 `json:"totalFare"`
	TotalDistance float64 `json:"totalDistance"`
	AvgPerKm      float64 `json:"avgPerKm"`
}

// AddTripRequest is the HTTP body for recording a trip
type AddTripRequest struct {
	UserID   int64   `json:"userId"`
	UserName string  `json:"userName"`
	Fare     float64 `json:"fare"`
	Distance float64 `json:"distance"`
	Duration int     `json:"duration"`
}

// AddTripResponse returns the derived rates for the recorded trip
type AddTripResponse struct {
	PerKm     float64 `json:"perKm"`
	PerHour   float64 `json:"perHour"`
	MetTarget bool    `json:"metTarget"`
}

// StatsRequest asks for aggregates for a user; Day is optional and only
// honored by the daily query (defaults to today)
type StatsRequest struct {
	UserID int64  `json:"userId"`
	Day    string `json:"day,omitempty"`
}

// StatsResponse wraps the aggregates with the presentation-only target flag
type StatsResponse struct {
	Stats     TripStats `json:"stats"`
	MetTarget bool      `json:"metTarget"`
}

// ResetRequest deletes a user's trips for one day; Confirm must be true
type ResetRequest struct {
	UserID  int64  `json:"userId"`
	Day     string `json:"day,omitempty"`
	Confirm bool   `json:"confirm"`
}

// ResetResponse reports how many trips were removed
type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}

// ExportRequest asks for the weekly Excel report for a user
type ExportRequest struct {
	UserID int64 `json:"userId"`
}
