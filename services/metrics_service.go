package services

import (
	"github.com/Jose-TorresCL/Diditracker-bot/models"
)

// Profitability metrics. These are pure functions: the trip store calls them
// once at insert time and persists the results, so historical rates never
// shift under a later recomputation.
//
// Both rate formulas guard the zero denominator with a 0 result instead of
// an error. Callers are expected to have validated positivity already; the
// guard only keeps degenerate values from turning into a panic.

// PerKmRate returns the fare earned per kilometer, or 0 when distance
// is not positive
func PerKmRate(fare, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return fare / distance
}

// PerHourRate returns the fare normalized to an hourly figure, or 0 when
// duration is not positive
func PerHourRate(fare float64, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	return fare / (float64(durationMinutes) / 60.0)
}

// AggregateTrips computes count, fare and distance totals, and the mean
// per-km rate over a set of trips. The empty set aggregates to all zeros.
func AggregateTrips(trips []models.Trip) models.TripStats {
	stats := models.TripStats{TripCount: len(trips)}
	if len(trips) == 0 {
		return stats
	}

	var perKmSum float64
	for _, trip := range trips {
		stats.TotalFare += trip.Fare
		stats.TotalDistance += trip.Distance
		perKmSum += trip.PerKm
	}
	stats.AvgPerKm = perKmSum / float64(len(trips))

	return stats
}
