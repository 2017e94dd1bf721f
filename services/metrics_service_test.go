package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
)

func TestPerKmRate(t *testing.T) {
	assert.InDelta(t, 371.43, PerKmRate(5200, 14), 0.01)
	assert.Equal(t, 200.0, PerKmRate(1000, 5))
	assert.Equal(t, 200.0, PerKmRate(2000, 10))
}

func TestPerKmRate_ZeroDistanceYieldsZero(t *testing.T) {
	// The guard returns 0 instead of failing on a zero denominator
	assert.Equal(t, 0.0, PerKmRate(5200, 0))
	assert.Equal(t, 0.0, PerKmRate(5200, -1))
}

func TestPerHourRate(t *testing.T) {
	// 5200 over 28 minutes normalizes to 5200/(28/60) per hour
	assert.InDelta(t, 11142.86, PerHourRate(5200, 28), 0.01)
	assert.Equal(t, 6000.0, PerHourRate(3000, 30))
}

func TestPerHourRate_ZeroDurationYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, PerHourRate(5200, 0))
	assert.Equal(t, 0.0, PerHourRate(5200, -10))
}

func TestAggregateTrips(t *testing.T) {
	trips := []models.Trip{
		{Fare: 1000, Distance: 5, PerKm: 200},
		{Fare: 2000, Distance: 10, PerKm: 200},
	}

	stats := AggregateTrips(trips)

	assert.Equal(t, 2, stats.TripCount)
	assert.Equal(t, 3000.0, stats.TotalFare)
	assert.Equal(t, 15.0, stats.TotalDistance)
	assert.Equal(t, 200.0, stats.AvgPerKm)
}

func TestAggregateTrips_AveragesStoredRates(t *testing.T) {
	// The mean is taken over the stored per-km rates, not recomputed
	// from the fare and distance totals
	trips := []models.Trip{
		{Fare: 300, Distance: 1, PerKm: 300},
		{Fare: 100, Distance: 1, PerKm: 100},
	}

	stats := AggregateTrips(trips)

	assert.Equal(t, 200.0, stats.AvgPerKm)
}

func TestAggregateTrips_EmptyYieldsZeros(t *testing.T) {
	stats := AggregateTrips(nil)

	assert.Equal(t, models.TripStats{}, stats)
}
