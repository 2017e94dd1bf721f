// services/trip_service.go
package services

import (
	"log"
	"time"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

// TripStore is the persistence surface the trip service depends on.
// repository.TripRepository implements it; tests use an in-memory fake.
type TripStore interface {
	StoreTrip(trip *models.Trip) error
	GetDailyStats(userID int64, day string) (models.TripStats, error)
	GetWeeklyStats(userID int64, since string) (models.TripStats, error)
	DeleteDailyTrips(userID int64, day string) (int64, error)
	ListTripsSince(userID int64, since string) ([]models.Trip, error)
}

// TripService implements the core trip operations over the store.
// It holds no state of its own; the store owns every trip record.
type TripService struct {
	store TripStore
}

// NewTripService creates a new trip service
func NewTripService(store TripStore) *TripService {
	return &TripService{store: store}
}

// RecordTrip computes the derived rates, stamps the trip with today's local
// date, persists it, and returns the two rates. Input positivity is not
// checked here; adapters validate before calling, and the rate formulas are
// guarded against zero denominators regardless.
func (s *TripService) RecordTrip(userID int64, userName string, fare, distance float64, duration int) (float64, float64, error) {
	perKm := PerKmRate(fare, distance)
	perHour := PerHourRate(fare, duration)

	trip := &models.Trip{
		UserID:   userID,
		UserName: userName,
		Fare:     fare,
		Distance: distance,
		Duration: duration,
		PerKm:    perKm,
		PerHour:  perHour,
		Day:      time.Now().Format(utils.DayLayout),
	}

	if err := s.store.StoreTrip(trip); err != nil {
		return 0, 0, utils.NewStorageError(err)
	}

	log.Printf("Trip recorded for %s: $%.0f (%.1fkm, %dmin)", userName, fare, distance, duration)
	return perKm, perHour, nil
}

// DailyStats returns the aggregates for a user on one day.
// An empty day defaults to today. No trips means zero-valued stats.
func (s *TripService) DailyStats(userID int64, day string) (models.TripStats, error) {
	if day == "" {
		day = time.Now().Format(utils.DayLayout)
	}

	stats, err := s.store.GetDailyStats(userID, day)
	if err != nil {
		return models.TripStats{}, utils.NewStorageError(err)
	}
	return stats, nil
}

// WeeklyStats returns the aggregates for the trailing 7 calendar days,
// inclusive of today: every trip whose day is on or after today minus 6.
func (s *TripService) WeeklyStats(userID int64) (models.TripStats, error) {
	stats, err := s.store.GetWeeklyStats(userID, s.weekStart())
	if err != nil {
		return models.TripStats{}, utils.NewStorageError(err)
	}
	return stats, nil
}

// ResetDay deletes all of a user's trips for one day and returns how many
// were removed. An empty day defaults to today.
func (s *TripService) ResetDay(userID int64, day string) (int64, error) {
	if day == "" {
		day = time.Now().Format(utils.DayLayout)
	}

	deleted, err := s.store.DeleteDailyTrips(userID, day)
	if err != nil {
		return 0, utils.NewStorageError(err)
	}

	log.Printf("Deleted %d trips on %s for user %d", deleted, day, userID)
	return deleted, nil
}

// TripsForWeek lists the individual trips inside the weekly window,
// oldest first. Feeds the Excel export.
func (s *TripService) TripsForWeek(userID int64) ([]models.Trip, error) {
	trips, err := s.store.ListTripsSince(userID, s.weekStart())
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return trips, nil
}

// weekStart returns the first day of the trailing 7-day window
func (s *TripService) weekStart() string {
	return time.Now().AddDate(0, 0, -6).Format(utils.DayLayout)
}
