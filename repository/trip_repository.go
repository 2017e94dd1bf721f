// repository/trip_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	DB *sql.DB
}

// NewTripRepository creates a new TripRepository
func NewTripRepository() *TripRepository {
	return &TripRepository{
		DB: GetDB(),
	}
}

// StoreTrip appends one trip row and fills in the assigned id.
// The rates are already computed by the caller; created_at is filled by
// the database default.
func (r *TripRepository) StoreTrip(trip *models.Trip) error {
	if driver == DriverPostgres {
		err := r.DB.QueryRow(
			`INSERT INTO trips (user_id, user_name, fare, distance, duration, per_km, per_hour, day)
             VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			trip.UserID, trip.UserName, trip.Fare, trip.Distance, trip.Duration,
			trip.PerKm, trip.PerHour, trip.Day,
		).Scan(&trip.ID)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %v", err)
		}
		return nil
	}

	result, err := r.DB.Exec(
		`INSERT INTO trips (user_id, user_name, fare, distance, duration, per_km, per_hour, day)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.UserID, trip.UserName, trip.Fare, trip.Distance, trip.Duration,
		trip.PerKm, trip.PerHour, trip.Day,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read trip id: %v", err)
	}
	trip.ID = id

	return nil
}

// GetDailyStats aggregates all trips for a user on an exact day.
// COALESCE makes the empty window come back as zeros instead of NULLs,
// so a user with no trips gets a zero-valued result, not an error.
func (r *TripRepository) GetDailyStats(userID int64, day string) (models.TripStats, error) {
	var stats models.TripStats
	err := r.DB.QueryRow(
		rebind(`SELECT COUNT(*), COALESCE(SUM(fare), 0), COALESCE(SUM(distance), 0), COALESCE(AVG(per_km), 0)
         FROM trips WHERE user_id = $1 AND day = $2`),
		userID, day,
	).Scan(&stats.TripCount, &stats.TotalFare, &stats.TotalDistance, &stats.AvgPerKm)
	if err != nil {
		return models.TripStats{}, fmt.Errorf("failed to get daily stats: %v", err)
	}

	return stats, nil
}

// GetWeeklyStats aggregates all trips for a user with day >= since.
// The day column holds ISO dates, so the string comparison matches the
// calendar ordering.
func (r *TripRepository) GetWeeklyStats(userID int64, since string) (models.TripStats, error) {
	var stats models.TripStats
	err := r.DB.QueryRow(
		rebind(`SELECT COUNT(*), COALESCE(SUM(fare), 0), COALESCE(SUM(distance), 0), COALESCE(AVG(per_km), 0)
         FROM trips WHERE user_id = $1 AND day >= $2`),
		userID, since,
	).Scan(&stats.TripCount, &stats.TotalFare, &stats.TotalDistance, &stats.AvgPerKm)
	if err != nil {
		return models.TripStats{}, fmt.Errorf("failed to get weekly stats: %v", err)
	}

	return stats, nil
}

// DeleteDailyTrips removes all trips for a user on an exact day and returns
// how many rows were removed. Deleting an empty day is a no-op, not an error.
func (r *TripRepository) DeleteDailyTrips(userID int64, day string) (int64, error) {
	result, err := r.DB.Exec(
		rebind("DELETE FROM trips WHERE user_id = $1 AND day = $2"),
		userID, day,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete trips: %v", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted trips: %v", err)
	}

	return deleted, nil
}

// ListTripsSince returns a user's trips with day >= since, oldest first.
// Used by the weekly Excel export.
func (r *TripRepository) ListTripsSince(userID int64, since string) ([]models.Trip, error) {
	rows, err := r.DB.Query(
		rebind(`SELECT id, user_id, user_name, fare, distance, duration, per_km, per_hour, day
         FROM trips WHERE user_id = $1 AND day >= $2 ORDER BY id ASC`),
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %v", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var trip models.Trip
		var userName sql.NullString

		err = rows.Scan(
			&trip.ID, &trip.UserID, &userName, &trip.Fare, &trip.Distance,
			&trip.Duration, &trip.PerKm, &trip.PerHour, &trip.Day,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %v", err)
		}

		if userName.Valid {
			trip.UserName = userName.String
		}

		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trips: %v", err)
	}

	return trips, nil
}
