package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jose-TorresCL/Diditracker-bot/models"
	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

// setupTestDB points the package at a fresh SQLite file under a temp
// directory and initializes the schema
func setupTestDB(t *testing.T) *TripRepository {
	t.Helper()

	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "trips.db"))

	require.NoError(t, InitDB())
	t.Cleanup(CloseDB)

	return NewTripRepository()
}

func day(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format(utils.DayLayout)
}

func storeTrip(t *testing.T, repo *TripRepository, userID int64, fare, distance float64, duration int, tripDay string) models.Trip {
	t.Helper()

	trip := models.Trip{
		UserID:   userID,
		UserName: "tester",
		Fare:     fare,
		Distance: distance,
		Duration: duration,
		PerKm:    fare / distance,
		PerHour:  fare / (float64(duration) / 60.0),
		Day:      tripDay,
	}
	require.NoError(t, repo.StoreTrip(&trip))
	return trip
}

func TestInitDB_IsIdempotent(t *testing.T) {
	setupTestDB(t)

	// A second initialization against the same file must not fail
	assert.NoError(t, InitDB())
}

func TestStoreTrip_AssignsIncreasingIDs(t *testing.T) {
	repo := setupTestDB(t)

	first := storeTrip(t, repo, 1, 1000, 5, 20, day(0))
	second := storeTrip(t, repo, 1, 2000, 10, 40, day(0))

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID)
}

func TestGetDailyStats_SingleTripScenario(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 1, 5200, 14, 28, day(0))

	stats, err := repo.GetDailyStats(1, day(0))

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TripCount)
	assert.Equal(t, 5200.0, stats.TotalFare)
	assert.Equal(t, 14.0, stats.TotalDistance)
	assert.InDelta(t, 371.43, stats.AvgPerKm, 0.01)
}

func TestGetDailyStats_AveragesAcrossTrips(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 2, 1000, 5, 20, day(0))
	storeTrip(t, repo, 2, 2000, 10, 40, day(0))

	stats, err := repo.GetDailyStats(2, day(0))

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TripCount)
	assert.Equal(t, 3000.0, stats.TotalFare)
	assert.Equal(t, 15.0, stats.TotalDistance)
	assert.Equal(t, 200.0, stats.AvgPerKm)
}

func TestGetDailyStats_EmptyDayYieldsZeros(t *testing.T) {
	repo := setupTestDB(t)

	stats, err := repo.GetDailyStats(1, day(0))

	assert.NoError(t, err)
	assert.Equal(t, models.TripStats{}, stats)
}

func TestGetDailyStats_IgnoresOtherDaysAndUsers(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 1, 1000, 5, 20, day(0))
	storeTrip(t, repo, 1, 2000, 10, 40, day(-1))
	storeTrip(t, repo, 2, 3000, 15, 60, day(0))

	stats, err := repo.GetDailyStats(1, day(0))

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TripCount)
	assert.Equal(t, 1000.0, stats.TotalFare)
}

func TestGetWeeklyStats_TrailingSevenDayBoundary(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 1, 1000, 5, 20, day(0))  // today: in
	storeTrip(t, repo, 1, 2000, 10, 40, day(-6)) // exactly six days ago: in
	storeTrip(t, repo, 1, 9000, 30, 90, day(-8)) // eight days ago: out

	stats, err := repo.GetWeeklyStats(1, day(-6))

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TripCount)
	assert.Equal(t, 3000.0, stats.TotalFare)
	assert.Equal(t, 15.0, stats.TotalDistance)
	assert.Equal(t, 200.0, stats.AvgPerKm)
}

func TestGetWeeklyStats_EmptyWindowYieldsZeros(t *testing.T) {
	repo := setupTestDB(t)

	stats, err := repo.GetWeeklyStats(7, day(-6))

	assert.NoError(t, err)
	assert.Equal(t, models.TripStats{}, stats)
}

func TestDeleteDailyTrips_OnlyMatchingUserAndDay(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 1, 1000, 5, 20, day(0))
	storeTrip(t, repo, 1, 2000, 10, 40, day(0))
	storeTrip(t, repo, 1, 3000, 15, 60, day(-1)) // other day
	storeTrip(t, repo, 2, 4000, 20, 80, day(0))  // other user

	deleted, err := repo.DeleteDailyTrips(1, day(0))

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	yesterday, err := repo.GetDailyStats(1, day(-1))
	assert.NoError(t, err)
	assert.Equal(t, 1, yesterday.TripCount)

	other, err := repo.GetDailyStats(2, day(0))
	assert.NoError(t, err)
	assert.Equal(t, 1, other.TripCount)
}

func TestDeleteDailyTrips_EmptySetIsNoOp(t *testing.T) {
	repo := setupTestDB(t)

	deleted, err := repo.DeleteDailyTrips(1, day(0))

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestListTripsSince_ReturnsWindowOldestFirst(t *testing.T) {
	repo := setupTestDB(t)

	storeTrip(t, repo, 1, 1000, 5, 20, day(-6))
	storeTrip(t, repo, 1, 2000, 10, 40, day(0))
	storeTrip(t, repo, 1, 9000, 30, 90, day(-8)) // outside the window
	storeTrip(t, repo, 2, 4000, 20, 80, day(0))  // other user

	trips, err := repo.ListTripsSince(1, day(-6))

	assert.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, 1000.0, trips[0].Fare)
	assert.Equal(t, 2000.0, trips[1].Fare)
	assert.Equal(t, "tester", trips[0].UserName)
	assert.Equal(t, 20, trips[0].Duration)
	assert.InDelta(t, 200.0, trips[0].PerKm, 0.0001)
}

func TestListTripsSince_EmptyWindow(t *testing.T) {
	repo := setupTestDB(t)

	trips, err := repo.ListTripsSince(1, day(-6))

	assert.NoError(t, err)
	assert.Empty(t, trips)
}
