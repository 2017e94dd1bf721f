package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Jose-TorresCL/Diditracker-bot/utils"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	tripService *TripService
}

// NewExcelService creates a new Excel service
func NewExcelService(tripService *TripService) *ExcelService {
	return &ExcelService{tripService: tripService}
}

// ExportWeeklyReport generates an Excel file with a user's trips for the
// trailing 7-day window plus a totals block
func (s *ExcelService) ExportWeeklyReport(userID int64) (*excelize.File, string, error) {
	trips, err := s.tripService.TripsForWeek(userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get weekly trips: %v", err)
	}

	// Aggregate from the listed rows so the totals always match the sheet
	stats := AggregateTrips(trips)

	f := excelize.NewFile()

	sheetName := "Weekly Report"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	// Set headers
	headers := []string{"Day", "Fare", "Km", "Min", "$/km", "$/hour"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	// Style headers
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	// Add trip data
	for i, trip := range trips {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), trip.Day)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), trip.Fare)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), trip.Distance)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), trip.Duration)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), utils.Round(trip.PerKm))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), utils.Round(trip.PerHour))
	}

	// Totals block
	totalsRow := len(trips) + 3
	totalsStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", totalsRow), fmt.Sprintf("A%d", totalsRow), totalsStyle)

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+1), "Trips")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalsRow+1), stats.TripCount)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+2), "Total fare")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalsRow+2), utils.Round(stats.TotalFare))
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+3), "Total km")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalsRow+3), utils.Round(stats.TotalDistance))
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalsRow+4), "Avg $/km")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalsRow+4), utils.Round(stats.AvgPerKm))

	// Auto-fit columns
	f.SetColWidth(sheetName, "A", "F", 12)

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("DidiTracker_%d_%s.xlsx", userID, time.Now().Format(utils.DayLayout))

	return f, filename, nil
}
