package utils

import "fmt"

// ValidatePositive checks if a number is strictly positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidatePositiveInt checks if an integer is strictly positive
func ValidatePositiveInt(value int, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateTripInput validates the three numeric trip parameters before they
// reach the core. The store itself accepts any values and computes rates
// defensively; rejection of non-positive input is an adapter concern.
func ValidateTripInput(fare, distance float64, duration int) error {
	if err := ValidatePositive(fare, "fare"); err != nil {
		return err
	}
	if err := ValidatePositive(distance, "distance"); err != nil {
		return err
	}
	return ValidatePositiveInt(duration, "duration")
}
