package utils

const (
	// Day layout for the trips.day column; ISO dates compare correctly
	// as plain strings, which the weekly window query relies on.
	DayLayout = "2006-01-02"

	// Default per-km earnings target, overridable via META_PER_KM
	DefaultMetaPerKm = 350.0

	// Default SQLite database file, overridable via DB_PATH
	DefaultDBPath = "data/didi_tracker.db"

	// HTTP status messages
	ErrInvalidRequest     = "Invalid request"
	ErrConfirmRequired    = "Confirmation required: set confirm to true"
	ErrFailedToStore      = "Failed to store trip"
	ErrFailedToRetrieve   = "Failed to retrieve stats"
	ErrStorageUnavailable = "Storage unavailable"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
