package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Default booking configuration values.
// Используются, если соответствующие поля не заданы в config.toml.
const (
	DefaultOpenHour        = 10
	DefaultCloseHour       = 21
	DefaultStepMinutes     = 30
	DefaultPrepHours       = 1
	DefaultCleanupHours    = 1
	DefaultMaxPerDay       = 2
	DefaultMaxConcurrent   = 1
	DefaultTimeZone        = "America/Los_Angeles"
	DefaultDepositFraction = 0.25
)

// Default live-service minutes per package
var DefaultPackageLiveMinutes = map[Package]int{
	PackageSmall:  120,
	PackageMedium: 150,
	PackageLarge:  180,
}

// Business validation constants
const (
	MinStepMinutes = 5
	MaxStepMinutes = 240
	MaxNotesLength = 500
)
