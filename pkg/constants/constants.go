// Package constants provides shared constants for the mortgage-planner application.
package constants

// DateTimeLayout is the year-month format expected in config files and API
// payloads, and is also the machine-readable output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the precision for currency rounding (2 decimal places)
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Loan bounds enforced by the domain layer
const (
	// MinPrincipal is the smallest loan principal accepted at construction
	MinPrincipal = 1000.0

	// MaxPrincipal is the largest loan principal accepted at construction
	MaxPrincipal = 10000000.0

	// MaxTermMonths is the longest supported loan term (50 years)
	MaxTermMonths = 600

	// MaxAnnualRatePercent is the hard bound enforced by the rate value object
	MaxAnnualRatePercent = 100.0

	// MaxReasonableRatePercent is the stricter bound applied to user input
	MaxReasonableRatePercent = 50.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)
