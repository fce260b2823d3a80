// Package constants provides shared constants for the loan-estimator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of decimals kept for currency and percentages
	DecimalPlaces = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Credit score bounds accepted by the estimator.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "loan-estimator.yaml"

	// DefaultEnvFile is the default dotenv file name
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "LOAN_ESTIMATOR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the estimate API
	DefaultServerAddress = "localhost:5100"

	// DefaultMaxBodySize is the default request body limit in human units
	DefaultMaxBodySize = "16K"

	// DefaultMaxBodySizeBytes is DefaultMaxBodySize expressed in bytes
	DefaultMaxBodySizeBytes int64 = 16 * 1024
)
