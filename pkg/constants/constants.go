// Package constants provides shared constants for the property-analyzer application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// FullShare is the total of all payment plan shares in percent
	FullShare = 100.0

	// Lakh is the Indian numbering unit of one hundred thousand
	Lakh = 100000.0
)

// Payment plan defaults
const (
	// DefaultCLPPersonalLoanShare is the personal loan share assumed for each
	// personal loan under a construction-linked plan when none is configured.
	DefaultCLPPersonalLoanShare = 10.0

	// CLPHomeLoanShare is the fixed home loan share of a construction-linked plan
	CLPHomeLoanShare = 80.0
)

// Construction-linked disbursement constants
const (
	// MaxDisbursementTranches is the maximum number of staged bank disbursements
	MaxDisbursementTranches = 8

	// DisbursementTrancheShare is the share of total cost released per tranche
	DisbursementTrancheShare = 10.0
)

// Scenario constants
const (
	// ExitPriceStep is the increment used when proposing the next exit price scenario
	ExitPriceStep = 1000.0

	// DefaultMaxProperties is the maximum number of properties compared at once
	DefaultMaxProperties = 10

	// DefaultMaxScenarios is the maximum number of exit price scenarios
	DefaultMaxScenarios = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultEnvFile is the optional dotenv file loaded before the configuration
	DefaultEnvFile = ".env"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// AmortizationTolerance bounds the drift allowed between the closed-form
	// outstanding balance and the iterative interest simulation.
	AmortizationTolerance = 1e-4
)
