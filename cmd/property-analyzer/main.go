package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/config"
	"github.com/iwvelando/property-analyzer/internal/metrics"
	"github.com/iwvelando/property-analyzer/internal/scenario"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/loans"
	"github.com/iwvelando/property-analyzer/pkg/output"
	"github.com/iwvelando/property-analyzer/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	// Reports go to stdout, so logs default to stderr.
	zapConfig.OutputPaths = []string{"stderr"}
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}

		file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", loggingConfig.OutputFile, err)
		}
		_ = file.Close()

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

// loadEnvFile loads environment overrides from path when it exists.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load environment file %s: %w", path, err)
	}
	return nil
}

// buildReport runs every calculation the report needs.
func buildReport(logger *zap.Logger, conf *config.Configuration, recorder *metrics.Recorder, runID string, withSchedules bool) (output.Report, error) {
	var observer breakdown.Observer
	var counter scenario.Counter
	if recorder != nil {
		observer = recorder
		counter = recorder
	}
	calculator := breakdown.NewCalculator(logger, observer)
	evaluator := scenario.NewEvaluator(logger, calculator, counter)

	params, err := conf.SelectedParameters()
	if err != nil {
		return output.Report{}, err
	}
	base, err := conf.ToParameters(params.Size)
	if err != nil {
		return output.Report{}, err
	}

	b := calculator.Compute(params, conf.SelectedScenario())
	report := output.Report{
		RunID:      runID,
		Currency:   conf.App.Currency,
		Parameters: params,
		Breakdown:  b,
		Stages:     breakdown.Stages(params, b),
		Scenarios:  evaluator.Evaluate(params, params.Size, conf.Selection.Years, conf.ExitPrices),
	}

	if len(conf.Properties) > 1 {
		report.Properties = evaluator.EvaluateProperties(base, conf.Properties, conf.Selection.Years, conf.ExitPrices)
		report.Comparisons = scenario.CompareProperties(report.Properties[0].Results, report.Properties[1].Results)
	}

	if withSchedules {
		report.Schedules = schedules(logger, params, b)
	}

	logger.Info(fmt.Sprintf("net gain/loss of %.2f on %.2f invested", b.NetGainLoss, b.TotalCashInvested),
		zap.String("op", "main.buildReport"),
		zap.String("runId", runID),
		zap.Float64("roi", b.ROI),
	)
	return report, nil
}

// schedules returns the amortization table of every funded loan over the
// payments made during the holding period.
func schedules(logger *zap.Logger, params breakdown.Parameters, b breakdown.FinancialBreakdown) []output.LoanSchedule {
	generator := loans.NewScheduleGenerator(logger)
	a := params.Assumptions

	var result []output.LoanSchedule
	add := func(name string, funded bool, terms loans.Terms, months int) {
		if !funded {
			return
		}
		result = append(result, output.LoanSchedule{
			Name:     name,
			Payments: generator.Generate(name, terms, months),
		})
	}

	add("Home Loan", b.HasHomeLoan,
		loans.Terms{Principal: b.TotalHomeLoanAtCompletion, AnnualRatePercent: a.HomeLoanRate, TermYears: a.HomeLoanTerm},
		b.HomeLoan.PaymentsMade)
	add("Personal Loan 1", b.HasPersonalLoan1,
		loans.Terms{Principal: b.PersonalLoan1.Principal, AnnualRatePercent: a.PersonalLoan1Rate, TermYears: a.PersonalLoan1Term},
		b.PersonalLoan1.PaymentsMade)
	add("Personal Loan 2", b.HasPersonalLoan2,
		loans.Terms{Principal: b.PersonalLoan2.Principal, AnnualRatePercent: a.PersonalLoan2Rate, TermYears: a.PersonalLoan2Term},
		b.PersonalLoan2.PaymentsMade)
	return result
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	envLocation := flag.String("env-file", constants.DefaultEnvFile, "optional file of environment overrides")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	metricsFile := flag.String("metrics-file", "", "write calculation metrics to this node exporter textfile")
	withSchedules := flag.Bool("schedule", false, "include amortization schedules in the report")
	flag.Parse()

	if err := loadEnvFile(*envLocation); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load environment\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	runID := uuid.New().String()
	logger = logger.With(zap.String("runId", runID))

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.ApplyPlanDefaults(); err != nil {
		logger.Fatal("failed to resolve payment plan",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	var recorder *metrics.Recorder
	if *metricsFile != "" {
		recorder = metrics.NewRecorder()
	}

	report, err := buildReport(logger, conf, recorder, runID, *withSchedules)
	if err != nil {
		logger.Fatal("failed to compute property analysis",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, report); err != nil {
		logger.Fatal("failed to write report",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if recorder != nil {
		if err := recorder.WriteToTextfile(*metricsFile); err != nil {
			logger.Error("failed to write metrics",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
