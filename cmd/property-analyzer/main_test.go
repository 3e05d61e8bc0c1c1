package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/property-analyzer/internal/config"
	"github.com/iwvelando/property-analyzer/internal/metrics"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/output"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name          string
		config        config.LoggingConfig
		override      string
		expectedLevel zapcore.Level
		expectError   bool
	}{
		{name: "defaults", expectedLevel: zapcore.InfoLevel},
		{name: "debug console", config: config.LoggingConfig{Level: "debug", Format: "console"}, expectedLevel: zapcore.DebugLevel},
		{name: "warning alias", config: config.LoggingConfig{Level: "warning"}, expectedLevel: zapcore.WarnLevel},
		{name: "override wins", config: config.LoggingConfig{Level: "debug"}, override: "error", expectedLevel: zapcore.ErrorLevel},
		{name: "invalid level", config: config.LoggingConfig{Level: "verbose"}, expectError: true},
		{name: "invalid format", config: config.LoggingConfig{Format: "xml"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.expectedLevel))
			if tt.expectedLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.expectedLevel-1))
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "analyzer.log")

	logger, err := initializeLogger(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	require.NoError(t, err)
	logger.Info("written to file", zap.String("op", "test"))
	_ = logger.Sync()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "written to file")
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PROPERTY_ANALYZER_TEST_VALUE=loaded\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("PROPERTY_ANALYZER_TEST_VALUE") })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("PROPERTY_ANALYZER_TEST_VALUE"))
}

func loadExample(t *testing.T) *config.Configuration {
	t.Helper()
	conf, err := config.LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	require.NoError(t, err)
	require.NoError(t, conf.ApplyPlanDefaults())
	return conf
}

func TestBuildReport(t *testing.T) {
	conf := loadExample(t)
	recorder := metrics.NewRecorder()

	report, err := buildReport(zap.NewNop(), conf, recorder, "run-1", true)
	require.NoError(t, err)

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, "INR", report.Currency)
	assert.Equal(t, 1200.0, report.Parameters.Size)
	assert.Len(t, report.Stages, 4)
	assert.Len(t, report.Scenarios, 4)
	require.Len(t, report.Properties, 2)
	assert.Equal(t, "Tower A", report.Properties[0].Property.Name)
	assert.Len(t, report.Comparisons, 4)

	b := report.Breakdown
	assert.True(t, b.HasIDC)
	assert.InDelta(t, 6_000_000, b.TotalCost, 1e-6)
	assert.Equal(t, 72, b.TotalHoldingMonths)

	require.Len(t, report.Schedules, 3)
	assert.Len(t, report.Schedules[0].Payments, 36)
	assert.Len(t, report.Schedules[1].Payments, 60)
	assert.Len(t, report.Schedules[2].Payments, 36)

	// One detailed breakdown plus four scenarios for the selection and for each property.
	assert.Equal(t, 13.0, testutil.ToFloat64(recorder.BreakdownsTotal.WithLabelValues("clp")))
	assert.Equal(t, 12.0, testutil.ToFloat64(recorder.ScenariosTotal))
}

func TestBuildReportWithoutRecorder(t *testing.T) {
	conf := loadExample(t)
	conf.Properties = conf.Properties[:1]

	report, err := buildReport(zap.NewNop(), conf, nil, "run-2", false)
	require.NoError(t, err)
	assert.Empty(t, report.Properties)
	assert.Empty(t, report.Comparisons)
	assert.Empty(t, report.Schedules)

	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, constants.OutputFormatPretty, report))
	assert.Contains(t, buf.String(), "run-2")
}

func TestBuildReportUnknownProperty(t *testing.T) {
	conf := loadExample(t)
	conf.Selection.Property = "Tower Z"

	_, err := buildReport(zap.NewNop(), conf, nil, "run-3", false)
	assert.Error(t, err)
}
