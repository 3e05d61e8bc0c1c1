package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/plan"
)

const testConfig = `
logging:
  level: debug
  format: json
output:
  format: csv
purchasePrice: 5000
paymentPlan: 20-80
assumptions:
  homeLoanRate: 9
  homeLoanTerm: 20
  personalLoan1Rate: 12
  personalLoan1Term: 5
  personalLoan1StartMonth: 2
  possessionMonths: 24
  clpDurationYears: 3
properties:
  - name: Tower A
    size: 1000
    possessionMonths: 24
  - name: Tower B
    size: 1500
selection:
  exitPrice: 7000
  years: 5
exitPrices: [6000, 7000, 8000]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Valid config file",
			configPath: writeConfig(t, testConfig),
			wantError:  false,
		},
		{
			name:       "Malformed config file",
			configPath: writeConfig(t, "purchasePrice: [5000\n"),
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationStructure(t *testing.T) {
	config, err := LoadConfiguration(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Logging.Level != "debug" || config.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", config.Logging)
	}
	if config.Output.Format != "csv" {
		t.Errorf("Expected output format csv, got %s", config.Output.Format)
	}
	if config.PurchasePrice != 5000 {
		t.Errorf("Expected PurchasePrice = 5000, got %v", config.PurchasePrice)
	}
	if config.Assumptions.HomeLoanRate != 9 || config.Assumptions.PersonalLoan1StartMonth != 2 {
		t.Errorf("unexpected assumptions: %+v", config.Assumptions)
	}
	if config.Assumptions.CLPDurationYears != 3 {
		t.Errorf("Expected CLPDurationYears = 3, got %v", config.Assumptions.CLPDurationYears)
	}
	if len(config.Properties) != 2 || config.Properties[1].Name != "Tower B" || config.Properties[1].Size != 1500 {
		t.Errorf("unexpected properties: %+v", config.Properties)
	}
	if len(config.ExitPrices) != 3 || config.ExitPrices[2] != 8000 {
		t.Errorf("unexpected exit prices: %v", config.ExitPrices)
	}
	if config.Selection.Years != 5 || config.Selection.ExitPrice != 7000 {
		t.Errorf("unexpected selection: %+v", config.Selection)
	}

	// Defaults
	if config.App.Currency != "INR" || config.App.MaxProperties != 10 || config.App.MaxScenarios != 5 {
		t.Errorf("unexpected app defaults: %+v", config.App)
	}
}

func TestLoadConfigurationExample(t *testing.T) {
	config, err := LoadConfiguration("../../config.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if _, err := config.Plan(); err != nil {
		t.Errorf("example plan does not parse: %v", err)
	}
	if warnings := config.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example configuration has warnings: %v", warnings)
	}
	if _, err := config.SelectedParameters(); err != nil {
		t.Errorf("SelectedParameters() error = %v", err)
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("LOGGING_LEVEL", "warn")

	config, err := LoadConfiguration(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if config.Output.Format != "yaml" {
		t.Errorf("Expected output format override yaml, got %s", config.Output.Format)
	}
	if config.Logging.Level != "warn" {
		t.Errorf("Expected log level override warn, got %s", config.Logging.Level)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	config, err := LoadConfigurationFromReader(strings.NewReader(testConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if config.PaymentPlan != "20-80" {
		t.Errorf("Expected payment plan 20-80, got %s", config.PaymentPlan)
	}

	if _, err := LoadConfigurationFromReader(strings.NewReader("exitPrices: [1, 2")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestPlan(t *testing.T) {
	config := &Configuration{PaymentPlan: "CLP"}
	got, err := config.Plan()
	if err != nil || got != plan.CLP {
		t.Errorf("Plan() = %v, %v", got, err)
	}

	config.PaymentPlan = "50-50"
	if _, err := config.Plan(); err == nil {
		t.Error("expected an error for an unknown plan")
	}
}

func TestApplyPlanDefaults(t *testing.T) {
	tests := []struct {
		name     string
		plan     string
		shares   [3]float64
		expected [3]float64
	}{
		{"CLP unset", "clp", [3]float64{}, [3]float64{10, 10, 0}},
		{"CLP configured", "clp", [3]float64{15, 5, 0}, [3]float64{15, 5, 0}},
		{"CLP partly configured", "clp", [3]float64{15, 0, 0}, [3]float64{15, 10, 0}},
		{"20-80 unset", "20-80", [3]float64{}, [3]float64{20, 0, 0}},
		{"40-60 unset", "40-60", [3]float64{}, [3]float64{40, 0, 0}},
		{"Custom keeps shares", "custom", [3]float64{5, 15, 30}, [3]float64{5, 15, 30}},
		{"Custom unset", "custom", [3]float64{}, [3]float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Configuration{PaymentPlan: tt.plan}
			config.Assumptions.PersonalLoan1Share = tt.shares[0]
			config.Assumptions.PersonalLoan2Share = tt.shares[1]
			config.Assumptions.DownPaymentShare = tt.shares[2]

			if err := config.ApplyPlanDefaults(); err != nil {
				t.Fatalf("ApplyPlanDefaults() error = %v", err)
			}
			got := [3]float64{
				config.Assumptions.PersonalLoan1Share,
				config.Assumptions.PersonalLoan2Share,
				config.Assumptions.DownPaymentShare,
			}
			if got != tt.expected {
				t.Errorf("shares = %v, expected %v", got, tt.expected)
			}
		})
	}

	if err := (&Configuration{PaymentPlan: "unknown"}).ApplyPlanDefaults(); err == nil {
		t.Error("expected an error for an unknown plan")
	}
}

func TestConfiguredCLPSharesReachBreakdown(t *testing.T) {
	config, err := LoadConfigurationFromReader(strings.NewReader(testConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	config.PaymentPlan = "clp"
	config.Assumptions.PersonalLoan1Share = 15
	config.Assumptions.PersonalLoan2Share = 5

	if err := config.ApplyPlanDefaults(); err != nil {
		t.Fatalf("ApplyPlanDefaults() error = %v", err)
	}
	params, err := config.ToParameters(1000)
	if err != nil {
		t.Fatalf("ToParameters() error = %v", err)
	}
	b := breakdown.NewCalculator(nil, nil).Compute(params, config.SelectedScenario())

	if b.Shares.PersonalLoan1 != 15 || b.Shares.PersonalLoan2 != 5 || b.Shares.HomeLoan != 80 {
		t.Errorf("shares = %+v, expected 80/15/5", b.Shares)
	}
	if math.Abs(b.PersonalLoan1.Principal-750000) > 1e-6 {
		t.Errorf("personal loan 1 principal = %.2f, expected 750000", b.PersonalLoan1.Principal)
	}
	if math.Abs(b.PersonalLoan2.Principal-250000) > 1e-6 {
		t.Errorf("personal loan 2 principal = %.2f, expected 250000", b.PersonalLoan2.Principal)
	}
}

func TestValidateConfiguration(t *testing.T) {
	base := func() *Configuration {
		config, err := LoadConfigurationFromReader(strings.NewReader(testConfig))
		if err != nil {
			t.Fatalf("LoadConfigurationFromReader() error = %v", err)
		}
		return config
	}

	tests := []struct {
		name     string
		modify   func(*Configuration)
		contains []string
	}{
		{
			name:   "Clean configuration",
			modify: func(*Configuration) {},
		},
		{
			name: "Custom share overflow",
			modify: func(c *Configuration) {
				c.PaymentPlan = "custom"
				c.Assumptions.PersonalLoan1Share = 50
				c.Assumptions.DownPaymentShare = 70
			},
			contains: []string{"exceed 100% by 20.00%"},
		},
		{
			name: "Holding shorter than possession",
			modify: func(c *Configuration) {
				c.Selection.Years = 1
			},
			contains: []string{"Property 'Tower A'", "Property 'Tower B'"},
		},
		{
			name: "Ignored second personal loan start month",
			modify: func(c *Configuration) {
				c.Assumptions.PersonalLoan2StartMonth = 6
			},
			contains: []string{"personalLoan2StartMonth 6 is ignored"},
		},
		{
			name: "Funded loan without a term",
			modify: func(c *Configuration) {
				c.Assumptions.PersonalLoan1Term = 0
			},
			contains: []string{"Personal loan 1 funds 20.00% of the cost"},
		},
		{
			name: "Too many properties",
			modify: func(c *Configuration) {
				c.App.MaxProperties = 1
			},
			contains: []string{"2 properties configured"},
		},
		{
			name: "Unknown plan",
			modify: func(c *Configuration) {
				c.PaymentPlan = "50-50"
			},
			contains: []string{"unknown payment plan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := base()
			tt.modify(config)
			warnings := config.ValidateConfiguration()

			if len(tt.contains) == 0 && len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			joined := strings.Join(warnings, "\n")
			for _, expected := range tt.contains {
				if !strings.Contains(joined, expected) {
					t.Errorf("warnings %v missing %q", warnings, expected)
				}
			}
		})
	}
}
