// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/plan"
	"github.com/iwvelando/property-analyzer/internal/scenario"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for property-analyzer.
type Configuration struct {
	Logging       LoggingConfig         `yaml:"logging,omitempty"`
	Output        OutputConfig          `yaml:"output,omitempty"`
	App           AppConfig             `yaml:"app,omitempty"`
	PurchasePrice float64               `yaml:"purchasePrice"`
	PaymentPlan   string                `yaml:"paymentPlan"`
	Assumptions   breakdown.Assumptions `yaml:"assumptions"`
	Properties    []scenario.Property   `yaml:"properties"`
	Selection     Selection             `yaml:"selection"`
	ExitPrices    []float64             `yaml:"exitPrices"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// AppConfig holds application limits and presentation settings.
type AppConfig struct {
	Currency      string `yaml:"currency,omitempty"`
	MaxProperties int    `yaml:"maxProperties,omitempty"`
	MaxScenarios  int    `yaml:"maxScenarios,omitempty"`
}

// Selection picks the property, exit price and holding period shown in the
// detailed breakdown.
type Selection struct {
	// Property names one of the configured properties. When empty the first
	// property is used.
	Property string `yaml:"property,omitempty"`
	// PropertySize overrides the selected property's size when set.
	PropertySize float64 `yaml:"propertySize,omitempty"`
	ExitPrice    float64 `yaml:"exitPrice"`
	Years        int     `yaml:"years"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yml")

	v.SetDefault("app.currency", "INR")
	v.SetDefault("app.maxProperties", constants.DefaultMaxProperties)
	v.SetDefault("app.maxScenarios", constants.DefaultMaxScenarios)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Plan parses the configured payment plan.
func (c *Configuration) Plan() (plan.Type, error) {
	return plan.Parse(c.PaymentPlan)
}

// ApplyPlanDefaults fills the share assumptions the configuration leaves
// unset (zero) with the defaults of the configured plan. Configured shares
// are kept.
func (c *Configuration) ApplyPlanDefaults() error {
	t, err := c.Plan()
	if err != nil {
		return err
	}
	defaults := plan.Defaults(t, c.Assumptions.UserShares())
	a := &c.Assumptions
	if a.PersonalLoan1Share == 0 {
		a.PersonalLoan1Share = defaults.PersonalLoan1
	}
	if a.PersonalLoan2Share == 0 {
		a.PersonalLoan2Share = defaults.PersonalLoan2
	}
	if a.DownPaymentShare == 0 {
		a.DownPaymentShare = defaults.DownPayment
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	t, err := c.Plan()
	if err != nil {
		return []string{err.Error()}
	}

	a := c.Assumptions
	shares := plan.Resolve(t, a.UserShares())
	validator := validation.ConfigValidator{
		PersonalLoan1Share:      a.PersonalLoan1Share,
		PersonalLoan2Share:      a.PersonalLoan2Share,
		DownPaymentShare:        a.DownPaymentShare,
		PersonalLoan2StartMonth: a.PersonalLoan2StartMonth,
		HoldingYears:            c.Selection.Years,
		ExitPrices:              c.ExitPrices,
		MaxProperties:           c.App.MaxProperties,
		MaxScenarios:            c.App.MaxScenarios,
	}
	if t == plan.Custom {
		validator.ShareOverflow = a.UserShares().Overflow()
	}
	validator.Loans = []validation.LoanConfig{
		{Name: "Home loan", Share: shares.HomeLoan, TermYears: a.HomeLoanTerm},
		{Name: "Personal loan 1", Share: shares.PersonalLoan1, TermYears: a.PersonalLoan1Term},
		{Name: "Personal loan 2", Share: shares.PersonalLoan2, TermYears: a.PersonalLoan2Term},
	}
	if len(c.Properties) == 0 {
		validator.Properties = []validation.PropertyConfig{{
			Name:             "selected",
			PossessionMonths: c.Assumptions.PossessionMonths,
		}}
	}
	for _, property := range c.Properties {
		possession := property.PossessionMonths
		if possession <= 0 {
			possession = c.Assumptions.PossessionMonths
		}
		validator.Properties = append(validator.Properties, validation.PropertyConfig{
			Name:             property.Name,
			PossessionMonths: possession,
		})
	}

	warnings := validator.ValidateAll()
	if c.Selection.Years <= 0 {
		warnings = append(warnings, fmt.Sprintf("Holding period of %d years sells the property at purchase", c.Selection.Years))
	}
	if c.PurchasePrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("Purchase price %.2f is not positive; appreciation is reported as 0", c.PurchasePrice))
	}
	return warnings
}
