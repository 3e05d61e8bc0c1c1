// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
)

// ValidateShares checks that the user-entered shares of a custom plan leave
// room for the home loan. Overflow below a paisa of a percent is float noise.
func ValidateShares(overflow float64) string {
	if overflow > 0 && !mathutil.IsZero(overflow) {
		return fmt.Sprintf("Custom plan shares (personal loans and down payment) exceed %.0f%% by %.2f%%; the home loan share is clamped to 0",
			constants.FullShare, overflow)
	}
	return ""
}

// ValidateLoanTerm checks that a loan funding part of the cost has a
// tenure. A funded loan without one is treated as already repaid.
func ValidateLoanTerm(name string, share, termYears float64) string {
	if share > 0 && termYears <= 0 {
		return fmt.Sprintf("%s funds %.2f%% of the cost but has a term of %.2f years; its balance is treated as repaid",
			name, share, termYears)
	}
	return ""
}

// ValidateShareRange checks that a share is a valid percentage.
func ValidateShareRange(name string, share float64) string {
	if share < 0 || share > constants.FullShare {
		return fmt.Sprintf("%s share of %.2f%% is outside [0, %.0f] and will be clamped", name, share, constants.FullShare)
	}
	return ""
}

// ValidateHoldingPeriod checks that the property is held past possession.
func ValidateHoldingPeriod(propertyName string, holdingYears, possessionMonths int) string {
	holdingMonths := holdingYears * constants.MonthsPerYear
	if holdingMonths < possessionMonths {
		return fmt.Sprintf("Property '%s' is sold after %d months, before possession at %d months; home loan and second personal loan EMIs never start",
			propertyName, holdingMonths, possessionMonths)
	}
	return ""
}

// ValidatePersonalLoan2StartMonth flags a configured start month that the
// calculation does not use.
func ValidatePersonalLoan2StartMonth(startMonth, possessionMonths int) string {
	if startMonth != 0 && startMonth != possessionMonths {
		return fmt.Sprintf("personalLoan2StartMonth %d is ignored; the second personal loan starts at possession (month %d)",
			startMonth, possessionMonths)
	}
	return ""
}

// ValidateCount checks a list against its configured maximum.
func ValidateCount(kind string, count, maximum int) string {
	if maximum > 0 && count > maximum {
		return fmt.Sprintf("%d %s configured, more than the recommended maximum of %d", count, kind, maximum)
	}
	return ""
}

// ValidateExitPrice checks that an exit price is positive.
func ValidateExitPrice(price float64) string {
	if price <= 0 {
		return fmt.Sprintf("Exit price %.2f is not positive", price)
	}
	return ""
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	ShareOverflow           float64
	PersonalLoan1Share      float64
	PersonalLoan2Share      float64
	DownPaymentShare        float64
	PersonalLoan2StartMonth int
	HoldingYears            int
	Loans                   []LoanConfig
	Properties              []PropertyConfig
	ExitPrices              []float64
	MaxProperties           int
	MaxScenarios            int
}

// LoanConfig is a loan's resolved share and its term.
type LoanConfig struct {
	Name      string
	Share     float64
	TermYears float64
}

// PropertyConfig is the part of a property checked against the holding
// period.
type PropertyConfig struct {
	Name             string
	PossessionMonths int
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string
	add := func(warning string) {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	add(ValidateShareRange("Personal loan 1", cv.PersonalLoan1Share))
	add(ValidateShareRange("Personal loan 2", cv.PersonalLoan2Share))
	add(ValidateShareRange("Down payment", cv.DownPaymentShare))
	add(ValidateShares(cv.ShareOverflow))
	for _, loan := range cv.Loans {
		add(ValidateLoanTerm(loan.Name, loan.Share, loan.TermYears))
	}

	for _, property := range cv.Properties {
		add(ValidateHoldingPeriod(property.Name, cv.HoldingYears, property.PossessionMonths))
		add(ValidatePersonalLoan2StartMonth(cv.PersonalLoan2StartMonth, property.PossessionMonths))
	}

	add(ValidateCount("properties", len(cv.Properties), cv.MaxProperties))
	add(ValidateCount("exit prices", len(cv.ExitPrices), cv.MaxScenarios))
	for _, price := range cv.ExitPrices {
		add(ValidateExitPrice(price))
	}

	return warnings
}
