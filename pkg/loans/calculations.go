// Package loans provides common loan processing utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
	"go.uber.org/zap"
)

// Terms describes a single amortizing loan.
type Terms struct {
	Principal         float64 `yaml:"principal"`
	AnnualRatePercent float64 `yaml:"annualRatePercent"`
	TermYears         float64 `yaml:"termYears"`
}

// TermMonths returns the loan tenure in months.
func (t Terms) TermMonths() float64 {
	return t.TermYears * constants.MonthsPerYear
}

// EMI returns the equated monthly installment for the loan.
func (t Terms) EMI() float64 {
	return CalculateEMI(t.Principal, t.AnnualRatePercent, t.TermYears)
}

// Payment holds the values for a given payment.
type Payment struct {
	Month              int     `yaml:"month"`
	Payment            float64 `yaml:"payment"`
	Principal          float64 `yaml:"principal"`
	Interest           float64 `yaml:"interest"`
	RemainingPrincipal float64 `yaml:"remainingPrincipal"`
}

// MonthlyRate converts an annual percentage rate into a periodic monthly rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateEMI calculates the monthly payment for a loan using the standard amortization formula.
func CalculateEMI(principal, annualRatePercent, termYears float64) float64 {
	n := termYears * constants.MonthsPerYear
	if principal <= 0 || n <= 0 {
		return 0
	}
	if annualRatePercent <= 0 {
		// For zero interest, simply divide the principal by term
		return principal / n
	}

	r := MonthlyRate(annualRatePercent)
	power := math.Pow(1+r, n)
	return principal * r * power / (power - 1)
}

// CalculateOutstanding returns the balance left on a loan after paymentsMade
// regular installments.
func CalculateOutstanding(principal, annualRatePercent, termYears float64, paymentsMade int) float64 {
	if principal <= 0 {
		return 0
	}
	if paymentsMade <= 0 {
		return principal
	}

	n := termYears * constants.MonthsPerYear
	made := float64(paymentsMade)
	if made >= n {
		return 0
	}

	if annualRatePercent <= 0 {
		// The geometric form is 0/0 here; a zero-rate loan repays linearly.
		return principal * (1 - made/n)
	}

	r := MonthlyRate(annualRatePercent)
	full := math.Pow(1+r, n)
	outstanding := principal * (full - math.Pow(1+r, made)) / (full - 1)
	return math.Max(0, outstanding)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * MonthlyRate(annualRatePercent)
}

// CalculateInterestPaid simulates paymentsMade installments month by month
// and returns the cumulative interest component. Months beyond the loan's
// tenure accrue nothing.
func CalculateInterestPaid(principal, annualRatePercent, termYears float64, paymentsMade int) float64 {
	if principal <= 0 || paymentsMade <= 0 {
		return 0
	}

	emi := CalculateEMI(principal, annualRatePercent, termYears)
	months := paymentsMade
	if tenure := tenureMonths(termYears); months > tenure {
		months = tenure
	}

	interestPaid := 0.0
	remaining := principal
	for i := 0; i < months; i++ {
		interest := CalculateInterestPayment(remaining, annualRatePercent)
		interestPaid += interest
		remaining -= emi - interest
	}

	return interestPaid
}

// tenureMonths returns the number of whole installments in a term, rounding a
// fractional final month up.
func tenureMonths(termYears float64) int {
	n := termYears * constants.MonthsPerYear
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(n - 1e-9))
}

// ScheduleGenerator provides utilities for generating loan amortization schedules
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate creates the amortization schedule for the first months
// installments of a loan. The schedule stops early once the loan matures.
func (g *ScheduleGenerator) Generate(name string, terms Terms, months int) []Payment {
	if terms.Principal <= 0 || months <= 0 {
		return nil
	}

	tenure := tenureMonths(terms.TermYears)
	if months > tenure {
		g.logger.Debug(fmt.Sprintf("loan %s matures after %d months, truncating schedule of %d months",
			name, tenure, months),
			zap.String("op", "loans.Generate"),
		)
		months = tenure
	}

	emi := terms.EMI()
	schedule := make([]Payment, 0, months)
	remaining := terms.Principal
	for month := 1; month <= months; month++ {
		var current Payment
		current.Month = month
		current.Payment = emi
		current.Interest = CalculateInterestPayment(remaining, terms.AnnualRatePercent)
		current.Principal = emi - current.Interest

		if month == tenure || mathutil.Round(remaining-current.Principal) <= 0 {
			// We will get machine error otherwise so just set to 0.
			current.Principal = remaining
			current.Payment = current.Principal + current.Interest
			current.RemainingPrincipal = 0
		} else {
			current.RemainingPrincipal = remaining - current.Principal
		}
		remaining = current.RemainingPrincipal
		schedule = append(schedule, current)
		if remaining == 0 {
			break
		}
	}

	return schedule
}

// Schedule is a convenience wrapper around a no-op logging generator.
func Schedule(terms Terms, months int) []Payment {
	return NewScheduleGenerator(nil).Generate("", terms, months)
}
