// Package disbursement models the staged bank disbursements of a
// construction-linked plan and the interest accrued on them before the home
// loan converts to full EMI repayment.
package disbursement

import (
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/loans"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
)

// Schedule holds the construction-linked plan assumptions.
type Schedule struct {
	DurationYears float64
	StartMonth    int
	Interval      int
}

// ConstructionEndMonth returns the last month of the construction window.
func (s Schedule) ConstructionEndMonth() int {
	return int(s.DurationYears * constants.MonthsPerYear)
}

// Tranche is one bank disbursement.
type Tranche struct {
	Month           int     `yaml:"month"`
	Amount          float64 `yaml:"amount"`
	MonthsRemaining int     `yaml:"monthsRemaining"`
	Interest        float64 `yaml:"interest"`
}

// Result summarizes the interest during construction.
type Result struct {
	Tranches             []Tranche
	ConstructionEndMonth int
	// TotalIDC is the simple interest accrued on every tranche up to the end
	// of construction. It is capitalized into the home loan.
	TotalIDC float64
	// TotalAtCompletion is the home loan principal plus TotalIDC.
	TotalAtCompletion float64
	// MonthlyIDC is a flat pre-possession estimate, the full home loan amount
	// at the monthly rate. It is not derived from the tranches.
	MonthlyIDC float64
}

// None is the result for plans without staged disbursement.
func None(homeLoanAmount float64) Result {
	return Result{TotalAtCompletion: homeLoanAmount}
}

// Simulate computes the tranche schedule and interest during construction.
// Tranches falling after the construction window are dropped, and a tranche
// released in the final month accrues nothing.
func Simulate(totalCost, homeLoanAmount, homeLoanRatePercent float64, schedule Schedule) Result {
	end := schedule.ConstructionEndMonth()
	result := Result{
		ConstructionEndMonth: end,
		TotalAtCompletion:    homeLoanAmount,
	}
	if homeLoanAmount <= 0 {
		return result
	}

	amount := mathutil.ApplyPercentage(totalCost, constants.DisbursementTrancheShare)
	for i := 0; i < constants.MaxDisbursementTranches; i++ {
		month := schedule.StartMonth + i*schedule.Interval
		if month > end {
			continue
		}

		tranche := Tranche{Month: month, Amount: amount, MonthsRemaining: end - month}
		if tranche.MonthsRemaining > 0 {
			tranche.Interest = amount * (homeLoanRatePercent / constants.PercentageMultiplier) *
				(float64(tranche.MonthsRemaining) / constants.MonthsPerYear)
		}
		result.TotalIDC += tranche.Interest
		result.Tranches = append(result.Tranches, tranche)
	}

	result.TotalAtCompletion = homeLoanAmount + result.TotalIDC
	result.MonthlyIDC = MonthlyEstimate(homeLoanAmount, homeLoanRatePercent, end)
	return result
}

// MonthlyEstimate returns the flat monthly interest on the full home loan
// amount, or 0 when there is no construction window.
func MonthlyEstimate(homeLoanAmount, homeLoanRatePercent float64, constructionMonths int) float64 {
	if homeLoanAmount <= 0 || constructionMonths <= 0 {
		return 0
	}
	return loans.CalculateInterestPayment(homeLoanAmount, homeLoanRatePercent)
}
