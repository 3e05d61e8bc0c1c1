// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/plan"
	"github.com/iwvelando/property-analyzer/internal/scenario"
)

// TwentyEightyParameters returns a 1000 unit purchase at 5000 per unit under
// the 20-80 plan with a 9% twenty year home loan.
func TwentyEightyParameters() breakdown.Parameters {
	return breakdown.Parameters{
		PurchasePricePerArea: 5000,
		Size:                 1000,
		Plan:                 plan.TwentyEighty,
		Assumptions: breakdown.Assumptions{
			HomeLoanRate:      9,
			HomeLoanTerm:      20,
			PersonalLoan1Rate: 12,
			PersonalLoan1Term: 5,
			PersonalLoan2Rate: 12,
			PersonalLoan2Term: 5,
			PossessionMonths:  24,
		},
	}
}

// CLPParameters returns the same purchase under the construction-linked plan
// with a three year build and disbursements every four months from month 3.
func CLPParameters() breakdown.Parameters {
	params := TwentyEightyParameters()
	params.Plan = plan.CLP
	params.Assumptions.PersonalLoan1Share = 10
	params.Assumptions.PersonalLoan2Share = 10
	params.Assumptions.PossessionMonths = 36
	params.Assumptions.CLPDurationYears = 3
	params.Assumptions.BankDisbursementStartMonth = 3
	params.Assumptions.BankDisbursementInterval = 4
	return params
}

// Properties returns two candidate properties with different possession dates.
func Properties() []scenario.Property {
	return []scenario.Property{
		{Name: "Tower A", Location: "Sector 150", Size: 1000, PossessionMonths: 24, Highlighted: true},
		{Name: "Tower B", Location: "Sector 62", Size: 1250, PossessionMonths: 36},
	}
}

// ExitPrices returns an ascending exit price sweep.
func ExitPrices() []float64 {
	return []float64{6000, 7000, 8000, 9000}
}

// FindProperty finds a property's results by name.
// Returns a pointer to the results if found, nil otherwise.
func FindProperty(results []scenario.PropertyResults, name string) *scenario.PropertyResults {
	for i := range results {
		if results[i].Property.Name == name {
			return &results[i]
		}
	}
	return nil
}
