// Package breakdown composes the loan, disbursement and payment plan models
// into the cash flow and profit picture of a single property exit.
package breakdown

import (
	"github.com/iwvelando/property-analyzer/internal/disbursement"
	"github.com/iwvelando/property-analyzer/internal/plan"
)

// Assumptions holds the financing assumptions of a purchase. Rates are annual
// percentages, terms are in years and start months count from the purchase.
type Assumptions struct {
	HomeLoanRate       float64 `yaml:"homeLoanRate"`
	HomeLoanTerm       float64 `yaml:"homeLoanTerm"`
	HomeLoanStartMonth int     `yaml:"homeLoanStartMonth"`

	PersonalLoan1Rate       float64 `yaml:"personalLoan1Rate"`
	PersonalLoan1Term       float64 `yaml:"personalLoan1Term"`
	PersonalLoan1StartMonth int     `yaml:"personalLoan1StartMonth"`

	PersonalLoan2Rate float64 `yaml:"personalLoan2Rate"`
	PersonalLoan2Term float64 `yaml:"personalLoan2Term"`

	// PersonalLoan2StartMonth is carried for reporting only. The second
	// personal loan always starts at possession.
	PersonalLoan2StartMonth int `yaml:"personalLoan2StartMonth"`

	// Shares read by the CLP and Custom plans.
	PersonalLoan1Share float64 `yaml:"personalLoan1Share"`
	PersonalLoan2Share float64 `yaml:"personalLoan2Share"`
	DownPaymentShare   float64 `yaml:"downPaymentShare"`

	PossessionMonths int `yaml:"possessionMonths"`

	// Construction-linked plan only.
	CLPDurationYears           float64 `yaml:"clpDurationYears"`
	BankDisbursementStartMonth int     `yaml:"bankDisbursementStartMonth"`
	BankDisbursementInterval   int     `yaml:"bankDisbursementInterval"`
}

// UserShares returns the share assumptions in the form the plan resolver
// reads.
func (a Assumptions) UserShares() plan.UserShares {
	return plan.UserShares{
		PersonalLoan1: a.PersonalLoan1Share,
		PersonalLoan2: a.PersonalLoan2Share,
		DownPayment:   a.DownPaymentShare,
	}
}

// DisbursementSchedule returns the construction-linked disbursement settings.
func (a Assumptions) DisbursementSchedule() disbursement.Schedule {
	return disbursement.Schedule{
		DurationYears: a.CLPDurationYears,
		StartMonth:    a.BankDisbursementStartMonth,
		Interval:      a.BankDisbursementInterval,
	}
}

// Parameters describe one property purchase. They are passed by value and
// never modified by the calculator.
type Parameters struct {
	PurchasePricePerArea float64     `yaml:"purchasePricePerArea"`
	Size                 float64     `yaml:"size"`
	Plan                 plan.Type   `yaml:"paymentPlan"`
	Assumptions          Assumptions `yaml:"assumptions"`
}

// ExitScenario is the sale of the property after a holding period.
type ExitScenario struct {
	ExitPricePerArea float64 `yaml:"exitPricePerArea"`
	HoldingYears     int     `yaml:"holdingYears"`
}

// LoanPosition is the state of one loan at exit. Principal is the amount
// borrowed; EMI, Outstanding and InterestPaid amortize AmortizedPrincipal,
// which for a CLP home loan is the principal plus interest during
// construction. Outstanding never exceeds AmortizedPrincipal.
type LoanPosition struct {
	Principal          float64 `yaml:"principal"`
	AmortizedPrincipal float64 `yaml:"amortizedPrincipal"`
	EMI                float64 `yaml:"emi"`
	Outstanding        float64 `yaml:"outstanding"`
	InterestPaid       float64 `yaml:"interestPaid"`
	EMIPaid            float64 `yaml:"emiPaid"`
	PaymentsMade       int     `yaml:"paymentsMade"`
	SelectedStartMonth int     `yaml:"selectedStartMonth"`
	ActualStartMonth   int     `yaml:"actualStartMonth"`
}

// Timeline splits the monthly outgoings around possession.
type Timeline struct {
	PrePossessionMonths  int     `yaml:"prePossessionMonths"`
	PostPossessionMonths int     `yaml:"postPossessionMonths"`
	PrePossessionEMI     float64 `yaml:"prePossessionEMI"`
	PostPossessionEMI    float64 `yaml:"postPossessionEMI"`
	PrePossessionTotal   float64 `yaml:"prePossessionTotal"`
	PostPossessionTotal  float64 `yaml:"postPossessionTotal"`
}

// FinancialBreakdown is the full result for one size, exit price and holding
// period.
type FinancialBreakdown struct {
	Size             float64     `yaml:"size"`
	ExitPricePerArea float64     `yaml:"exitPricePerArea"`
	HoldingYears     int         `yaml:"holdingYears"`
	Plan             plan.Type   `yaml:"paymentPlan"`
	Shares           plan.Shares `yaml:"shares"`

	TotalCost         float64 `yaml:"totalCost"`
	DownPayment       float64 `yaml:"downPayment"`
	TotalCashInvested float64 `yaml:"totalCashInvested"`

	HomeLoan      LoanPosition `yaml:"homeLoan"`
	PersonalLoan1 LoanPosition `yaml:"personalLoan1"`
	PersonalLoan2 LoanPosition `yaml:"personalLoan2"`

	TotalIDC                  float64                `yaml:"totalIDC"`
	MonthlyIDCEMI             float64                `yaml:"monthlyIDCEMI"`
	TotalHomeLoanAtCompletion float64                `yaml:"totalHomeLoanAtCompletion"`
	Tranches                  []disbursement.Tranche `yaml:"tranches,omitempty"`

	TotalLoanOutstanding float64 `yaml:"totalLoanOutstanding"`
	// TotalInterestPaid includes TotalIDC.
	TotalInterestPaid float64 `yaml:"totalInterestPaid"`
	TotalEMIPaid      float64 `yaml:"totalEMIPaid"`

	SaleValue    float64 `yaml:"saleValue"`
	LeftoverCash float64 `yaml:"leftoverCash"`
	NetGainLoss  float64 `yaml:"netGainLoss"`
	ROI          float64 `yaml:"roi"`

	PossessionMonths   int      `yaml:"possessionMonths"`
	TotalHoldingMonths int      `yaml:"totalHoldingMonths"`
	ConstructionMonths int      `yaml:"constructionMonths"`
	Timeline           Timeline `yaml:"timeline"`

	HasHomeLoan      bool `yaml:"hasHomeLoan"`
	HasPersonalLoan1 bool `yaml:"hasPersonalLoan1"`
	HasPersonalLoan2 bool `yaml:"hasPersonalLoan2"`
	HasDownPayment   bool `yaml:"hasDownPayment"`
	HasIDC           bool `yaml:"hasIDC"`
}

// TotalMonthlyEMI returns the combined EMI of all three loans.
func (b FinancialBreakdown) TotalMonthlyEMI() float64 {
	return b.HomeLoan.EMI + b.PersonalLoan1.EMI + b.PersonalLoan2.EMI
}
