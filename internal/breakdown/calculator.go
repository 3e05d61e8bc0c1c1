package breakdown

import (
	"fmt"
	"time"

	"github.com/iwvelando/property-analyzer/internal/disbursement"
	"github.com/iwvelando/property-analyzer/internal/plan"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/loans"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
	"go.uber.org/zap"
)

// Observer receives one observation per computed breakdown.
type Observer interface {
	ObserveBreakdown(planName string, elapsed time.Duration, roi float64)
}

// Calculator computes financial breakdowns. It holds no per-call state and
// is safe for concurrent use.
type Calculator struct {
	logger   *zap.Logger
	observer Observer
}

// NewCalculator creates a calculator. A nil logger is replaced with a no-op
// logger and a nil observer disables observations.
func NewCalculator(logger *zap.Logger, observer Observer) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, observer: observer}
}

// Compute produces the breakdown of selling a property under the given exit
// scenario. It never fails; degenerate inputs produce zeroed fields.
func (c *Calculator) Compute(params Parameters, scenario ExitScenario) FinancialBreakdown {
	started := time.Now()
	a := params.Assumptions

	var b FinancialBreakdown
	b.Size = params.Size
	b.ExitPricePerArea = scenario.ExitPricePerArea
	b.HoldingYears = scenario.HoldingYears
	b.Plan = params.Plan
	b.PossessionMonths = a.PossessionMonths
	b.TotalCost = params.Size * params.PurchasePricePerArea

	// Funding split.
	b.Shares = plan.Resolve(params.Plan, a.UserShares())
	homeLoanAmount := mathutil.ApplyPercentage(b.TotalCost, b.Shares.HomeLoan)
	pl1Amount := mathutil.ApplyPercentage(b.TotalCost, b.Shares.PersonalLoan1)
	pl2Amount := mathutil.ApplyPercentage(b.TotalCost, b.Shares.PersonalLoan2)
	b.DownPayment = mathutil.ApplyPercentage(b.TotalCost, b.Shares.DownPayment)
	b.TotalCashInvested = b.DownPayment + pl1Amount + pl2Amount

	// Interest during construction is capitalized into the home loan.
	idc := disbursement.None(homeLoanAmount)
	if params.Plan == plan.CLP {
		b.ConstructionMonths = a.DisbursementSchedule().ConstructionEndMonth()
		if homeLoanAmount > 0 {
			idc = disbursement.Simulate(b.TotalCost, homeLoanAmount, a.HomeLoanRate, a.DisbursementSchedule())
		}
	}
	b.TotalIDC = idc.TotalIDC
	b.MonthlyIDCEMI = idc.MonthlyIDC
	b.TotalHomeLoanAtCompletion = idc.TotalAtCompletion
	b.Tranches = idc.Tranches

	b.TotalHoldingMonths = scenario.HoldingYears * constants.MonthsPerYear

	if homeLoanAmount > 0 {
		b.HomeLoan = c.position(HomeLoan, loans.Terms{
			Principal:         idc.TotalAtCompletion,
			AnnualRatePercent: a.HomeLoanRate,
			TermYears:         a.HomeLoanTerm,
		}, a.HomeLoanStartMonth, a.PossessionMonths, b.TotalHoldingMonths)
		// Report the amount borrowed, before IDC.
		b.HomeLoan.Principal = homeLoanAmount
	}

	if pl1Amount > 0 {
		b.PersonalLoan1 = c.position(PersonalLoan1, loans.Terms{
			Principal:         pl1Amount,
			AnnualRatePercent: a.PersonalLoan1Rate,
			TermYears:         a.PersonalLoan1Term,
		}, a.PersonalLoan1StartMonth, a.PossessionMonths, b.TotalHoldingMonths)
	}

	if pl2Amount > 0 {
		b.PersonalLoan2 = c.position(PersonalLoan2, loans.Terms{
			Principal:         pl2Amount,
			AnnualRatePercent: a.PersonalLoan2Rate,
			TermYears:         a.PersonalLoan2Term,
		}, a.PersonalLoan2StartMonth, a.PossessionMonths, b.TotalHoldingMonths)
	}

	b.TotalLoanOutstanding = b.HomeLoan.Outstanding + b.PersonalLoan1.Outstanding + b.PersonalLoan2.Outstanding
	b.TotalInterestPaid = b.HomeLoan.InterestPaid + b.PersonalLoan1.InterestPaid + b.PersonalLoan2.InterestPaid + b.TotalIDC
	b.TotalEMIPaid = b.HomeLoan.EMIPaid + b.PersonalLoan1.EMIPaid + b.PersonalLoan2.EMIPaid

	// Exit.
	b.SaleValue = params.Size * scenario.ExitPricePerArea
	b.LeftoverCash = b.SaleValue - b.TotalLoanOutstanding
	b.NetGainLoss = b.LeftoverCash - b.TotalEMIPaid
	if b.TotalCashInvested > 0 {
		b.ROI = mathutil.CalculatePercentage(b.NetGainLoss, b.TotalCashInvested)
	}

	b.Timeline = timeline(b, a.PossessionMonths)

	b.HasHomeLoan = homeLoanAmount > 0
	b.HasPersonalLoan1 = pl1Amount > 0
	b.HasPersonalLoan2 = pl2Amount > 0
	b.HasDownPayment = b.DownPayment > 0
	b.HasIDC = b.TotalIDC > 0

	c.logger.Debug(fmt.Sprintf("computed %s breakdown for size %.2f at exit price %.2f over %d years",
		params.Plan, params.Size, scenario.ExitPricePerArea, scenario.HoldingYears),
		zap.String("op", "breakdown.Compute"),
		zap.Float64("netGainLoss", b.NetGainLoss),
		zap.Float64("roi", b.ROI),
	)
	if c.observer != nil {
		c.observer.ObserveBreakdown(params.Plan.String(), time.Since(started), b.ROI)
	}

	return b
}

// position evaluates a funded loan at the end of the holding period. Unfunded
// loans keep the zero LoanPosition.
func (c *Calculator) position(loan Loan, terms loans.Terms, selected, possession, holdingMonths int) LoanPosition {
	p := LoanPosition{
		Principal:          terms.Principal,
		AmortizedPrincipal: terms.Principal,
		EMI:                terms.EMI(),
		SelectedStartMonth: selected,
		ActualStartMonth:   ActualStartMonth(StartPolicies[loan], selected, possession),
	}
	p.PaymentsMade = PaymentsMade(holdingMonths, p.ActualStartMonth)
	p.Outstanding = loans.CalculateOutstanding(terms.Principal, terms.AnnualRatePercent, terms.TermYears, p.PaymentsMade)
	p.InterestPaid = loans.CalculateInterestPaid(terms.Principal, terms.AnnualRatePercent, terms.TermYears, p.PaymentsMade)
	// EMIs are counted for every month held, even past the loan's tenure.
	p.EMIPaid = p.EMI * float64(p.PaymentsMade)

	if tenure := terms.TermMonths(); float64(p.PaymentsMade) > tenure {
		c.logger.Debug(fmt.Sprintf("%s is repaid after %.0f months but held for %d payments",
			loan, tenure, p.PaymentsMade),
			zap.String("op", "breakdown.position"),
		)
	}
	return p
}

func timeline(b FinancialBreakdown, possessionMonths int) Timeline {
	t := Timeline{
		PrePossessionMonths:  possessionMonths,
		PostPossessionMonths: b.TotalHoldingMonths - possessionMonths,
		PrePossessionEMI:     b.PersonalLoan1.EMI + b.MonthlyIDCEMI,
		PostPossessionEMI:    b.TotalMonthlyEMI(),
	}
	t.PrePossessionTotal = t.PrePossessionEMI * float64(t.PrePossessionMonths)
	t.PostPossessionTotal = t.PostPossessionEMI * float64(t.PostPossessionMonths)
	return t
}
