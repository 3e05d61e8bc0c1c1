package breakdown

import "github.com/iwvelando/property-analyzer/pkg/mathutil"

// Loan identifies one of the financed portions of a purchase.
type Loan int

const (
	// HomeLoan is the bank home loan.
	HomeLoan Loan = iota
	// PersonalLoan1 is the first personal loan.
	PersonalLoan1
	// PersonalLoan2 is the second personal loan.
	PersonalLoan2
)

func (l Loan) String() string {
	switch l {
	case HomeLoan:
		return "home loan"
	case PersonalLoan1:
		return "personal loan 1"
	case PersonalLoan2:
		return "personal loan 2"
	}
	return "unknown loan"
}

// StartPolicy decides when a loan's EMIs begin.
type StartPolicy int

const (
	// AtLeastPossession starts at the selected month but never before possession.
	AtLeastPossession StartPolicy = iota
	// Independent starts at the selected month regardless of possession.
	Independent
	// AtPossession always starts at possession.
	AtPossession
)

// StartPolicies maps each loan to its start-month rule.
var StartPolicies = map[Loan]StartPolicy{
	HomeLoan:      AtLeastPossession,
	PersonalLoan1: Independent,
	PersonalLoan2: AtPossession,
}

// ActualStartMonth applies a start policy. Negative months are treated as the
// purchase month so payments can never exceed the holding period.
func ActualStartMonth(policy StartPolicy, selected, possession int) int {
	var month int
	switch policy {
	case AtLeastPossession:
		month = mathutil.MaxInt(selected, possession)
	case Independent:
		month = selected
	case AtPossession:
		month = possession
	default:
		month = mathutil.MaxInt(selected, possession)
	}
	return mathutil.MaxInt(month, 0)
}

// PaymentsMade returns how many EMIs fall inside the holding period.
func PaymentsMade(totalHoldingMonths, actualStartMonth int) int {
	return mathutil.MaxInt(0, totalHoldingMonths-actualStartMonth)
}
