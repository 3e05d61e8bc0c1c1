package breakdown

// Unit describes how a stage item value should be read.
type Unit int

const (
	// Currency is an amount of money.
	Currency Unit = iota
	// Area is a property size.
	Area
	// PricePerArea is money per area unit.
	PricePerArea
	// MonthlyCurrency is an amount of money per month.
	MonthlyCurrency
	// Months is a month count.
	Months
	// Years is a year count.
	Years
	// Funding is an amount of money paid from one source, with its share of
	// the total cost.
	Funding
)

// StageItem is one labelled figure. Share is only read for Funding items.
type StageItem struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Unit  Unit    `yaml:"unit"`
	Share float64 `yaml:"share,omitempty"`
}

// Stage groups the figures of one step of the calculation.
type Stage struct {
	Title string      `yaml:"title"`
	Items []StageItem `yaml:"items"`
}

// Stages walks through a breakdown in four steps: basic cost, payment plan,
// EMIs and the holding period.
func Stages(params Parameters, b FinancialBreakdown) []Stage {
	return []Stage{
		{
			Title: "Basic Property Cost",
			Items: []StageItem{
				{Label: "Property Size", Value: b.Size, Unit: Area},
				{Label: "Purchase Price", Value: params.PurchasePricePerArea, Unit: PricePerArea},
				{Label: "Total Property Cost", Value: b.TotalCost, Unit: Currency},
			},
		},
		{
			Title: "Payment Plan Breakdown",
			Items: []StageItem{
				{Label: "Down Payment", Value: b.DownPayment, Unit: Funding, Share: b.Shares.DownPayment},
				{Label: "Home Loan", Value: b.HomeLoan.Principal, Unit: Funding, Share: b.Shares.HomeLoan},
				{Label: "Personal Loan 1", Value: b.PersonalLoan1.Principal, Unit: Funding, Share: b.Shares.PersonalLoan1},
				{Label: "Personal Loan 2", Value: b.PersonalLoan2.Principal, Unit: Funding, Share: b.Shares.PersonalLoan2},
				{Label: "Total Cash Invested", Value: b.TotalCashInvested, Unit: Currency},
			},
		},
		{
			Title: "EMI Calculations",
			Items: []StageItem{
				{Label: "Home Loan EMI", Value: b.HomeLoan.EMI, Unit: MonthlyCurrency},
				{Label: "Personal Loan 1 EMI", Value: b.PersonalLoan1.EMI, Unit: MonthlyCurrency},
				{Label: "Personal Loan 2 EMI", Value: b.PersonalLoan2.EMI, Unit: MonthlyCurrency},
				{Label: "Total Monthly EMI", Value: b.TotalMonthlyEMI(), Unit: MonthlyCurrency},
			},
		},
		{
			Title: "Holding Period Analysis",
			Items: []StageItem{
				{Label: "Holding Period", Value: float64(b.HoldingYears), Unit: Years},
				{Label: "Estimated Possession", Value: float64(b.PossessionMonths), Unit: Months},
				{Label: "Exit Price", Value: b.ExitPricePerArea, Unit: PricePerArea},
				{Label: "Expected Sale Value", Value: b.SaleValue, Unit: Currency},
			},
		},
	}
}
