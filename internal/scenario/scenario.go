// Package scenario sweeps a property across exit prices and compares the
// outcomes.
package scenario

import (
	"fmt"
	"math"

	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/mathutil"
	"go.uber.org/zap"
)

// Result is one breakdown reduced to the figures compared across scenarios.
type Result struct {
	ExitPrice       float64 `yaml:"exitPrice"`
	SaleValue       float64 `yaml:"saleValue"`
	NetProfit       float64 `yaml:"netProfit"`
	ROI             float64 `yaml:"roi"`
	Appreciation    float64 `yaml:"appreciation"`
	CashInvested    float64 `yaml:"cashInvested"`
	LoanOutstanding float64 `yaml:"loanOutstanding"`
	LeftoverCash    float64 `yaml:"leftoverCash"`
	TotalEMIPaid    float64 `yaml:"totalEMIPaid"`
}

// Comparison is the difference in net profit between two results.
type Comparison struct {
	// Difference is the second result's net profit minus the first's.
	Difference float64 `yaml:"difference"`
	// Percentage is the absolute difference relative to the first result.
	Percentage float64 `yaml:"percentage"`
	// LeaderIndex is 0 when the first result earns at least as much, 1 otherwise.
	LeaderIndex int `yaml:"leaderIndex"`
}

// Averages are the mean figures of a result set.
type Averages struct {
	NetProfit    float64 `yaml:"netProfit"`
	ROI          float64 `yaml:"roi"`
	Appreciation float64 `yaml:"appreciation"`
	SaleValue    float64 `yaml:"saleValue"`
}

// Property is one candidate unit sharing the purchase price and payment plan.
// A zero PossessionMonths keeps the possession month of the assumptions.
type Property struct {
	Name             string  `yaml:"name"`
	Location         string  `yaml:"location"`
	Size             float64 `yaml:"size"`
	PossessionMonths int     `yaml:"possessionMonths"`
	Highlighted      bool    `yaml:"highlighted"`
}

// Apply returns params with the property's size and possession month.
func (p Property) Apply(params breakdown.Parameters) breakdown.Parameters {
	params.Size = p.Size
	if p.PossessionMonths > 0 {
		params.Assumptions.PossessionMonths = p.PossessionMonths
	}
	return params
}

// PropertyResults are the scenario results of one property.
type PropertyResults struct {
	Property Property `yaml:"property"`
	Results  []Result `yaml:"results"`
	Averages Averages `yaml:"averages"`
}

// Counter receives the number of scenarios evaluated.
type Counter interface {
	AddScenarios(n int)
}

// Evaluator runs the breakdown calculator across scenarios.
type Evaluator struct {
	logger     *zap.Logger
	calculator *breakdown.Calculator
	counter    Counter
}

// NewEvaluator creates an evaluator. A nil logger is replaced with a no-op
// logger, a nil calculator with one sharing that logger, and a nil counter
// disables counting.
func NewEvaluator(logger *zap.Logger, calculator *breakdown.Calculator, counter Counter) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calculator == nil {
		calculator = breakdown.NewCalculator(logger, nil)
	}
	return &Evaluator{logger: logger, calculator: calculator, counter: counter}
}

// Evaluate computes one result per exit price for a property of the given
// size, preserving the order of exitPrices.
func (e *Evaluator) Evaluate(params breakdown.Parameters, size float64, holdingYears int, exitPrices []float64) []Result {
	params.Size = size
	results := make([]Result, 0, len(exitPrices))
	for _, price := range exitPrices {
		b := e.calculator.Compute(params, breakdown.ExitScenario{ExitPricePerArea: price, HoldingYears: holdingYears})
		results = append(results, Project(b, params.PurchasePricePerArea))
	}

	e.logger.Debug(fmt.Sprintf("evaluated %d exit prices for size %.2f over %d years",
		len(results), size, holdingYears),
		zap.String("op", "scenario.Evaluate"),
	)
	if e.counter != nil {
		e.counter.AddScenarios(len(results))
	}
	return results
}

// EvaluateProperties evaluates each property in turn with its own size and
// possession month. Results follow the order of properties.
func (e *Evaluator) EvaluateProperties(params breakdown.Parameters, properties []Property, holdingYears int, exitPrices []float64) []PropertyResults {
	all := make([]PropertyResults, 0, len(properties))
	for _, property := range properties {
		results := e.Evaluate(property.Apply(params), property.Size, holdingYears, exitPrices)
		all = append(all, PropertyResults{
			Property: property,
			Results:  results,
			Averages: Average(results),
		})
	}
	return all
}

// Project reduces a breakdown to a scenario result.
func Project(b breakdown.FinancialBreakdown, purchasePricePerArea float64) Result {
	return Result{
		ExitPrice:       b.ExitPricePerArea,
		SaleValue:       b.SaleValue,
		NetProfit:       b.NetGainLoss,
		ROI:             b.ROI,
		Appreciation:    Appreciation(purchasePricePerArea, b.ExitPricePerArea),
		CashInvested:    b.TotalCashInvested,
		LoanOutstanding: b.TotalLoanOutstanding,
		LeftoverCash:    b.LeftoverCash,
		TotalEMIPaid:    b.TotalEMIPaid,
	}
}

// Appreciation returns the percentage change from the purchase price to the
// exit price, or 0 without a purchase price.
func Appreciation(purchasePrice, exitPrice float64) float64 {
	return mathutil.CalculatePercentage(exitPrice-purchasePrice, purchasePrice)
}

// Compare measures b against a.
func Compare(a, b Result) Comparison {
	c := Comparison{Difference: b.NetProfit - a.NetProfit}
	if a.NetProfit != 0 {
		c.Percentage = math.Abs(c.Difference) / math.Abs(a.NetProfit) * constants.PercentageMultiplier
	}
	if b.NetProfit > a.NetProfit {
		c.LeaderIndex = 1
	}
	return c
}

// CompareProperties compares two properties exit price by exit price. Extra
// results on the longer side are ignored.
func CompareProperties(a, b []Result) []Comparison {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	comparisons := make([]Comparison, n)
	for i := 0; i < n; i++ {
		comparisons[i] = Compare(a[i], b[i])
	}
	return comparisons
}

// Average returns the mean net profit, ROI, appreciation and sale value.
func Average(results []Result) Averages {
	var avg Averages
	if len(results) == 0 {
		return avg
	}
	for _, r := range results {
		avg.NetProfit += r.NetProfit
		avg.ROI += r.ROI
		avg.Appreciation += r.Appreciation
		avg.SaleValue += r.SaleValue
	}
	n := float64(len(results))
	avg.NetProfit /= n
	avg.ROI /= n
	avg.Appreciation /= n
	avg.SaleValue /= n
	return avg
}

// NextExitPrice suggests the exit price to add after prices.
func NextExitPrice(prices []float64) float64 {
	if len(prices) == 0 {
		return constants.ExitPriceStep
	}
	highest := prices[0]
	for _, p := range prices[1:] {
		if p > highest {
			highest = p
		}
	}
	return highest + constants.ExitPriceStep
}
