// Package output provides utilities for formatting and displaying property
// analysis results.
package output

import (
	"fmt"
	"io"

	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/scenario"
	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/iwvelando/property-analyzer/pkg/format"
	"github.com/iwvelando/property-analyzer/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// LoanSchedule is the amortization table of one loan.
type LoanSchedule struct {
	Name     string          `yaml:"name"`
	Payments []loans.Payment `yaml:"payments"`
}

// Report is everything produced by one analysis run.
type Report struct {
	RunID       string                       `yaml:"runId"`
	Currency    string                       `yaml:"currency"`
	Parameters  breakdown.Parameters         `yaml:"parameters"`
	Breakdown   breakdown.FinancialBreakdown `yaml:"breakdown"`
	Stages      []breakdown.Stage            `yaml:"stages"`
	Scenarios   []scenario.Result            `yaml:"scenarios"`
	Properties  []scenario.PropertyResults   `yaml:"properties,omitempty"`
	Comparisons []scenario.Comparison        `yaml:"comparisons,omitempty"`
	Schedules   []LoanSchedule               `yaml:"schedules,omitempty"`
}

// Write renders the report in the named format.
func Write(w io.Writer, outputFormat string, report Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, report)
	case constants.OutputFormatCSV:
		return CsvFormat(w, report)
	case constants.OutputFormatYAML:
		return YamlFormat(w, report)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report Report) error {
	p := message.NewPrinter(language.English)
	pw := &printer{w: w, p: p}
	b := report.Breakdown

	pw.printf("--- Property analysis %s ---\n", report.RunID)
	pw.printf("Plan: %s | Size: %.0f | Exit price: %s | Holding: %d years\n\n",
		b.Plan, b.Size, format.Currency(b.ExitPricePerArea), b.HoldingYears)

	for i, stage := range report.Stages {
		pw.printf("Stage %d: %s\n", i+1, stage.Title)
		for _, item := range stage.Items {
			pw.printf("  %-22s %s\n", item.Label, stageValue(p, item))
		}
		pw.printf("\n")
	}

	pw.printf("Loan            | Principal       | EMI          | Payments | Outstanding     | Interest Paid\n")
	pw.printf("____            | _________       | ___          | ________ | ___________     | _____________\n")
	for _, row := range []struct {
		name     string
		position breakdown.LoanPosition
		active   bool
	}{
		{"Home Loan", b.HomeLoan, b.HasHomeLoan},
		{"Personal Loan 1", b.PersonalLoan1, b.HasPersonalLoan1},
		{"Personal Loan 2", b.PersonalLoan2, b.HasPersonalLoan2},
	} {
		if !row.active {
			continue
		}
		pw.printf("%-15s | %-15s | %-12s | %8d | %-15s | %s\n", row.name,
			format.Currency(row.position.Principal), format.Currency(row.position.EMI),
			row.position.PaymentsMade, format.Currency(row.position.Outstanding),
			format.Currency(row.position.InterestPaid))
	}
	pw.printf("\n")

	if b.HasIDC {
		pw.printf("Interest during construction: %s over %d months (%d tranches), home loan at completion %s\n",
			format.Lakhs(b.TotalIDC), b.ConstructionMonths, len(b.Tranches), format.Lakhs(b.TotalHomeLoanAtCompletion))
		pw.printf("Monthly IDC estimate: %s\n\n", format.Currency(b.MonthlyIDCEMI))
	}

	pw.printf("Pre-possession:  %s/month for %d months = %s\n",
		format.Currency(b.Timeline.PrePossessionEMI), b.Timeline.PrePossessionMonths, format.Lakhs(b.Timeline.PrePossessionTotal))
	pw.printf("Post-possession: %s/month for %d months = %s\n\n",
		format.Currency(b.Timeline.PostPossessionEMI), b.Timeline.PostPossessionMonths, format.Lakhs(b.Timeline.PostPossessionTotal))

	pw.printf("Cash invested:  %s\n", format.Lakhs(b.TotalCashInvested))
	pw.printf("Interest paid:  %s (includes %s IDC)\n", format.Lakhs(b.TotalInterestPaid), format.Lakhs(b.TotalIDC))
	pw.printf("EMIs paid:      %s\n", format.Lakhs(b.TotalEMIPaid))
	pw.printf("Sale value:     %s\n", format.Lakhs(b.SaleValue))
	pw.printf("Leftover cash:  %s\n", format.Lakhs(b.LeftoverCash))
	pw.printf("Net gain/loss:  %s\n", format.Lakhs(b.NetGainLoss))
	pw.printf("ROI:            %s\n\n", format.Percent(b.ROI))

	if len(report.Scenarios) > 0 {
		pw.printf("--- Exit scenarios ---\n")
		writeResults(pw, report.Scenarios)
		pw.printf("\n")
	}

	for _, property := range report.Properties {
		pw.printf("--- Results for property %s (%.0f, possession after %d months) ---\n",
			property.Property.Name, property.Property.Size, property.Property.PossessionMonths)
		writeResults(pw, property.Results)
		pw.printf("Average: net profit %s | ROI %s | appreciation %s | sale value %s\n\n",
			format.Lakhs(property.Averages.NetProfit), format.Percent(property.Averages.ROI),
			format.Percent(property.Averages.Appreciation), format.Lakhs(property.Averages.SaleValue))
	}

	if len(report.Comparisons) > 0 && len(report.Properties) > 1 {
		first, second := report.Properties[0], report.Properties[1]
		pw.printf("--- %s vs %s ---\n", first.Property.Name, second.Property.Name)
		for i, c := range report.Comparisons {
			leader := first.Property.Name
			if c.LeaderIndex == 1 {
				leader = second.Property.Name
			}
			pw.printf("%s | %s | %s | %s leads\n", format.Currency(first.Results[i].ExitPrice),
				format.Lakhs(c.Difference), format.Percent(c.Percentage), leader)
		}
		pw.printf("\n")
	}

	for _, schedule := range report.Schedules {
		pw.printf("--- Amortization schedule for %s ---\n", schedule.Name)
		pw.printf("Month | Payment      | Principal    | Interest     | Remaining\n")
		pw.printf("_____ | _______      | _________    | ________     | _________\n")
		for _, payment := range schedule.Payments {
			pw.printf("%5d | %-12s | %-12s | %-12s | %s\n", payment.Month,
				format.NumericCurrency(payment.Payment), format.NumericCurrency(payment.Principal),
				format.NumericCurrency(payment.Interest), format.NumericCurrency(payment.RemainingPrincipal))
		}
		pw.printf("\n")
	}

	return pw.err
}

func writeResults(pw *printer, results []scenario.Result) {
	pw.printf("Exit Price | Sale Value | Net Profit | ROI     | Appreciation\n")
	pw.printf("__________ | __________ | __________ | ___     | ____________\n")
	for _, r := range results {
		pw.printf("%-10s | %-10s | %-10s | %-7s | %s\n", format.Currency(r.ExitPrice),
			format.Lakhs(r.SaleValue), format.Lakhs(r.NetProfit), format.Percent(r.ROI),
			format.Percent(r.Appreciation))
	}
}

func stageValue(p *message.Printer, item breakdown.StageItem) string {
	switch item.Unit {
	case breakdown.Area:
		return p.Sprintf("%.0f", item.Value)
	case breakdown.PricePerArea:
		return format.Currency(item.Value) + " per unit area"
	case breakdown.MonthlyCurrency:
		return format.Currency(item.Value) + "/month"
	case breakdown.Months:
		return p.Sprintf("%.0f months", item.Value)
	case breakdown.Years:
		return p.Sprintf("%.0f years (%.0f months)", item.Value, item.Value*constants.MonthsPerYear)
	case breakdown.Funding:
		return format.Percent(item.Share) + " (" + format.Currency(item.Value) + ")"
	}
	return format.Currency(item.Value)
}

// CsvFormat outputs the exit scenarios in comma-separated value format.
func CsvFormat(w io.Writer, report Report) error {
	pw := &printer{w: w}
	pw.printf(`"exit price","sale value","net profit","roi","appreciation","cash invested","loan outstanding","leftover cash","total emi paid"`)
	pw.printf("\n")
	for _, r := range report.Scenarios {
		pw.printf(`"%s","%s","%s","%s","%s","%s","%s","%s","%s"`,
			format.Fixed(r.ExitPrice), format.Fixed(r.SaleValue), format.Fixed(r.NetProfit),
			format.Fixed(r.ROI), format.Fixed(r.Appreciation), format.Fixed(r.CashInvested),
			format.Fixed(r.LoanOutstanding), format.Fixed(r.LeftoverCash), format.Fixed(r.TotalEMIPaid))
		pw.printf("\n")
	}
	return pw.err
}

// YamlFormat outputs the full report as YAML.
func YamlFormat(w io.Writer, report Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// printer keeps the first write error so callers check once.
type printer struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (pw *printer) printf(layout string, args ...interface{}) {
	if pw.err != nil {
		return
	}
	if pw.p != nil {
		_, pw.err = pw.p.Fprintf(pw.w, layout, args...)
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, layout, args...)
}
