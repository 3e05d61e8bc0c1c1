package config

import (
	"testing"

	"github.com/iwvelando/property-analyzer/internal/plan"
	"github.com/iwvelando/property-analyzer/internal/scenario"
)

func testConfiguration() *Configuration {
	return &Configuration{
		PurchasePrice: 5000,
		PaymentPlan:   "40-60",
		Properties: []scenario.Property{
			{Name: "Tower A", Size: 1000, PossessionMonths: 18},
			{Name: "Tower B", Size: 1500},
		},
		Selection: Selection{ExitPrice: 7000, Years: 5},
	}
}

func TestToParameters(t *testing.T) {
	config := testConfiguration()
	config.Assumptions.HomeLoanRate = 8.5
	config.Assumptions.PossessionMonths = 30

	params, err := config.ToParameters(1200)
	if err != nil {
		t.Fatalf("ToParameters() error = %v", err)
	}
	if params.Plan != plan.FortySixty {
		t.Errorf("plan = %s, expected 40-60", params.Plan)
	}
	if params.Size != 1200 || params.PurchasePricePerArea != 5000 {
		t.Errorf("unexpected parameters: %+v", params)
	}
	if params.Assumptions.HomeLoanRate != 8.5 || params.Assumptions.PossessionMonths != 30 {
		t.Errorf("assumptions not carried over: %+v", params.Assumptions)
	}

	config.PaymentPlan = ""
	if _, err := config.ToParameters(1200); err == nil {
		t.Error("expected an error for a missing plan")
	}
}

func TestSelectedProperty(t *testing.T) {
	tests := []struct {
		name         string
		selection    Selection
		expectedName string
		expectedSize float64
		expectErr    bool
	}{
		{"Defaults to first property", Selection{}, "Tower A", 1000, false},
		{"Named property", Selection{Property: "Tower B"}, "Tower B", 1500, false},
		{"Size override", Selection{Property: "Tower B", PropertySize: 900}, "Tower B", 900, false},
		{"Unknown property", Selection{Property: "Tower C"}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfiguration()
			config.Selection = tt.selection

			property, err := config.SelectedProperty()
			if tt.expectErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectedProperty() error = %v", err)
			}
			if property.Name != tt.expectedName || property.Size != tt.expectedSize {
				t.Errorf("SelectedProperty() = %+v, expected %s of size %.0f", property, tt.expectedName, tt.expectedSize)
			}
		})
	}
}

func TestSelectedPropertyWithoutProperties(t *testing.T) {
	config := testConfiguration()
	config.Properties = nil
	config.Selection.PropertySize = 800
	config.Assumptions.PossessionMonths = 12

	property, err := config.SelectedProperty()
	if err != nil {
		t.Fatalf("SelectedProperty() error = %v", err)
	}
	if property.Size != 800 || property.PossessionMonths != 12 {
		t.Errorf("SelectedProperty() = %+v", property)
	}
}

func TestSelectedParameters(t *testing.T) {
	config := testConfiguration()
	config.Assumptions.PossessionMonths = 30

	params, err := config.SelectedParameters()
	if err != nil {
		t.Fatalf("SelectedParameters() error = %v", err)
	}
	if params.Size != 1000 || params.Assumptions.PossessionMonths != 18 {
		t.Errorf("expected Tower A with possession at 18 months, got size %.0f possession %d",
			params.Size, params.Assumptions.PossessionMonths)
	}

	config.Selection.Property = "Tower B"
	params, err = config.SelectedParameters()
	if err != nil {
		t.Fatalf("SelectedParameters() error = %v", err)
	}
	if params.Assumptions.PossessionMonths != 30 {
		t.Errorf("expected assumption possession for Tower B, got %d", params.Assumptions.PossessionMonths)
	}
}

func TestSelectedScenario(t *testing.T) {
	s := testConfiguration().SelectedScenario()
	if s.ExitPricePerArea != 7000 || s.HoldingYears != 5 {
		t.Errorf("SelectedScenario() = %+v", s)
	}
}
