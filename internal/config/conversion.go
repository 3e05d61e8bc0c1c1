// Package config defines conversion utilities for configuration objects.
package config

import (
	"fmt"

	"github.com/iwvelando/property-analyzer/internal/breakdown"
	"github.com/iwvelando/property-analyzer/internal/scenario"
)

// ToParameters converts the configuration into calculator parameters for a
// property of the given size.
func (c *Configuration) ToParameters(size float64) (breakdown.Parameters, error) {
	t, err := c.Plan()
	if err != nil {
		return breakdown.Parameters{}, err
	}
	return breakdown.Parameters{
		PurchasePricePerArea: c.PurchasePrice,
		Size:                 size,
		Plan:                 t,
		Assumptions:          c.Assumptions,
	}, nil
}

// SelectedProperty returns the property named by the selection, or the first
// property when no name is given. Size and possession fall back to the
// selection and assumptions when there are no properties.
func (c *Configuration) SelectedProperty() (scenario.Property, error) {
	if len(c.Properties) == 0 {
		return scenario.Property{
			Name:             "selected",
			Size:             c.Selection.PropertySize,
			PossessionMonths: c.Assumptions.PossessionMonths,
		}, nil
	}

	selected := c.Properties[0]
	if c.Selection.Property != "" {
		found := false
		for _, property := range c.Properties {
			if property.Name == c.Selection.Property {
				selected = property
				found = true
				break
			}
		}
		if !found {
			return scenario.Property{}, fmt.Errorf("selected property %q is not configured", c.Selection.Property)
		}
	}

	if c.Selection.PropertySize > 0 {
		selected.Size = c.Selection.PropertySize
	}
	return selected, nil
}

// SelectedParameters returns the parameters of the selected property with
// its possession month applied.
func (c *Configuration) SelectedParameters() (breakdown.Parameters, error) {
	property, err := c.SelectedProperty()
	if err != nil {
		return breakdown.Parameters{}, err
	}
	params, err := c.ToParameters(property.Size)
	if err != nil {
		return breakdown.Parameters{}, err
	}
	return property.Apply(params), nil
}

// SelectedScenario returns the exit scenario of the detailed breakdown.
func (c *Configuration) SelectedScenario() breakdown.ExitScenario {
	return breakdown.ExitScenario{
		ExitPricePerArea: c.Selection.ExitPrice,
		HoldingYears:     c.Selection.Years,
	}
}
