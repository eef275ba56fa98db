package rank

import (
	"testing"

	"github.com/rushteam/famkit/core"
)

func TestBudgetScore(t *testing.T) {
	tests := []struct {
		name    string
		budget  *core.Budget
		pricing core.Pricing
		want    float64
	}{
		{
			"free beats any budget",
			&core.Budget{Max: 5},
			core.Pricing{Type: core.PricingFree},
			1.0,
		},
		{
			"free with no budget",
			nil,
			core.Pricing{Type: core.PricingFree},
			1.0,
		},
		{
			"no budget set",
			nil,
			core.Pricing{Type: core.PricingPerSession, Amount: 45},
			0.7,
		},
		{
			"zero max is no budget",
			&core.Budget{Max: 0},
			core.Pricing{Type: core.PricingPerSession, Amount: 45},
			0.7,
		},
		{
			"unknown cost",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession},
			0.8,
		},
		{
			"within budget",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession, Amount: 50},
			1.0,
		},
		{
			"slightly over",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession, Amount: 55},
			0.7,
		},
		{
			"well over",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession, Amount: 70},
			0.4,
		},
		{
			"way over",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession, Amount: 100},
			0.1,
		},
		{
			"range upper bound compared",
			&core.Budget{Max: 50},
			core.Pricing{Type: core.PricingPerSession, Range: &core.PriceRange{Min: 40, Max: 60}},
			0.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetScore(tt.budget, tt.pricing)
			if !closeTo(got, tt.want) {
				t.Errorf("BudgetScore = %v, want %v", got, tt.want)
			}
		})
	}
}
