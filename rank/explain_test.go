package rank

import (
	"strings"
	"testing"

	"github.com/rushteam/famkit/core"
)

func TestExplain_Reasons(t *testing.T) {
	rec := &core.ActivityRecord{
		AgeRange: &core.AgeRange{Min: 5, Max: 9},
		Pricing:  core.Pricing{Type: core.PricingPerSession, Amount: 40},
		Provider: core.ProviderInfo{Verified: true},
	}
	f := core.FactorScores{
		Age:       1.0,
		Interests: 0.8,
		Location:  0.9,
		Schedule:  1.0,
		Budget:    1.0,
		Quality:   0.85,
	}

	reasons, concerns := Explain(f, rec)
	if len(concerns) != 0 {
		t.Errorf("concerns = %v, want none", concerns)
	}
	// age, interests, location, budget, quality, verified
	if len(reasons) != 6 {
		t.Fatalf("reasons = %v, want 6 entries", reasons)
	}
	if !strings.Contains(reasons[0], "5-9") {
		t.Errorf("age reason should carry the range: %q", reasons[0])
	}
}

func TestExplain_FreePricing(t *testing.T) {
	rec := &core.ActivityRecord{Pricing: core.Pricing{Type: core.PricingFree}}
	reasons, _ := Explain(core.FactorScores{Budget: 1.0, Age: 0.5, Interests: 0.5, Location: 0.5}, rec)
	found := false
	for _, r := range reasons {
		if strings.Contains(r, "免费") {
			found = true
		}
	}
	if !found {
		t.Errorf("free activity should be called out: %v", reasons)
	}
}

func TestExplain_Concerns(t *testing.T) {
	f := core.FactorScores{
		Age:       0.1,
		Interests: 0.2,
		Location:  0.3,
		Schedule:  0.5,
		Budget:    0.4,
		Quality:   0.5,
	}
	reasons, concerns := Explain(f, &core.ActivityRecord{})
	if len(reasons) != 0 {
		t.Errorf("reasons = %v, want none", reasons)
	}
	if len(concerns) != 4 {
		t.Fatalf("concerns = %v, want age/interests/location/budget", concerns)
	}
}

func TestExplain_ThresholdBoundaries(t *testing.T) {
	// scores sitting exactly on a threshold produce the reason, not the concern
	f := core.FactorScores{Age: 0.8, Interests: 0.7, Location: 0.8, Budget: 0.9, Quality: 0.8}
	reasons, concerns := Explain(f, nil)
	if len(reasons) != 5 {
		t.Errorf("reasons = %v, want 5 at thresholds", reasons)
	}
	if len(concerns) != 0 {
		t.Errorf("concerns = %v, want none", concerns)
	}

	f = core.FactorScores{Age: 0.3, Interests: 0.3, Location: 0.4, Budget: 0.5, Quality: 0.5}
	_, concerns = Explain(f, nil)
	if len(concerns) != 0 {
		t.Errorf("concerns = %v, thresholds are strict", concerns)
	}
}
