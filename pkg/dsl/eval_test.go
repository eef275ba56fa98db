package dsl

import (
	"testing"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/utils"
)

func evalCandidate() *core.Candidate {
	c := core.NewCandidate("c1", core.SourceProvider)
	c.VectorSimilarity = 0.85
	c.MatchScore = 0.72
	c.Activity = &core.ActivityRecord{
		ProviderID: "studio-a",
		Name:       "Watercolor Basics",
		Category:   "art",
		Interests:  []string{"art", "painting"},
		Location:   core.Location{Neighborhood: "Mission", City: "San Francisco"},
		Pricing:    core.Pricing{Type: core.PricingPerSession, Amount: 45},
		Provider:   core.ProviderInfo{Verified: true, Rating: 4.8},
	}
	c.PutLabel("recall_source", utils.Label{Value: "recall.vector", Source: "recall"})
	return c
}

func evalContext() *core.MatchContext {
	return &core.MatchContext{
		Family: &core.FamilyProfile{
			Children: []core.Child{
				{Age: 7, Interests: []string{"art"}, Allergies: []string{"peanut"}},
				{Age: 4},
			},
			Location: core.Location{City: "San Francisco"},
		},
	}
}

func TestEval_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    bool
		wantErr bool
	}{
		{"empty expression passes", "", true, false},
		{"candidate category", `candidate.category == "art"`, true, false},
		{"candidate score compare", `candidate.match_score > 0.5`, true, false},
		{"candidate verified", `candidate.verified`, true, false},
		{"candidate price", `candidate.price <= 50.0`, true, false},
		{"allergy rule blocks", `!("peanut" in family.allergies) || candidate.category != "cooking"`, true, false},
		{"allergy rule on cooking", `!("peanut" in family.allergies)`, false, false},
		{"children count", `family.children_count == 2`, true, false},
		{"child ages", `7 in family.child_ages`, true, false},
		{"label access", `label.recall_source.contains("vector")`, true, false},
		{"interest membership", `"art" in candidate.interests`, true, false},
		{"compile error", `candidate.category ==`, false, true},
		{"non boolean result", `candidate.rating`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEval(evalCandidate(), evalContext()).Evaluate(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Evaluate(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEval_SparseCandidate(t *testing.T) {
	// no activity record yet: only the base candidate fields exist
	c := core.NewCandidate("c1", core.SourceEvent)
	c.VectorSimilarity = 0.5

	got, err := NewEval(c, &core.MatchContext{}).Evaluate(`candidate.vector_similarity >= 0.5`)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !got {
		t.Error("base fields must be evaluable before normalization")
	}
}
