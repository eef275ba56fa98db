package core

import "testing"

func TestAgeRange(t *testing.T) {
	r := AgeRange{Min: 5, Max: 9}
	tests := []struct {
		age          int
		wantContains bool
		wantDistance int
	}{
		{5, true, 0},
		{7, true, 0},
		{9, true, 0},
		{4, false, 1},
		{12, false, 3},
		{0, false, 5},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.age); got != tt.wantContains {
			t.Errorf("Contains(%d) = %v", tt.age, got)
		}
		if got := r.Distance(tt.age); got != tt.wantDistance {
			t.Errorf("Distance(%d) = %d, want %d", tt.age, got, tt.wantDistance)
		}
	}
}

func TestPricing_EffectiveCost(t *testing.T) {
	tests := []struct {
		name    string
		pricing Pricing
		want    float64
	}{
		{"amount wins", Pricing{Amount: 45, Range: &PriceRange{Min: 10, Max: 20}}, 45},
		{"range upper bound", Pricing{Range: &PriceRange{Min: 40, Max: 60}}, 60},
		{"unknown", Pricing{}, 0},
		{"free has no cost", Pricing{Type: PricingFree}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pricing.EffectiveCost(); got != tt.want {
				t.Errorf("EffectiveCost = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFamilyProfile_AllInterests(t *testing.T) {
	p := &FamilyProfile{
		Children: []Child{
			{Interests: []string{"art", "soccer"}},
			{Interests: []string{"art", "chess"}},
		},
		Preferences: Preferences{ActivityTypes: []string{"soccer", "swimming"}},
	}
	got := p.AllInterests()
	want := []string{"art", "soccer", "chess", "swimming"}
	if len(got) != len(want) {
		t.Fatalf("AllInterests = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllInterests = %v, want %v (dedup keeps first occurrence order)", got, want)
		}
	}

	var empty FamilyProfile
	if out := empty.AllInterests(); len(out) != 0 {
		t.Errorf("empty profile interests = %v", out)
	}
}
