// README: Resolver merge, banding, and international-detection tests.
package packing

import "testing"

func TestResolveSeedsBaseItems(t *testing.T) {
	set := Resolve(Answers{Temperature: TemperatureRange{Min: 15, Max: 18}}, "", "")
	for _, it := range baseItems {
		if _, ok := set[it.ID]; !ok {
			t.Errorf("base item %q missing from working set", it.ID)
		}
	}
}

func TestResolveNoneSentinelSkipsAxis(t *testing.T) {
	answers := Answers{
		Temperature: TemperatureRange{Min: 15, Max: 18},
		Technology:  []string{"Laptop", NoneOption},
	}
	set := Resolve(answers, "", "")
	if _, ok := set["laptop"]; ok {
		t.Fatal("None sentinel must skip the whole technology axis")
	}
}

func TestResolveUnknownOptionContributesNothing(t *testing.T) {
	base := Resolve(Answers{Temperature: TemperatureRange{Min: 15, Max: 18}}, "", "")
	withUnknown := Resolve(Answers{
		Temperature:   TemperatureRange{Min: 15, Max: 18},
		Accommodation: []string{"Houseboat"},
	}, "", "")
	if len(base) != len(withUnknown) {
		t.Fatalf("unknown option changed the working set: %d != %d", len(base), len(withUnknown))
	}
}

// The laptop identifier is declared in both the business-reason and technology
// tables with different flags. The shared namespace means the later axis wins;
// this pins the declared-order behaviour rather than blessing it as a ranking.
func TestResolveLastWriteWinsOnSharedIdentifier(t *testing.T) {
	answers := Answers{
		Temperature:  TemperatureRange{Min: 15, Max: 18},
		TravelReason: []string{"Business"},
		Technology:   []string{"Laptop"},
	}
	set := Resolve(answers, "", "")
	laptop, ok := set["laptop"]
	if !ok {
		t.Fatal("laptop missing from working set")
	}
	if laptop.Essential {
		t.Error("technology-table laptop (essential=false) should overwrite the business one")
	}

	// Business alone keeps the business definition.
	set = Resolve(Answers{Temperature: TemperatureRange{Min: 15, Max: 18}, TravelReason: []string{"Business"}}, "", "")
	if laptop, ok = set["laptop"]; !ok || !laptop.Essential {
		t.Error("business-table laptop (essential=true) expected when technology not selected")
	}
}

func TestResolveBandActivation(t *testing.T) {
	tests := []struct {
		name        string
		r           TemperatureRange
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "wide range activates all four bands",
			r:           TemperatureRange{Min: 5, Max: 30},
			wantPresent: []string{"fleece", "long-sleeve-top", "shorts"},
			// Band is active but each item's own clause still gates it.
			wantAbsent: []string{"winter-coat", "light-jacket", "cooling-towel"},
		},
		{
			name:        "narrow warm range skips cold and mild",
			r:           TemperatureRange{Min: 22, Max: 23},
			wantPresent: []string{"shorts", "sunscreen"},
			wantAbsent:  []string{"fleece", "winter-coat", "long-sleeve-top", "cooling-towel"},
		},
		{
			name:        "freezing range keeps the coat",
			r:           TemperatureRange{Min: -10, Max: 2},
			wantPresent: []string{"winter-coat", "gloves", "fleece"},
			wantAbsent:  []string{"shorts", "sunscreen"},
		},
		{
			name:        "hot range includes hot-band items",
			r:           TemperatureRange{Min: 26, Max: 35},
			wantPresent: []string{"cooling-towel", "electrolytes", "sunscreen"},
			wantAbsent:  []string{"winter-coat", "fleece"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := Resolve(Answers{Temperature: tt.r}, "", "")
			for _, id := range tt.wantPresent {
				if _, ok := set[id]; !ok {
					t.Errorf("expected %q in working set", id)
				}
			}
			for _, id := range tt.wantAbsent {
				if _, ok := set[id]; ok {
					t.Errorf("did not expect %q in working set", id)
				}
			}
		})
	}
}

func TestResolveInternationalDetection(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		want        bool
	}{
		{"different countries", "Paris, France", "Tokyo, Japan", true},
		{"same country", "Paris, France", "Lyon, France", false},
		{"missing comma yields no country", "Paris", "Tokyo, Japan", false},
		{"empty strings", "", "", false},
		{"state reads as country (known misfire)", "Portland, Oregon", "Austin, Texas", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isInternational(tt.origin, tt.destination); got != tt.want {
				t.Errorf("isInternational(%q, %q) = %v, want %v", tt.origin, tt.destination, got, tt.want)
			}
		})
	}
}

func TestResolveInternationalItems(t *testing.T) {
	answers := Answers{Temperature: TemperatureRange{Min: 15, Max: 18}}
	set := Resolve(answers, "Paris, France", "Tokyo, Japan")
	for _, id := range []string{"passport", "travel-insurance", "power-adapter"} {
		if _, ok := set[id]; !ok {
			t.Errorf("international item %q missing", id)
		}
	}

	set = Resolve(answers, "Paris, France", "Lyon, France")
	if _, ok := set["passport"]; ok {
		t.Error("domestic trip must not pull international items")
	}
}

func TestResolveSwimming(t *testing.T) {
	answers := Answers{Temperature: TemperatureRange{Min: 15, Max: 18}, Swimming: true}
	set := Resolve(answers, "", "")
	for _, id := range []string{"swimsuit", "beach-towel", "flip-flops"} {
		if _, ok := set[id]; !ok {
			t.Errorf("swimming item %q missing", id)
		}
	}
	set = Resolve(Answers{Temperature: TemperatureRange{Min: 15, Max: 18}}, "", "")
	if _, ok := set["swimsuit"]; ok {
		t.Error("swimsuit must not appear for a non-swimmer")
	}
}
