// README: End-to-end generation tests: determinism, invariants, and scenarios.
package packing

import (
	"reflect"
	"testing"
	"time"
)

func sampleAnswers() Answers {
	return Answers{
		Temperature:    TemperatureRange{Min: 8, Max: 24},
		Accommodation:  []string{"Hostel"},
		TravelReason:   []string{"Holiday"},
		PackingFor:     []string{"Female"},
		Technology:     []string{"Camera"},
		Swimming:       true,
		Activities:     []string{"Hiking"},
		Eyewear:        []string{"Contacts"},
		Transportation: []string{"Flying"},
		SpecialEvents:  []string{"Formal Events"},
		Medical:        []string{"Medications"},
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a := Generate(sampleAnswers(), 7, "Paris, France", "Tokyo, Japan")
	b := Generate(sampleAnswers(), 7, "Paris, France", "Tokyo, Japan")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical lists")
	}
}

func TestGenerateCategoryCompleteness(t *testing.T) {
	list := Generate(Answers{Temperature: TemperatureRange{Min: 15, Max: 18}}, 0, "", "")
	if len(list.Categories) != len(Categories) {
		t.Fatalf("expected %d category keys, got %d", len(Categories), len(list.Categories))
	}
	for _, c := range Categories {
		if _, ok := list.Categories[c]; !ok {
			t.Errorf("category %q missing from output", c)
		}
	}
}

func TestGenerateDedupInvariant(t *testing.T) {
	list := Generate(sampleAnswers(), 7, "Paris, France", "Tokyo, Japan")
	seen := map[string]bool{}
	for _, items := range list.Categories {
		for _, it := range items {
			if seen[it.ID] {
				t.Errorf("item %q appears more than once in the output", it.ID)
			}
			seen[it.ID] = true
		}
	}
}

// Every surviving item must individually pass the eligibility filter: the
// assembler may not leak anything past it.
func TestGenerateEligibilitySoundness(t *testing.T) {
	answers := sampleAnswers()
	const days = 7
	list := Generate(answers, days, "Paris, France", "Tokyo, Japan")
	for cat, items := range list.Categories {
		for _, it := range items {
			if !Eligible(it, answers, days) {
				t.Errorf("item %q in %q fails its own eligibility conditions", it.ID, cat)
			}
			if it.Quantity < 1 {
				t.Errorf("item %q has quantity %d", it.ID, it.Quantity)
			}
			if it.Category != cat {
				t.Errorf("item %q bucketed under %q but declares %q", it.ID, cat, it.Category)
			}
		}
	}
}

func TestGenerateQuantityBounds(t *testing.T) {
	for _, days := range []int{0, 1, 3, 7, 14, 30} {
		list := Generate(sampleAnswers(), days, "", "")
		for _, it := range list.Categories[CategoryClothing] {
			q := QuantityFor(it, days)
			if it.Quantity != q {
				t.Errorf("days=%d item %q quantity %d, want %d", days, it.ID, it.Quantity, q)
			}
			if q < 1 {
				t.Errorf("days=%d item %q quantity out of range: %d", days, it.ID, q)
			}
		}
		for _, it := range list.Categories[CategoryToiletries] {
			if it.Quantity != 1 {
				t.Errorf("days=%d toiletry %q quantity %d, want 1", days, it.ID, it.Quantity)
			}
		}
	}
}

func TestGenerateNegativeDurationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative trip duration")
		}
	}()
	Generate(Answers{}, -1, "", "")
}

// Camping trip with a wide temperature span: camping and swimming gear appear,
// the winter coat stays out despite the active cold band (its own clause
// requires max <= 10), and hot-band items stay out because their clauses
// require min >= 25.
func TestGenerateCampingScenario(t *testing.T) {
	answers := Answers{
		Temperature:   TemperatureRange{Min: 5, Max: 28},
		Accommodation: []string{"Camping"},
		Swimming:      true,
	}
	list := Generate(answers, 7, "X, SameCountry", "Y, SameCountry")

	byID := map[string]Item{}
	for _, items := range list.Categories {
		for _, it := range items {
			byID[it.ID] = it
		}
	}

	for _, id := range []string{"tent", "sleeping-bag", "headlamp"} {
		it, ok := byID[id]
		if !ok {
			t.Errorf("camping item %q missing", id)
			continue
		}
		if it.Category != CategoryActivities {
			t.Errorf("camping item %q in %q, want activities", id, it.Category)
		}
	}
	for _, id := range []string{"swimsuit", "beach-towel"} {
		if _, ok := byID[id]; !ok {
			t.Errorf("swimming item %q missing", id)
		}
	}
	// Cold band is active (min 5 <= 10) but items with a max<=10 clause fail
	// the per-item gate under a 28 degree max.
	if _, ok := byID["winter-coat"]; ok {
		t.Error("winter coat must not survive a 28 degree max")
	}
	if _, ok := byID["fleece"]; !ok {
		t.Error("unconditioned cold-band item should survive")
	}
	// Hot band is active (max 28 >= 25) but every hot item requires min >= 25.
	for _, id := range []string{"cooling-towel", "electrolytes", "handheld-fan"} {
		if _, ok := byID[id]; ok {
			t.Errorf("hot-band item %q must not survive a 5 degree min", id)
		}
	}
	// No other axes were selected: nothing from their tables.
	for _, id := range []string{"laptop", "prescription-glasses", "neck-pillow", "passport"} {
		if _, ok := byID[id]; ok {
			t.Errorf("unselected-axis item %q must not appear", id)
		}
	}
}

func TestDurationDays(t *testing.T) {
	day := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return ts
	}
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same instant", "2026-06-01T00:00:00Z", "2026-06-01T00:00:00Z", 0},
		{"exact week", "2026-06-01T00:00:00Z", "2026-06-08T00:00:00Z", 7},
		{"partial day rounds up", "2026-06-01T00:00:00Z", "2026-06-02T06:00:00Z", 2},
		{"under one day rounds up", "2026-06-01T08:00:00Z", "2026-06-01T20:00:00Z", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DurationDays(day(tt.start), day(tt.end)); got != tt.want {
				t.Errorf("DurationDays = %d, want %d", got, tt.want)
			}
		})
	}
}
