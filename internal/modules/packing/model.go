// README: Packing catalog types, answers, and the generated list structure.
package packing

// Category is one of the fixed output buckets of a packing list.
type Category string

const (
	CategoryEssentials  Category = "essentials"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryToiletries  Category = "toiletries"
	CategoryElectronics Category = "electronics"
	CategoryDocuments   Category = "documents"
	CategoryMedical     Category = "medical"
	CategoryActivities  Category = "activities"
	CategoryMisc        Category = "misc"
)

// Categories lists every output bucket in declaration order. The assembler
// initialises all of them so a generated list never has a missing key.
var Categories = []Category{
	CategoryEssentials,
	CategoryClothing,
	CategoryAccessories,
	CategoryToiletries,
	CategoryElectronics,
	CategoryDocuments,
	CategoryMedical,
	CategoryActivities,
	CategoryMisc,
}

func validCategory(c Category) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// TemperatureRange is a min/max pair in °C.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TempCondition is an item's own operating bounds in °C. The item is eligible
// only when its stated range covers the traveller's declared range.
type TempCondition struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// DurationCondition bounds the trip length (whole days) an item applies to.
type DurationCondition struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Conditions are the optional eligibility clauses attached to a catalog item.
// Every present clause must pass independently; within a list-valued clause any
// single match suffices. An absent clause imposes no constraint.
type Conditions struct {
	Temperature   *TempCondition     `json:"temperature,omitempty"`
	Activities    []string           `json:"activities,omitempty"`
	Accommodation []string           `json:"accommodation,omitempty"`
	Duration      *DurationCondition `json:"duration,omitempty"`
	Swimming      *bool              `json:"swimming,omitempty"`
	SpecialEvents []string           `json:"specialEvents,omitempty"`
	Eyewear       []string           `json:"eyewear,omitempty"`
	Technology    []string           `json:"technology,omitempty"`
	Medical       []string           `json:"medical,omitempty"`
}

// Item is an immutable catalog entry. The generator never mutates catalog
// items; surviving items are copied into the output with a recomputed quantity.
type Item struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Category   Category    `json:"category"`
	Quantity   int         `json:"quantity"`
	Essential  bool        `json:"essential"`
	Conditions *Conditions `json:"conditions,omitempty"`
}

// Answers is the traveller's questionnaire response. Slice fields are
// semantically sets; the "None" option is a sentinel meaning "skip all
// topic-specific items for this axis".
type Answers struct {
	Temperature    TemperatureRange `json:"temperature"`
	Accommodation  []string         `json:"accommodation"`
	TravelReason   []string         `json:"travelReason"`
	PackingFor     []string         `json:"packingFor"`
	Technology     []string         `json:"technology"`
	Swimming       bool             `json:"swimming"`
	Activities     []string         `json:"activities"`
	Eyewear        []string         `json:"eyewear"`
	Transportation []string         `json:"transportation"`
	Amenities      []string         `json:"amenities"`
	SpecialEvents  []string         `json:"specialEvents"`
	Medical        []string         `json:"medical"`
	Skincare       []string         `json:"skincare"`
}

// PackingList is the generated output: every fixed category key maps to a
// possibly-empty item sequence.
type PackingList struct {
	Categories map[Category][]Item `json:"categories"`
}

// NoneOption is the sentinel questionnaire answer that skips an axis.
const NoneOption = "None"
