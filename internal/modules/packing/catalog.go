// README: Static item catalog: base items plus per-axis topic tables.
package packing

import "fmt"

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }

func tempMax(v float64) *TempCondition { return &TempCondition{Max: fptr(v)} }
func tempMin(v float64) *TempCondition { return &TempCondition{Min: fptr(v)} }
func tempBetween(min, max float64) *TempCondition {
	return &TempCondition{Min: fptr(min), Max: fptr(max)}
}

// baseItems is the generic catalog seeded into every working set regardless of
// questionnaire answers.
var baseItems = []Item{
	{ID: "id-card", Name: "ID Card", Category: CategoryDocuments, Quantity: 1, Essential: true},
	{ID: "wallet", Name: "Wallet", Category: CategoryEssentials, Quantity: 1, Essential: true},
	{ID: "phone", Name: "Phone", Category: CategoryEssentials, Quantity: 1, Essential: true},
	{ID: "house-keys", Name: "House Keys", Category: CategoryEssentials, Quantity: 1, Essential: true},
	{ID: "t-shirts", Name: "T-Shirts", Category: CategoryClothing, Quantity: 1, Essential: true},
	{ID: "underwear", Name: "Underwear", Category: CategoryClothing, Quantity: 1, Essential: true},
	{ID: "socks", Name: "Socks", Category: CategoryClothing, Quantity: 1, Essential: true},
	{ID: "pants", Name: "Pants", Category: CategoryClothing, Quantity: 2, Essential: true},
	{ID: "sleepwear", Name: "Sleepwear", Category: CategoryClothing, Quantity: 1, Essential: false},
	{ID: "walking-shoes", Name: "Comfortable Walking Shoes", Category: CategoryClothing, Quantity: 1, Essential: true},
	{ID: "phone-charger", Name: "Phone Charger", Category: CategoryElectronics, Quantity: 1, Essential: true},
	{ID: "toothbrush", Name: "Toothbrush", Category: CategoryToiletries, Quantity: 1, Essential: true},
	{ID: "toothpaste", Name: "Toothpaste", Category: CategoryToiletries, Quantity: 1, Essential: true},
	{ID: "deodorant", Name: "Deodorant", Category: CategoryToiletries, Quantity: 1, Essential: true},
	{ID: "shampoo", Name: "Travel Shampoo", Category: CategoryToiletries, Quantity: 1, Essential: false},
	{ID: "reusable-bag", Name: "Reusable Bag", Category: CategoryMisc, Quantity: 1, Essential: false},
}

// accommodationItems is keyed by the questionnaire's accommodation options.
// Tent and sleeping gear are bucketed under activities, matching how the list
// page groups outdoor equipment.
var accommodationItems = map[string][]Item{
	"Hostel": {
		{ID: "padlock", Name: "Padlock", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "travel-towel", Name: "Quick-Dry Travel Towel", Category: CategoryToiletries, Quantity: 1, Essential: true},
		{ID: "earplugs", Name: "Earplugs", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "shower-sandals", Name: "Shower Sandals", Category: CategoryClothing, Quantity: 1, Essential: false},
	},
	"Airbnb": {
		{ID: "travel-towel", Name: "Quick-Dry Travel Towel", Category: CategoryToiletries, Quantity: 1, Essential: false},
	},
	"Camping": {
		{ID: "tent", Name: "Tent", Category: CategoryActivities, Quantity: 1, Essential: true},
		{ID: "sleeping-bag", Name: "Sleeping Bag", Category: CategoryActivities, Quantity: 1, Essential: true},
		{ID: "sleeping-pad", Name: "Sleeping Pad", Category: CategoryActivities, Quantity: 1, Essential: false},
		{ID: "headlamp", Name: "Headlamp", Category: CategoryActivities, Quantity: 1, Essential: true},
		{ID: "camping-stove", Name: "Camping Stove", Category: CategoryActivities, Quantity: 1, Essential: false},
		{ID: "insect-repellent", Name: "Insect Repellent", Category: CategoryToiletries, Quantity: 1, Essential: false},
		{ID: "multi-tool", Name: "Multi-Tool", Category: CategoryActivities, Quantity: 1, Essential: false},
	},
	// Hotel guests get everything provided; no extra items.
}

// laptop is deliberately defined in both the business-reason table and the
// technology table with different flags. Identifiers share one namespace, so
// the later axis (technology) silently wins when both are selected.
var reasonItems = map[string][]Item{
	"Business": {
		{ID: "laptop", Name: "Laptop", Category: CategoryElectronics, Quantity: 1, Essential: true},
		{ID: "business-cards", Name: "Business Cards", Category: CategoryDocuments, Quantity: 1, Essential: false},
		{ID: "formal-wear", Name: "Formal Outfit", Category: CategoryClothing, Quantity: 1, Essential: true},
		{ID: "dress-shoes", Name: "Dress Shoes", Category: CategoryClothing, Quantity: 1, Essential: false},
		{ID: "notebook", Name: "Notebook and Pen", Category: CategoryMisc, Quantity: 1, Essential: false},
	},
	"Backpacking": {
		{ID: "backpack", Name: "Travel Backpack", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "padlock", Name: "Padlock", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "travel-towel", Name: "Quick-Dry Travel Towel", Category: CategoryToiletries, Quantity: 1, Essential: true},
		{ID: "sewing-kit", Name: "Sewing Kit", Category: CategoryMisc, Quantity: 1, Essential: false},
	},
	"Adventure": {
		{ID: "first-aid", Name: "First Aid Kit", Category: CategoryMedical, Quantity: 1, Essential: true},
		{ID: "multi-tool", Name: "Multi-Tool", Category: CategoryActivities, Quantity: 1, Essential: false},
		{ID: "water-bottle", Name: "Water Bottle", Category: CategoryAccessories, Quantity: 1, Essential: true},
	},
	"Concert": {
		{ID: "earplugs", Name: "Earplugs", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "portable-charger", Name: "Portable Charger", Category: CategoryElectronics, Quantity: 1, Essential: true},
		{ID: "tickets", Name: "Event Tickets", Category: CategoryDocuments, Quantity: 1, Essential: true},
	},
	"Honeymoon": {
		{ID: "nice-outfit", Name: "Evening Outfit", Category: CategoryClothing, Quantity: 1, Essential: false},
		{ID: "camera", Name: "Camera", Category: CategoryElectronics, Quantity: 1, Essential: false},
	},
	"Holiday": {
		{ID: "guidebook", Name: "Guidebook", Category: CategoryMisc, Quantity: 1, Essential: false},
		{ID: "day-bag", Name: "Day Bag", Category: CategoryAccessories, Quantity: 1, Essential: false},
	},
}

var packingForItems = map[string][]Item{
	"Male": {
		{ID: "razor", Name: "Razor", Category: CategoryToiletries, Quantity: 1, Essential: false},
		{ID: "shaving-cream", Name: "Shaving Cream", Category: CategoryToiletries, Quantity: 1, Essential: false},
	},
	"Female": {
		{ID: "makeup-bag", Name: "Makeup Bag", Category: CategoryToiletries, Quantity: 1, Essential: false},
		{ID: "hair-ties", Name: "Hair Ties", Category: CategoryAccessories, Quantity: 1, Essential: false},
	},
	"Baby": {
		{ID: "diapers", Name: "Diapers", Category: CategoryEssentials, Quantity: 1, Essential: true},
		{ID: "baby-wipes", Name: "Baby Wipes", Category: CategoryToiletries, Quantity: 1, Essential: true},
		{ID: "baby-clothes", Name: "Baby Clothes", Category: CategoryClothing, Quantity: 1, Essential: true},
		{ID: "baby-bottle", Name: "Baby Bottle", Category: CategoryEssentials, Quantity: 1, Essential: true},
	},
}

var technologyItems = map[string][]Item{
	"Laptop": {
		{ID: "laptop", Name: "Laptop", Category: CategoryElectronics, Quantity: 1, Essential: false},
		{ID: "laptop-charger", Name: "Laptop Charger", Category: CategoryElectronics, Quantity: 1, Essential: true},
	},
	"Tablet": {
		{ID: "tablet", Name: "Tablet", Category: CategoryElectronics, Quantity: 1, Essential: false},
		{ID: "tablet-charger", Name: "Tablet Charger", Category: CategoryElectronics, Quantity: 1, Essential: false},
	},
	"Camera": {
		{ID: "camera", Name: "Camera", Category: CategoryElectronics, Quantity: 1, Essential: false},
		{ID: "memory-cards", Name: "Memory Cards", Category: CategoryElectronics, Quantity: 2, Essential: false},
		{ID: "camera-charger", Name: "Camera Battery Charger", Category: CategoryElectronics, Quantity: 1, Essential: false},
	},
	"E-reader": {
		{ID: "e-reader", Name: "E-Reader", Category: CategoryElectronics, Quantity: 1, Essential: false},
	},
	"Smart watch": {
		{ID: "watch-charger", Name: "Watch Charger", Category: CategoryElectronics, Quantity: 1, Essential: false},
	},
}

var activityItems = map[string][]Item{
	"Hiking": {
		{ID: "hiking-boots", Name: "Hiking Boots", Category: CategoryClothing, Quantity: 1, Essential: true},
		{ID: "hiking-backpack", Name: "Hiking Backpack", Category: CategoryActivities, Quantity: 1, Essential: false},
		{ID: "water-bottle", Name: "Water Bottle", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "first-aid", Name: "First Aid Kit", Category: CategoryMedical, Quantity: 1, Essential: false},
		{ID: "wool-socks", Name: "Wool Hiking Socks", Category: CategoryClothing, Quantity: 1, Essential: false},
	},
	"Running": {
		{ID: "running-shoes", Name: "Running Shoes", Category: CategoryClothing, Quantity: 1, Essential: true},
		{ID: "running-top", Name: "Running Top", Category: CategoryClothing, Quantity: 1, Essential: false},
	},
	"Gym": {
		{ID: "gym-shoes", Name: "Gym Shoes", Category: CategoryClothing, Quantity: 1, Essential: false},
		{ID: "gym-top", Name: "Workout Top", Category: CategoryClothing, Quantity: 1, Essential: false},
	},
	"Cycling": {
		{ID: "cycling-helmet", Name: "Cycling Helmet", Category: CategoryActivities, Quantity: 1, Essential: true},
		{ID: "padded-shorts", Name: "Padded Cycling Shorts", Category: CategoryClothing, Quantity: 1, Essential: false},
	},
	"Skiing": {
		{ID: "ski-jacket", Name: "Ski Jacket", Category: CategoryClothing, Quantity: 1, Essential: true,
			Conditions: &Conditions{Temperature: tempMax(10)}},
		{ID: "ski-goggles", Name: "Ski Goggles", Category: CategoryActivities, Quantity: 1, Essential: true},
		{ID: "thermal-socks", Name: "Thermal Ski Socks", Category: CategoryClothing, Quantity: 1, Essential: false},
		{ID: "base-layers", Name: "Base Layers", Category: CategoryClothing, Quantity: 2, Essential: true},
	},
}

var eyewearItems = map[string][]Item{
	"Glasses": {
		{ID: "prescription-glasses", Name: "Prescription Glasses", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "glasses-case", Name: "Glasses Case", Category: CategoryAccessories, Quantity: 1, Essential: false},
	},
	"Contacts": {
		{ID: "contact-lenses", Name: "Contact Lenses", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "lens-solution", Name: "Contact Lens Solution", Category: CategoryToiletries, Quantity: 1, Essential: true},
	},
	"Both": {
		{ID: "prescription-glasses", Name: "Prescription Glasses", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "glasses-case", Name: "Glasses Case", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "contact-lenses", Name: "Contact Lenses", Category: CategoryAccessories, Quantity: 1, Essential: true},
		{ID: "lens-solution", Name: "Contact Lens Solution", Category: CategoryToiletries, Quantity: 1, Essential: true},
	},
}

// swimmingItems is a flat list upserted when the swimming answer is true.
// The beach towel keeps its accommodation clause: hostels hand out towels,
// hotels and rentals often do not.
var swimmingItems = []Item{
	{ID: "swimsuit", Name: "Swimsuit", Category: CategoryClothing, Quantity: 1, Essential: false,
		Conditions: &Conditions{Swimming: bptr(true)}},
	{ID: "beach-towel", Name: "Beach Towel", Category: CategoryActivities, Quantity: 1, Essential: false,
		Conditions: &Conditions{Swimming: bptr(true), Accommodation: []string{"Hotel", "Airbnb", "Camping"}}},
	{ID: "flip-flops", Name: "Flip Flops", Category: CategoryClothing, Quantity: 1, Essential: false,
		Conditions: &Conditions{Swimming: bptr(true)}},
	{ID: "swim-goggles", Name: "Swim Goggles", Category: CategoryActivities, Quantity: 1, Essential: false,
		Conditions: &Conditions{Swimming: bptr(true)}},
	{ID: "waterproof-case", Name: "Waterproof Phone Case", Category: CategoryAccessories, Quantity: 1, Essential: false,
		Conditions: &Conditions{Swimming: bptr(true)}},
}

var transportationItems = map[string][]Item{
	"Flying": {
		{ID: "neck-pillow", Name: "Neck Pillow", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "eye-mask", Name: "Eye Mask", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "earplugs", Name: "Earplugs", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "luggage-tags", Name: "Luggage Tags", Category: CategoryAccessories, Quantity: 2, Essential: false},
		{ID: "clear-liquids-bag", Name: "Clear Liquids Bag", Category: CategoryToiletries, Quantity: 1, Essential: true},
	},
	"Driving": {
		{ID: "car-charger", Name: "Car Phone Charger", Category: CategoryElectronics, Quantity: 1, Essential: false},
		{ID: "road-snacks", Name: "Road Snacks", Category: CategoryMisc, Quantity: 1, Essential: false},
		{ID: "drivers-license", Name: "Driver's License", Category: CategoryDocuments, Quantity: 1, Essential: true},
	},
	"Train": {
		{ID: "portable-charger", Name: "Portable Charger", Category: CategoryElectronics, Quantity: 1, Essential: false},
		{ID: "neck-pillow", Name: "Neck Pillow", Category: CategoryAccessories, Quantity: 1, Essential: false},
	},
	"Bus": {
		{ID: "neck-pillow", Name: "Neck Pillow", Category: CategoryAccessories, Quantity: 1, Essential: false},
		{ID: "motion-sickness-meds", Name: "Motion Sickness Tablets", Category: CategoryMedical, Quantity: 1, Essential: false},
	},
}

var specialEventItems = map[string][]Item{
	"Formal Events": {
		{ID: "formal-wear", Name: "Formal Outfit", Category: CategoryClothing, Quantity: 1, Essential: true,
			Conditions: &Conditions{SpecialEvents: []string{"Formal Events"}}},
		{ID: "dress-shoes", Name: "Dress Shoes", Category: CategoryClothing, Quantity: 1, Essential: false,
			Conditions: &Conditions{SpecialEvents: []string{"Formal Events"}}},
		{ID: "dress-socks", Name: "Dress Socks", Category: CategoryClothing, Quantity: 1, Essential: false,
			Conditions: &Conditions{SpecialEvents: []string{"Formal Events"}}},
	},
	"Religious Sites": {
		{ID: "modest-cover", Name: "Modest Cover-Up", Category: CategoryClothing, Quantity: 1, Essential: false,
			Conditions: &Conditions{SpecialEvents: []string{"Religious Sites"}}},
		{ID: "head-scarf", Name: "Head Scarf", Category: CategoryAccessories, Quantity: 1, Essential: false,
			Conditions: &Conditions{SpecialEvents: []string{"Religious Sites"}}},
	},
}

var medicalItems = map[string][]Item{
	"Medications": {
		{ID: "prescription-meds", Name: "Prescription Medications", Category: CategoryMedical, Quantity: 1, Essential: true,
			Conditions: &Conditions{Medical: []string{"Medications"}}},
		{ID: "pill-organizer", Name: "Pill Organizer", Category: CategoryMedical, Quantity: 1, Essential: false,
			Conditions: &Conditions{Medical: []string{"Medications"}}},
	},
	"Allergies": {
		{ID: "allergy-meds", Name: "Allergy Medication", Category: CategoryMedical, Quantity: 1, Essential: true,
			Conditions: &Conditions{Medical: []string{"Allergies"}}},
	},
}

// Temperature band tables. Band activation is coarse; each item's own
// temperature clause is the precise gate, so a cold-band item like the winter
// coat still drops out when the traveller's max exceeds the coat's range.
var coldItems = []Item{
	{ID: "winter-coat", Name: "Winter Coat", Category: CategoryClothing, Quantity: 1, Essential: true,
		Conditions: &Conditions{Temperature: tempMax(10)}},
	{ID: "gloves", Name: "Gloves", Category: CategoryClothing, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempMax(10)}},
	{ID: "warm-hat", Name: "Warm Hat", Category: CategoryClothing, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempMax(10)}},
	{ID: "fleece", Name: "Fleece Layer", Category: CategoryClothing, Quantity: 1, Essential: false},
	{ID: "scarf", Name: "Scarf", Category: CategoryClothing, Quantity: 1, Essential: false},
}

var mildItems = []Item{
	{ID: "light-jacket", Name: "Light Jacket", Category: CategoryClothing, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempBetween(10, 20)}},
	{ID: "long-sleeve-top", Name: "Long Sleeve Top", Category: CategoryClothing, Quantity: 1, Essential: false},
	{ID: "umbrella", Name: "Umbrella", Category: CategoryAccessories, Quantity: 1, Essential: false},
}

var warmItems = []Item{
	{ID: "shorts", Name: "Shorts", Category: CategoryClothing, Quantity: 2, Essential: false},
	{ID: "sun-hat", Name: "Sun Hat", Category: CategoryAccessories, Quantity: 1, Essential: false},
	{ID: "sunscreen", Name: "Sunscreen", Category: CategoryToiletries, Quantity: 1, Essential: true,
		Conditions: &Conditions{Temperature: tempMin(20)}},
	{ID: "sunglasses", Name: "Sunglasses", Category: CategoryAccessories, Quantity: 1, Essential: false},
}

var hotItems = []Item{
	{ID: "cooling-towel", Name: "Cooling Towel", Category: CategoryAccessories, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempMin(25)}},
	{ID: "electrolytes", Name: "Electrolyte Tablets", Category: CategoryMedical, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempMin(25)}},
	{ID: "handheld-fan", Name: "Handheld Fan", Category: CategoryAccessories, Quantity: 1, Essential: false,
		Conditions: &Conditions{Temperature: tempMin(25)}},
}

// internationalItems is upserted when origin and destination resolve to
// different countries. Items keep their own clauses, so the medication letter
// only survives for travellers who declared medication needs.
var internationalItems = []Item{
	{ID: "passport", Name: "Passport", Category: CategoryDocuments, Quantity: 1, Essential: true},
	{ID: "travel-insurance", Name: "Travel Insurance Documents", Category: CategoryDocuments, Quantity: 1, Essential: true},
	{ID: "power-adapter", Name: "International Power Adapter", Category: CategoryElectronics, Quantity: 1, Essential: true},
	{ID: "currency", Name: "Local Currency", Category: CategoryEssentials, Quantity: 1, Essential: false},
	{ID: "medication-letter", Name: "Medication Travel Letter", Category: CategoryDocuments, Quantity: 1, Essential: false,
		Conditions: &Conditions{Medical: []string{"Medications"}}},
}

func init() {
	validateItems("base", baseItems)
	for k, v := range accommodationItems {
		validateItems("accommodation/"+k, v)
	}
	for k, v := range reasonItems {
		validateItems("reason/"+k, v)
	}
	for k, v := range packingForItems {
		validateItems("packingFor/"+k, v)
	}
	for k, v := range technologyItems {
		validateItems("technology/"+k, v)
	}
	for k, v := range activityItems {
		validateItems("activities/"+k, v)
	}
	for k, v := range eyewearItems {
		validateItems("eyewear/"+k, v)
	}
	validateItems("swimming", swimmingItems)
	for k, v := range transportationItems {
		validateItems("transportation/"+k, v)
	}
	for k, v := range specialEventItems {
		validateItems("specialEvents/"+k, v)
	}
	for k, v := range medicalItems {
		validateItems("medical/"+k, v)
	}
	validateItems("band/cold", coldItems)
	validateItems("band/mild", mildItems)
	validateItems("band/warm", warmItems)
	validateItems("band/hot", hotItems)
	validateItems("international", internationalItems)
}

// validateItems panics on malformed catalog data. A bad entry is a programmer
// error that must surface at process start, not a runtime condition.
func validateItems(table string, items []Item) {
	for _, it := range items {
		if it.ID == "" || it.Name == "" {
			panic(fmt.Sprintf("catalog %s: item with empty id or name", table))
		}
		if !validCategory(it.Category) {
			panic(fmt.Sprintf("catalog %s: item %q has unknown category %q", table, it.ID, it.Category))
		}
		if it.Quantity < 1 {
			panic(fmt.Sprintf("catalog %s: item %q has non-positive quantity", table, it.ID))
		}
	}
}
