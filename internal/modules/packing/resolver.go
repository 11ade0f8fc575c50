// README: Catalog resolver: merges topic tables into a deduplicated working set.
package packing

import "strings"

// WorkingSet is the merged, pre-filter candidate collection keyed by item
// identifier. At most one item per identifier survives the merge.
type WorkingSet map[string]Item

// Resolve walks the answers and gathers candidate items from every topic
// table. Axis order is fixed: base, accommodation, travel reason, packing-for,
// technology, activities, eyewear, swimming, transportation, special events,
// medical, temperature bands, international. Later axes overwrite earlier ones
// on identifier collision (last write wins).
func Resolve(answers Answers, origin, destination string) WorkingSet {
	set := make(WorkingSet, len(baseItems))

	upsert(set, baseItems)
	upsertSelected(set, accommodationItems, answers.Accommodation)
	upsertSelected(set, reasonItems, answers.TravelReason)
	upsertSelected(set, packingForItems, answers.PackingFor)
	upsertSelected(set, technologyItems, answers.Technology)
	upsertSelected(set, activityItems, answers.Activities)
	upsertSelected(set, eyewearItems, answers.Eyewear)

	if answers.Swimming {
		upsert(set, swimmingItems)
	}

	upsertSelected(set, transportationItems, answers.Transportation)
	upsertSelected(set, specialEventItems, answers.SpecialEvents)
	upsertSelected(set, medicalItems, answers.Medical)

	upsertBands(set, answers.Temperature)

	if isInternational(origin, destination) {
		upsert(set, internationalItems)
	}

	return set
}

func upsert(set WorkingSet, items []Item) {
	for _, it := range items {
		set[it.ID] = it
	}
}

// upsertSelected pulls the item list for each selected option. The "None"
// sentinel skips the axis entirely; an option absent from the table
// contributes nothing.
func upsertSelected(set WorkingSet, table map[string][]Item, selected []string) {
	for _, opt := range selected {
		if opt == NoneOption {
			return
		}
	}
	for _, opt := range selected {
		upsert(set, table[opt])
	}
}

// upsertBands classifies the traveller's range against the four temperature
// bands. Bands are not mutually exclusive: a wide range can activate all of
// them. Band items are additionally gated on their own temperature clause
// before merge; the full filter runs again at assembly.
func upsertBands(set WorkingSet, r TemperatureRange) {
	bands := []struct {
		active bool
		items  []Item
	}{
		{r.Min <= 10, coldItems},
		{r.Min <= 20 && r.Max >= 10, mildItems},
		{r.Max >= 20, warmItems},
		{r.Max >= 25, hotItems},
	}
	for _, b := range bands {
		if !b.active {
			continue
		}
		for _, it := range b.items {
			if temperatureEligible(it, r) {
				set[it.ID] = it
			}
		}
	}
}

// isInternational applies the comma-split country heuristic: both locations
// must yield a non-empty country and the two must differ. Known weakness: a
// trailing state or region ("Portland, Oregon") reads as a country, so this
// can misfire. TODO: resolve countries through the geocoder when a maps key
// is configured instead of trusting free text.
func isInternational(origin, destination string) bool {
	o := countryOf(origin)
	d := countryOf(destination)
	return o != "" && d != "" && o != d
}

func countryOf(location string) string {
	i := strings.LastIndex(location, ",")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(location[i+1:])
}
