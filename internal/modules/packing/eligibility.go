// README: Per-item eligibility predicate over questionnaire answers.
package packing

// Eligible reports whether an item may appear in the generated list for the
// given answers and trip duration. Every clause present on the item must pass
// (AND); within a list-valued clause a single overlap suffices (OR). An item
// without conditions is always eligible.
func Eligible(item Item, answers Answers, tripDurationDays int) bool {
	c := item.Conditions
	if c == nil {
		return true
	}

	if c.Temperature != nil {
		// The item's stated range must cover the traveller's declared range.
		if c.Temperature.Min != nil && answers.Temperature.Min < *c.Temperature.Min {
			return false
		}
		if c.Temperature.Max != nil && answers.Temperature.Max > *c.Temperature.Max {
			return false
		}
	}

	if len(c.Activities) > 0 && !intersects(c.Activities, answers.Activities) {
		return false
	}

	if len(c.Accommodation) > 0 && !intersects(c.Accommodation, answers.Accommodation) {
		return false
	}

	if c.Duration != nil {
		if c.Duration.Min != nil && tripDurationDays < *c.Duration.Min {
			return false
		}
		if c.Duration.Max != nil && tripDurationDays > *c.Duration.Max {
			return false
		}
	}

	if c.Swimming != nil && *c.Swimming != answers.Swimming {
		return false
	}

	if len(c.SpecialEvents) > 0 && !intersects(c.SpecialEvents, answers.SpecialEvents) {
		return false
	}

	if len(c.Eyewear) > 0 && !intersects(c.Eyewear, answers.Eyewear) {
		return false
	}

	if len(c.Technology) > 0 && !intersects(c.Technology, answers.Technology) {
		return false
	}

	if len(c.Medical) > 0 && !intersects(c.Medical, answers.Medical) {
		return false
	}

	return true
}

// temperatureEligible checks only the temperature clause. The resolver uses it
// to gate band items before merge so a failing band item cannot clobber a
// same-identifier item pulled in by an earlier axis.
func temperatureEligible(item Item, r TemperatureRange) bool {
	if item.Conditions == nil || item.Conditions.Temperature == nil {
		return true
	}
	t := item.Conditions.Temperature
	if t.Min != nil && r.Min < *t.Min {
		return false
	}
	if t.Max != nil && r.Max > *t.Max {
		return false
	}
	return true
}

func intersects(required, selected []string) bool {
	for _, r := range required {
		for _, s := range selected {
			if r == s {
				return true
			}
		}
	}
	return false
}
