// README: List assembler and the top-level generation entry point.
package packing

import (
	"fmt"
	"sort"
	"time"
)

// Assemble filters the working set, computes quantities, and buckets the
// survivors by category. Every fixed category key is present in the result,
// possibly with an empty sequence. Items within a category are ordered by
// identifier so generation output is fully deterministic.
func Assemble(set WorkingSet, answers Answers, tripDurationDays int) PackingList {
	list := PackingList{Categories: make(map[Category][]Item, len(Categories))}
	for _, c := range Categories {
		list.Categories[c] = []Item{}
	}

	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		it := set[id]
		if !Eligible(it, answers, tripDurationDays) {
			continue
		}
		it.Quantity = QuantityFor(it, tripDurationDays)
		list.Categories[it.Category] = append(list.Categories[it.Category], it)
	}
	return list
}

// Generate runs the full pipeline: resolve candidates, filter, quantify,
// bucket. It is a pure synchronous computation over static catalog data and is
// safe to call concurrently. A negative trip duration is a contract violation
// and panics rather than producing a partial list.
func Generate(answers Answers, tripDurationDays int, origin, destination string) PackingList {
	if tripDurationDays < 0 {
		panic(fmt.Sprintf("packing: negative trip duration %d", tripDurationDays))
	}
	set := Resolve(answers, origin, destination)
	return Assemble(set, answers, tripDurationDays)
}

// DurationDays returns the whole-day trip length as the ceiling of the
// difference between start and end.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
