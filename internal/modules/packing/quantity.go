// README: Quantity heuristics by category and item name.
package packing

import "strings"

// QuantityFor computes how many units of an item to pack for a trip of the
// given length. The rules are a fixed heuristic keyed on category and a
// case-insensitive name match, not a general optimizer.
func QuantityFor(item Item, tripDurationDays int) int {
	switch item.Category {
	case CategoryClothing:
		name := strings.ToLower(item.Name)
		if strings.Contains(name, "sock") {
			// Specialty socks come as a single pair; everyday socks scale
			// with the trip.
			if strings.Contains(name, "dress") || strings.Contains(name, "wool") || strings.Contains(name, "thermal") {
				return 1
			}
			return minInt(tripDurationDays+2, 10)
		}
		if strings.Contains(name, "underwear") {
			return minInt(tripDurationDays+2, 10)
		}
		if strings.Contains(name, "shirt") || strings.Contains(name, "top") {
			return minInt((tripDurationDays+1)/2+1, 10)
		}
		return item.Quantity
	case CategoryToiletries:
		return 1
	default:
		return item.Quantity
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
