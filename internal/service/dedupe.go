package service

import (
	"cmp"
	"slices"

	"clinic-harvester/internal/models"
)

// Dedupe collapses locations sharing SourceIDs. A later location replaces an earlier
// one but keeps the slot of the first occurrence, so the result order is deterministic.
// It returns the survivors and how many were dropped.
func Dedupe(locations []models.Location) ([]models.Location, int) {
	uniq := make(map[string]models.Location, len(locations))
	var order []string
	for _, loc := range locations {
		if _, seen := uniq[loc.SourceIDs]; !seen {
			order = append(order, loc.SourceIDs)
		}
		uniq[loc.SourceIDs] = loc
	}

	out := make([]models.Location, 0, len(order))
	for _, id := range order {
		out = append(out, uniq[id])
	}
	return out, len(locations) - len(out)
}

// SortLocations orders locations by postcode then name, byte-wise ascending.
func SortLocations(locations []models.Location) {
	slices.SortStableFunc(locations, func(a, b models.Location) int {
		if c := cmp.Compare(a.Postcode, b.Postcode); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
}
