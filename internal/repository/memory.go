package repository

import (
	"context"
	"math"
	"strings"

	"clinic-harvester/internal/geo"
	"clinic-harvester/internal/models"

	"golang.org/x/text/cases"
)

// searchLimit caps text search results.
const searchLimit = 10

type indexedLocation struct {
	loc      models.Location
	haystack string
	postcode string
	lat, lon float64
	hasCoord bool
}

// MemoryRepository answers lookups over a harvested location set held in memory.
// It is read-only after construction and safe for concurrent use.
type MemoryRepository struct {
	items []indexedLocation
}

// NewMemoryRepository indexes locations, keeping their order
func NewMemoryRepository(locations []models.Location) *MemoryRepository {
	fold := cases.Fold()
	items := make([]indexedLocation, 0, len(locations))
	for _, loc := range locations {
		item := indexedLocation{
			loc:      loc,
			haystack: fold.String(loc.Name + "\n" + loc.StreetAddress + "\n" + loc.Postcode),
			postcode: compactPostcode(loc.Postcode),
		}
		lat, latOK := geo.ParseCoordinate(loc.Latitude)
		lon, lonOK := geo.ParseCoordinate(loc.Longitude)
		if latOK && lonOK {
			item.lat, item.lon, item.hasCoord = lat, lon, true
		}
		items = append(items, item)
	}
	return &MemoryRepository{items: items}
}

// Count returns the number of indexed locations.
func (r *MemoryRepository) Count() int {
	return len(r.items)
}

// SearchLocationsByText performs a caseless substring search over name, address and postcode
func (r *MemoryRepository) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	needle := cases.Fold().String(strings.TrimSpace(query))

	locations := []models.Location{}
	for _, item := range r.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.Contains(item.haystack, needle) {
			locations = append(locations, item.loc)
			if len(locations) == searchLimit {
				break
			}
		}
	}
	return locations, nil
}

// FindByPostcode returns locations whose postcode matches ignoring case and spacing
func (r *MemoryRepository) FindByPostcode(ctx context.Context, postcode string) ([]models.Location, error) {
	want := compactPostcode(postcode)

	locations := []models.Location{}
	if want == "" {
		return locations, nil
	}
	for _, item := range r.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if item.postcode == want {
			locations = append(locations, item.loc)
		}
	}
	return locations, nil
}

// FindNearestLocation returns the closest location within maxMeters, or nil when none is
func (r *MemoryRepository) FindNearestLocation(ctx context.Context, lat, lon, maxMeters float64) (*models.Location, error) {
	var nearest *models.Location
	best := math.Inf(1)

	for i := range r.items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := &r.items[i]
		if !item.hasCoord {
			continue
		}
		d := geo.DistanceMeters(lat, lon, item.lat, item.lon)
		if d <= maxMeters && d < best {
			best = d
			loc := item.loc
			nearest = &loc
		}
	}
	return nearest, nil
}

func compactPostcode(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
