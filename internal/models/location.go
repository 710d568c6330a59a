package models

// RawRecord is one untyped clinic object from the captured locations array.
type RawRecord map[string]any

// Location is a single UK clinic as written to the harvest CSV. Coordinates keep the
// exact text found in the source so no precision is lost on the way through.
type Location struct {
	Source        string `json:"source" csv:"source"`
	SourceIDs     string `json:"source_ids" csv:"source_ids"`
	Name          string `json:"name" csv:"name"`
	Postcode      string `json:"postcode" csv:"postcode"`
	StreetAddress string `json:"streetaddress" csv:"streetaddress"`
	Latitude      string `json:"loc_lat" csv:"loc_lat"`
	Longitude     string `json:"loc_long" csv:"loc_long"`
	Website       string `json:"website" csv:"website"`
	Phone         string `json:"phone" csv:"phone"`
}

// CSVHeader lists the Location columns in declaration order.
var CSVHeader = []string{
	"source",
	"source_ids",
	"name",
	"postcode",
	"streetaddress",
	"loc_lat",
	"loc_long",
	"website",
	"phone",
}

// Row returns the location's fields in CSVHeader order.
func (l Location) Row() []string {
	return []string{
		l.Source,
		l.SourceIDs,
		l.Name,
		l.Postcode,
		l.StreetAddress,
		l.Latitude,
		l.Longitude,
		l.Website,
		l.Phone,
	}
}

// LocationFromRow is the inverse of Row. Short rows leave trailing fields empty.
func LocationFromRow(row []string) Location {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Location{
		Source:        get(0),
		SourceIDs:     get(1),
		Name:          get(2),
		Postcode:      get(3),
		StreetAddress: get(4),
		Latitude:      get(5),
		Longitude:     get(6),
		Website:       get(7),
		Phone:         get(8),
	}
}
