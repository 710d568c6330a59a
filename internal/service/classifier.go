package service

import (
	"strings"

	"clinic-harvester/internal/geo"
	"clinic-harvester/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verdict is the outcome of classifying one raw record.
type Verdict int

const (
	Admitted Verdict = iota
	RejectedOutsideUK
	RejectedDenylisted
)

func (v Verdict) String() string {
	switch v {
	case Admitted:
		return "admitted"
	case RejectedOutsideUK:
		return models.ReasonOutsideUK
	case RejectedDenylisted:
		return models.ReasonDenylisted
	default:
		return "unknown"
	}
}

// Classifier turns raw clinic records into UK locations.
//
// A record is admitted when its address carries a UK postcode, or when it has no
// postcode but both coordinates fall in the UK bounding box and the address names none
// of the deny-listed places. The deny list only patches known bounding-box false
// positives; other non-UK places inside the box still get through.
type Classifier struct {
	source   string
	denyList []string
}

// NewClassifier creates a classifier tagging locations with source
func NewClassifier(source string, denyList []string) *Classifier {
	lower := cases.Lower(language.Und)
	terms := make([]string, 0, len(denyList))
	for _, term := range denyList {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, lower.String(term))
		}
	}
	return &Classifier{source: source, denyList: terms}
}

// Classify normalizes raw and decides whether it is a UK location. The returned
// Location is only meaningful when the verdict is Admitted.
func (c *Classifier) Classify(raw models.RawRecord) (models.Location, Verdict) {
	title := NormalizeWhitespace(stringValue(raw["title"]))

	m := nestedObject(raw, "map")
	address := NormalizeWhitespace(stringValue(m["address"]))
	latRaw := strings.TrimSpace(stringValue(m["lat"]))
	lonRaw := strings.TrimSpace(stringValue(m["lng"]))

	postcode := ExtractPostcode(address)

	if postcode == "" {
		lat, latOK := geo.ParseCoordinate(latRaw)
		lon, lonOK := geo.ParseCoordinate(lonRaw)
		if !latOK || !lonOK || !geo.InUKBoundingBox(lat, lon) {
			return models.Location{}, RejectedOutsideUK
		}
		if c.denylisted(address) {
			return models.Location{}, RejectedDenylisted
		}
	}

	return models.Location{
		Source:        c.source,
		SourceIDs:     StableID(title, postcode, latRaw, lonRaw),
		Name:          title,
		Postcode:      postcode,
		StreetAddress: address,
		Latitude:      latRaw,
		Longitude:     lonRaw,
		Website:       PickFirst(raw, websiteFields),
		Phone:         PickFirst(raw, phoneFields),
	}, Admitted
}

func (c *Classifier) denylisted(address string) bool {
	addr := cases.Lower(language.Und).String(address)
	for _, term := range c.denyList {
		if strings.Contains(addr, term) {
			return true
		}
	}
	return false
}
