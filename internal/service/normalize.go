package service

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"clinic-harvester/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UK outward code, optional space, inward code. Case-insensitive; first match wins.
var rePostcode = regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2})\b`)

// Alias fields in priority order.
var (
	websiteFields = []string{"website", "url", "link"}
	phoneFields   = []string{"phone", "tel", "telephone"}
)

// NormalizeWhitespace collapses whitespace runs to one space and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractPostcode returns the first UK postcode in addr, upper-cased, or "".
func ExtractPostcode(addr string) string {
	m := rePostcode.FindStringSubmatch(addr)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

// StableID derives the 16 hex character dedup key of a location.
func StableID(name, postcode, lat, lon string) string {
	key := cases.Lower(language.Und).String(name) + "|" + strings.ToUpper(postcode) + "|" + lat + "|" + lon
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}

// PickFirst returns the first non-empty trimmed value among keys.
func PickFirst(obj map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(stringValue(v)); s != "" {
			return s
		}
	}
	return ""
}

// stringValue renders a decoded JSON scalar as text. Objects and arrays become "".
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool, float64, int, int64:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

// nestedObject returns obj[key] when it is an object, otherwise an empty one.
func nestedObject(obj models.RawRecord, key string) map[string]any {
	if m, ok := obj[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
