package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"clinic-harvester/internal/models"
)

// ErrSourceMissing is returned when the captured locations array is not on disk.
var ErrSourceMissing = errors.New("repository: locations source file missing")

// JSONSource reads the captured clinic array from a file.
type JSONSource struct {
	path string
}

// NewJSONSource creates a source reading the JSON array at path
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Path returns the file the source reads.
func (s *JSONSource) Path() string {
	return s.path
}

// LoadRecords parses the top-level array and returns its object elements together with
// the number of elements that were not objects.
func (s *JSONSource) LoadRecords(ctx context.Context) ([]models.RawRecord, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			page := filepath.Join(filepath.Dir(s.path), "find_clinics.html")
			return nil, 0, fmt.Errorf("%w: missing %s. Recreate it from %s first", ErrSourceMissing, s.path, page)
		}
		return nil, 0, fmt.Errorf("repository: failed to open source: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	// Keep coordinate literals exactly as captured.
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to parse %s as a JSON array: %w", s.path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	records := make([]models.RawRecord, 0, len(items))
	skipped := 0
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		records = append(records, models.RawRecord(obj))
	}

	return records, skipped, nil
}
