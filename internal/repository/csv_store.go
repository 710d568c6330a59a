package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"clinic-harvester/internal/models"
)

// CSVStore reads and writes the harvested locations file.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store backed by the CSV file at path
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the CSV file location.
func (s *CSVStore) Path() string {
	return s.path
}

// WriteLocations replaces the file with a header and one row per location, in the
// order given. The parent directory is created when missing.
func (s *CSVStore) WriteLocations(ctx context.Context, locations []models.Location) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("repository: failed to create output directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("repository: failed to create %s: %w", s.path, err)
	}

	if err := writeLocations(ctx, f, locations); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("repository: failed to close %s: %w", s.path, err)
	}
	return nil
}

func writeLocations(ctx context.Context, w io.Writer, locations []models.Location) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(models.CSVHeader); err != nil {
		return fmt.Errorf("repository: failed to write header: %w", err)
	}
	for _, loc := range locations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(loc.Row()); err != nil {
			return fmt.Errorf("repository: failed to write row %s: %w", loc.SourceIDs, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("repository: failed to flush csv: %w", err)
	}
	return nil
}

// ReadLocations loads every row of the file. The header must match models.CSVHeader.
func (s *CSVStore) ReadLocations(ctx context.Context) ([]models.Location, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(models.CSVHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read header: %w", err)
	}
	if !slices.Equal(header, models.CSVHeader) {
		return nil, fmt.Errorf("repository: unexpected header %v", header)
	}

	var locations []models.Location
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("repository: failed to read record: %w", err)
		}
		locations = append(locations, models.LocationFromRow(row))
	}

	return locations, nil
}
