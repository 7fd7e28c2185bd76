// Package datasets owns dataset storage: directory scanning, JSON
// loading and the option index cache built on top of it.
package datasets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"optionslab/internal/domain"
)

// Repository reads dataset files from a data directory. Datasets are
// stored as <name>.json files containing metadata plus the flat record
// list.
type Repository struct {
	dataDir string
	log     zerolog.Logger
}

// NewRepository creates a new dataset repository
func NewRepository(dataDir string, log zerolog.Logger) *Repository {
	return &Repository{
		dataDir: dataDir,
		log:     log.With().Str("repo", "datasets").Logger(),
	}
}

// List scans the data directory and returns summary info for every
// readable dataset. Corrupt or unreadable files are skipped with a
// warning so one bad file cannot take down the whole listing.
func (r *Repository) List() ([]Info, error) {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", r.dataDir, err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		ds, err := r.readFile(filepath.Join(r.dataDir, entry.Name()))
		if err != nil {
			r.log.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unreadable dataset file")
			continue
		}

		info := Info{
			Name:        ds.Metadata.DatasetName,
			DateRange:   ds.Metadata.DateRange,
			RecordCount: ds.Metadata.RecordCount,
		}
		if info.Name == "" {
			info.Name = name
		}
		if info.RecordCount == 0 {
			info.RecordCount = len(ds.Data)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Load returns the full dataset with all historical records, or a
// DATASET_NOT_FOUND failure when no file with that name exists.
func (r *Repository) Load(name string) (*domain.Dataset, error) {
	path := r.path(name)

	if _, err := os.Stat(path); err != nil {
		return nil, domain.NewError(domain.CodeDatasetNotFound, "Dataset '%s' not found", name)
	}

	ds, err := r.readFile(path)
	if err != nil {
		r.log.Error().Err(err).Str("dataset", name).Msg("Failed to load dataset")
		return nil, domain.NewError(domain.CodeDatasetNotFound, "Dataset '%s' not found", name)
	}

	return ds, nil
}

// Exists is a quick stat check without loading the file.
func (r *Repository) Exists(name string) bool {
	_, err := os.Stat(r.path(name))
	return err == nil
}

// ModTime returns the dataset file's modification time, used by the
// index cache for invalidation.
func (r *Repository) ModTime(name string) (time.Time, error) {
	info, err := os.Stat(r.path(name))
	if err != nil {
		return time.Time{}, domain.NewError(domain.CodeDatasetNotFound, "Dataset '%s' not found", name)
	}
	return info.ModTime(), nil
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.dataDir, name+".json")
}

func (r *Repository) readFile(path string) (*domain.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &ds, nil
}
