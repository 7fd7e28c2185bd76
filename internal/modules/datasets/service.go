package datasets

import (
	"github.com/rs/zerolog"
)

// Service exposes dataset listing and metadata queries.
type Service struct {
	repo  *Repository
	cache *Cache
	log   zerolog.Logger
}

// NewService creates a new dataset service
func NewService(repo *Repository, cache *Cache, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("service", "datasets").Logger(),
	}
}

// ListAll returns summary info for every available dataset.
func (s *Service) ListAll() (*ListResponse, error) {
	infos, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	return &ListResponse{Datasets: infos, TotalCount: len(infos)}, nil
}

// Metadata returns detailed metadata for one dataset, including the
// available expiries and strikes used to populate strategy forms.
func (s *Service) Metadata(name string) (*MetadataResponse, error) {
	ds, err := s.repo.Load(name)
	if err != nil {
		return nil, err
	}

	index, err := s.cache.IndexFor(name)
	if err != nil {
		return nil, err
	}

	return &MetadataResponse{
		Name:              ds.Metadata.DatasetName,
		DateRange:         ds.Metadata.DateRange,
		AvailableExpiries: index.AvailableExpiries(),
		AvailableStrikes:  index.StrikesByExpiry(),
		RecordCount:       ds.Metadata.RecordCount,
	}, nil
}
