package datasets

import (
	"github.com/rs/zerolog"
)

// RescanJob periodically re-scans the data directory and evicts cache
// entries whose backing file changed or disappeared.
type RescanJob struct {
	repo  *Repository
	cache *Cache
	log   zerolog.Logger
}

// NewRescanJob creates the dataset rescan job.
func NewRescanJob(repo *Repository, cache *Cache, log zerolog.Logger) *RescanJob {
	return &RescanJob{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("job", "dataset_rescan").Logger(),
	}
}

// Name implements scheduler.Job.
func (j *RescanJob) Name() string {
	return "dataset_rescan"
}

// Run implements scheduler.Job.
func (j *RescanJob) Run() error {
	infos, err := j.repo.List()
	if err != nil {
		return err
	}

	pruned := j.cache.Prune()

	j.log.Debug().
		Int("datasets", len(infos)).
		Int("pruned", pruned).
		Int("cached", j.cache.Len()).
		Msg("Dataset rescan complete")

	return nil
}
