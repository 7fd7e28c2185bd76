package datasets

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionslab/internal/domain"
)

func newTestService(t *testing.T, dir string) *Service {
	t.Helper()
	repo := NewRepository(dir, zerolog.Nop())
	return NewService(repo, NewCache(repo, zerolog.Nop()), zerolog.Nop())
}

func TestService_ListAll(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "spx_2024", sampleDataset("spx_2024"))
	svc := newTestService(t, dir)

	resp, err := svc.ListAll()
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Datasets, 1)
	assert.Equal(t, "spx_2024", resp.Datasets[0].Name)
}

func TestService_Metadata(t *testing.T) {
	dir := t.TempDir()
	ds := sampleDataset("spx_2024")
	ds.Data = append(ds.Data, domain.OptionRecord{
		Date: "2024-01-02", Underlying: 4800, Expiry: "2024-02-16",
		Strike: 4900, Type: domain.Put, MidPrice: 80,
	})
	ds.Metadata.RecordCount = 3
	writeDataset(t, dir, "spx_2024", ds)
	svc := newTestService(t, dir)

	meta, err := svc.Metadata("spx_2024")
	require.NoError(t, err)

	assert.Equal(t, "spx_2024", meta.Name)
	assert.Equal(t, 3, meta.RecordCount)
	assert.Equal(t, []string{"2024-01-05", "2024-02-16"}, meta.AvailableExpiries)
	assert.Equal(t, []float64{4800}, meta.AvailableStrikes["2024-01-05"])
	assert.Equal(t, []float64{4900}, meta.AvailableStrikes["2024-02-16"])
}

func TestService_MetadataMissing(t *testing.T) {
	svc := newTestService(t, t.TempDir())

	_, err := svc.Metadata("nope")
	require.Error(t, err)
	code, _ := domain.CodeOf(err)
	assert.Equal(t, domain.CodeDatasetNotFound, code)
}
