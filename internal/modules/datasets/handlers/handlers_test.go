package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionslab/internal/domain"
	"optionslab/internal/modules/datasets"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	dir := t.TempDir()
	ds := domain.Dataset{
		Metadata: domain.DatasetMetadata{
			DatasetName: "spx_2024",
			DateRange:   map[string]string{"start": "2024-01-02", "end": "2024-01-03"},
			RecordCount: 2,
		},
		Data: []domain.OptionRecord{
			{Date: "2024-01-02", Underlying: 4800, Expiry: "2024-01-05", Strike: 4800, Type: domain.Call, MidPrice: 10},
			{Date: "2024-01-03", Underlying: 4850, Expiry: "2024-01-05", Strike: 4900, Type: domain.Put, MidPrice: 70},
		},
	}
	raw, err := json.Marshal(ds)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spx_2024.json"), raw, 0o644))

	repo := datasets.NewRepository(dir, zerolog.Nop())
	service := datasets.NewService(repo, datasets.NewCache(repo, zerolog.Nop()), zerolog.Nop())

	r := chi.NewRouter()
	NewHandler(service, zerolog.Nop()).RegisterRoutes(r)
	return r
}

func get(t *testing.T, router chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleList(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/datasets/list")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp datasets.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Datasets, 1)
	assert.Equal(t, "spx_2024", resp.Datasets[0].Name)
}

func TestHandleMetadata(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/datasets/spx_2024/metadata")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp datasets.MetadataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "spx_2024", resp.Name)
	assert.Equal(t, []string{"2024-01-05"}, resp.AvailableExpiries)
	assert.ElementsMatch(t, []float64{4800, 4900}, resp.AvailableStrikes["2024-01-05"])
}

func TestHandleMetadata_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/datasets/nope/metadata")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, string(domain.CodeDatasetNotFound), body["error_code"])
}
