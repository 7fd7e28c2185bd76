package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionslab/internal/domain"
	"optionslab/internal/modules/backtest"
	"optionslab/internal/modules/datasets"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	dir := t.TempDir()
	ds := domain.Dataset{
		Metadata: domain.DatasetMetadata{DatasetName: "spx_2024", RecordCount: 2},
		Data: []domain.OptionRecord{
			{Date: "2024-01-02", Underlying: 4800, Expiry: "2024-01-03", Strike: 4800, Type: domain.Call, MidPrice: 10},
			{Date: "2024-01-03", Underlying: 4850, Expiry: "2024-01-03", Strike: 4800, Type: domain.Call, MidPrice: 48},
		},
	}
	raw, err := json.Marshal(ds)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spx_2024.json"), raw, 0o644))

	repo := datasets.NewRepository(dir, zerolog.Nop())
	service := backtest.NewService(repo, datasets.NewCache(repo, zerolog.Nop()), zerolog.Nop())

	r := chi.NewRouter()
	NewHandler(service, zerolog.Nop()).RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidateStrategy(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/strategy/validate", `{
		"dataset_name": "spx_2024",
		"option_type": "call",
		"strike": 4800,
		"expiry": "2024-01-03",
		"position_direction": "buy",
		"quantity": 1
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp backtest.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	require.NotNil(t, resp.EntryPrice)
	assert.Equal(t, 10.0, *resp.EntryPrice)
}

func TestHandleValidateStrategy_BadPayload(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"bad option type", `{"dataset_name":"spx_2024","option_type":"straddle","strike":4800,"expiry":"2024-01-03","position_direction":"buy","quantity":1}`},
		{"zero quantity", `{"dataset_name":"spx_2024","option_type":"call","strike":4800,"expiry":"2024-01-03","position_direction":"buy","quantity":0}`},
		{"bad expiry format", `{"dataset_name":"spx_2024","option_type":"call","strike":4800,"expiry":"03-01-2024","position_direction":"buy","quantity":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, router, "/strategy/validate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleRunBacktest(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/backtest/run", `{
		"strategy": {
			"dataset_name": "spx_2024",
			"option_type": "call",
			"strike": 4800,
			"expiry": "2024-01-03",
			"position_direction": "buy",
			"quantity": 1
		},
		"date_range": {"start_date": "2024-01-01", "end_date": "2024-01-31"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp backtest.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.Results)
	// Settlement: intrinsic = 4850-4800 = 50, pnl = (50-10)*100.
	assert.Equal(t, 4000.00, resp.Results.FinalPnL)
	assert.True(t, resp.Results.PositionClosed)
}

func TestHandleRunBacktest_DatasetMissingIsOKWithErrorPayload(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/backtest/run", `{
		"strategy": {
			"dataset_name": "nope",
			"option_type": "call",
			"strike": 4800,
			"expiry": "2024-01-03",
			"position_direction": "buy",
			"quantity": 1
		},
		"date_range": {"start_date": "2024-01-01", "end_date": "2024-01-31"}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp backtest.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, string(domain.CodeDatasetNotFound), resp.ErrorCode)
}

func TestHandleRunBacktest_BadDateRange(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/backtest/run", `{
		"strategy": {
			"dataset_name": "spx_2024",
			"option_type": "call",
			"strike": 4800,
			"expiry": "2024-01-03",
			"position_direction": "buy",
			"quantity": 1
		},
		"date_range": {"start_date": "January 1st", "end_date": "2024-01-31"}
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
