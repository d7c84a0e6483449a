package repository

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"strategy-scanner/config"
	"strategy-scanner/internal/dto"
	"strategy-scanner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		ScanEngine: config.ScanEngine{BaseURL: baseURL, ScanPath: "/api/scan"},
	}
}

func TestScanEngineRepository_Forward(t *testing.T) {
	body := []byte(`{"symbols":["AAPL","msft",""],"market":"US","strategyName":"moving-average"}`)
	engineAnswer := `[{"symbol":"AAPL","buyCondition":true,"sellCondition":false}]`

	var gotBody []byte
	var gotMethod, gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(engineAnswer))
	}))
	defer srv.Close()

	repo := NewScanEngineRepository(newTestConfig(srv.URL), logger.Nop())
	relay, err := repo.Forward(context.Background(), body)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/scan", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, body, gotBody)

	assert.Equal(t, http.StatusOK, relay.StatusCode)
	assert.Equal(t, "application/json", relay.ContentType)
	assert.Equal(t, engineAnswer, string(relay.Body))
}

func TestScanEngineRepository_ForwardNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid strategy name"}`))
	}))
	defer srv.Close()

	repo := NewScanEngineRepository(newTestConfig(srv.URL), logger.Nop())
	relay, err := repo.Forward(context.Background(), []byte(`{"symbols":["AAPL"]}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, dto.ErrEngineStatus)

	var statusErr *dto.EngineStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)

	require.NotNil(t, relay)
	assert.Equal(t, http.StatusBadRequest, relay.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid strategy name"}`, string(relay.Body))
}

func TestScanEngineRepository_ForwardUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := NewScanEngineRepository(newTestConfig(url), logger.Nop())
	relay, err := repo.Forward(context.Background(), []byte(`{}`))

	assert.Nil(t, relay)
	assert.ErrorIs(t, err, dto.ErrEngineUnavailable)
}

func TestScanEngineRepository_Probe(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	repo := NewScanEngineRepository(newTestConfig(srv.URL), logger.Nop())

	assert.NoError(t, repo.Probe(context.Background()), "any HTTP answer counts as reachable")

	srv.Close()
	assert.ErrorIs(t, repo.Probe(context.Background()), dto.ErrEngineUnavailable)
}

func TestCountSymbols(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "three symbols", body: `{"symbols":["A","B",""]}`, want: 3},
		{name: "no symbols", body: `{"symbols":[]}`, want: 1},
		{name: "not json", body: `symbols=A`, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countSymbols([]byte(tt.body)))
		})
	}
}
