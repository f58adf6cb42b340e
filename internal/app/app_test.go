package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadcli/internal/config"
	"leadcli/internal/dataset"
	apperrors "leadcli/internal/errors"
	"leadcli/internal/infrastructure"
	"leadcli/internal/shared/testutil"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.ShutdownTimeout = 5 * time.Second
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()

	logger, _ := testutil.NewTestLogger(t)
	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, "test", logger)
	require.NoError(t, err)

	app, err := NewApplication(cfg, dataset.Embedded(), logger, providers)
	require.NoError(t, err)
	return app
}

func serve(app *Application, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewApplication_RequiresConfig(t *testing.T) {
	_, err := NewApplication(nil, dataset.Embedded(), nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestNewApplication_RequiresSource(t *testing.T) {
	_, err := NewApplication(testConfig(), nil, nil, nil)
	require.Error(t, err)
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := serve(app, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_Report(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := serve(app, http.MethodGet, "/api/report?format=text")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Max lead is Sussex Vo-Tech: 58.666666666666664\n")

	rec = serve(app, http.MethodGet, "/api/districts/max")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"district":"Sussex Vo-Tech"`)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	app := newTestApp(t, testConfig())

	rec := serve(app, http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apperrors.TypeNotFound)

	rec = serve(app, http.MethodPost, "/api/report")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	app := newTestApp(t, testConfig())

	require.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/api/report").Code)

	rec := serve(app, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lead_reports_generated_total")
	assert.Contains(t, rec.Body.String(), "lead_http_requests_total")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Telemetry.MetricExporter = "none"
	app := newTestApp(t, cfg)

	assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/metrics").Code)
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit.RPS = 0.01
	cfg.Server.RateLimit.Burst = 1
	app := newTestApp(t, cfg)

	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/api/health").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(app, http.MethodGet, "/api/health").Code)

	// /metrics is outside the limited group.
	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/metrics").Code)
}

func TestApplication_ServeAndShutdown(t *testing.T) {
	app := newTestApp(t, testConfig())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/districts", ln.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"count":19`)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("application did not shut down")
	}
}
