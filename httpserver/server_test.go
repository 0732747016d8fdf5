package httpserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ruteri/fee-recipient-registry/api"
	"github.com/ruteri/fee-recipient-registry/api/handlers"
	"github.com/ruteri/fee-recipient-registry/interfaces"
	"github.com/ruteri/fee-recipient-registry/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pubkeyA  = "0x" + strings.Repeat("a", 96)
	pubkeyB  = "0x" + strings.Repeat("e", 96)
	addressA = "0x" + strings.Repeat("b", 38)
	addressB = "0x" + strings.Repeat("f", 38)
)

func testConfig() *api.HTTPServerConfig {
	return &api.HTTPServerConfig{
		ListenAddr:               api.DefaultListenAddr,
		Log:                      slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxInFlight:              api.MaxInFlightRequests,
		RequestTimeout:           api.RequestTimeout,
		DrainDuration:            time.Millisecond,
		GracefulShutdownDuration: time.Second,
		ReadTimeout:              time.Minute,
		WriteTimeout:             time.Minute,
	}
}

func newTestServer(t *testing.T, cfg *api.HTTPServerConfig, reg interfaces.Registry) http.Handler {
	t.Helper()
	srv, err := New(cfg, handlers.NewHandler(reg, cfg.Log), reg)
	require.NoError(t, err)
	return srv.srv.Handler
}

func request(t *testing.T, h http.Handler, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, reader))
	return w.Code, w.Body.String()
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ListenAddr = ""
	reg := registry.NewMemoryRegistry()
	_, err := New(cfg, handlers.NewHandler(reg, cfg.Log), reg)
	assert.Error(t, err)
}

func TestServer_Scenarios(t *testing.T) {
	h := newTestServer(t, testConfig(), registry.NewMemoryRegistry())

	// Unknown key
	status, _ := request(t, h, http.MethodGet, "/api/pubkey/"+pubkeyA, "")
	assert.Equal(t, http.StatusNotFound, status)

	// Write then read back lowercased
	status, body := request(t, h, http.MethodPost, "/api/pubkey/"+pubkeyA, "0x"+strings.ToUpper(addressA[2:]))
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, "Inserted", body)

	status, body = request(t, h, http.MethodGet, "/api/pubkey/"+pubkeyA, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, addressA, body)

	// Key of length 97
	status, body = request(t, h, http.MethodPost, "/api/pubkey/"+pubkeyA[:97], addressA)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "98")

	// Oversized body
	status, _ = request(t, h, http.MethodPost, "/api/pubkey/"+pubkeyB, strings.Repeat("0", api.MaxBodySize+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)

	// Listing after two distinct writes
	status, _ = request(t, h, http.MethodPost, "/api/pubkey/"+pubkeyB, addressB)
	require.Equal(t, http.StatusOK, status)

	status, body = request(t, h, http.MethodGet, "/api/mev", "")
	require.Equal(t, http.StatusOK, status)
	var listed map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	assert.Equal(t, map[string]string{pubkeyA: addressA, pubkeyB: addressB}, listed)

	// Healthcheck goes through the same pipeline
	status, body = request(t, h, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Application is live", body)
}

func TestServer_SlowRequestTimesOut(t *testing.T) {
	key, err := interfaces.NewValidatorKey(pubkeyA)
	require.NoError(t, err)
	address, err := interfaces.NewPayoutAddress(addressA)
	require.NoError(t, err)

	mockRegistry := new(registry.MockRegistry)
	mockRegistry.On("Len").Return(0).Maybe()
	mockRegistry.On("Get", key).After(300*time.Millisecond).Return(address, true)

	cfg := testConfig()
	cfg.RequestTimeout = 20 * time.Millisecond
	h := newTestServer(t, cfg, mockRegistry)

	status, body := request(t, h, http.MethodGet, "/api/pubkey/"+pubkeyA, "")
	assert.Equal(t, http.StatusRequestTimeout, status)
	assert.Equal(t, "request timed out\n", body)
}

func TestServer_DrainAndReadiness(t *testing.T) {
	h := newTestServer(t, testConfig(), registry.NewMemoryRegistry())

	status, body := request(t, h, http.MethodGet, "/livez", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"alive"}`, body)

	status, body = request(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready"}`, body)

	status, body = request(t, h, http.MethodGet, "/drain", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"draining"}`, body)

	_, body = request(t, h, http.MethodGet, "/drain", "")
	assert.JSONEq(t, `{"status":"already draining"}`, body)

	status, _ = request(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	_, body = request(t, h, http.MethodGet, "/undrain", "")
	assert.JSONEq(t, `{"status":"ready"}`, body)
	_, body = request(t, h, http.MethodGet, "/undrain", "")
	assert.JSONEq(t, `{"status":"already ready"}`, body)

	status, _ = request(t, h, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_PprofOnlyWhenEnabled(t *testing.T) {
	h := newTestServer(t, testConfig(), registry.NewMemoryRegistry())
	status, _ := request(t, h, http.MethodGet, "/debug/pprof/", "")
	assert.Equal(t, http.StatusNotFound, status)

	cfg := testConfig()
	cfg.EnablePprof = true
	h = newTestServer(t, cfg, registry.NewMemoryRegistry())
	status, _ = request(t, h, http.MethodGet, "/debug/pprof/", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_MockRegistryNotTouchedByHealthcheck(t *testing.T) {
	mockRegistry := new(registry.MockRegistry)
	h := newTestServer(t, testConfig(), mockRegistry)

	status, _ := request(t, h, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, status)
	mockRegistry.AssertNotCalled(t, "Get", mock.Anything)
	mockRegistry.AssertNotCalled(t, "Snapshot")
}
