package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsedeck-server/internal/config"
	"pulsedeck-server/internal/core/widget"
	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
	"pulsedeck-server/internal/pkg"
	"pulsedeck-server/internal/storage/snapshot"
	"pulsedeck-server/internal/transport/websocket"
)

type fakeAuthService struct{}

func (fakeAuthService) Login(_ context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if req.Email != "admin@example.com" || req.Password != "correct-horse-battery" {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.AuthResponse{
		AccessToken: "token",
		User:        &domain.User{ID: 1, Email: req.Email},
	}, nil
}

func testRouter(t *testing.T, store *snapshot.MetricsStore, cfg *config.Config) http.Handler {
	t.Helper()

	hub := websocket.NewHub(logger.Nop())

	return NewRouter(cfg, &RouterDeps{
		WS:      websocket.NewHandler(hub, cfg, logger.Nop()),
		Metrics: NewMetricsHandler(store),
		Widgets: NewWidgetHandler(store, widget.NewService()),
		Auth:    NewAuthHandler(fakeAuthService{}, cfg),
	})
}

func testCfg() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
}

func authCookie(t *testing.T, cfg *config.Config) *http.Cookie {
	t.Helper()

	token, err := pkg.GenerateToken(1, "admin@example.com", cfg.JWTSecret, cfg.JWTExpiry)
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func TestHealth(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetricsRequiresAuth(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsRejectsBadToken(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsReturnsSnapshot(t *testing.T) {
	cfg := testCfg()
	store := snapshot.NewMetricsStore()
	store.Set(domain.Metrics{
		Network: domain.NetworkMetric{RxBytes: 1300, TxBytes: 2400, RxPerSec: 1000},
	})
	router := testRouter(t, store, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
	req.AddCookie(authCookie(t, cfg))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.Metrics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1300), resp.Data.Network.RxBytes)
	assert.InDelta(t, 1000, resp.Data.Network.RxPerSec, 1e-9)
}

func TestWidgetsReturnsBoard(t *testing.T) {
	cfg := testCfg()
	store := snapshot.NewMetricsStore()
	store.Set(domain.Metrics{
		Network: domain.NetworkMetric{RxPerSec: 1_000_000},
		System:  domain.SystemMetric{Hostname: "deck"},
	})
	router := testRouter(t, store, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/widgets", nil)
	req.AddCookie(authCookie(t, cfg))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.WidgetBoard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.0 MB/s", resp.Data.Network.Download)
	assert.Equal(t, "deck", resp.Data.System.Hostname)
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	body := `{"email":"admin@example.com","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginWrongCredentials(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	body := `{"email":"admin@example.com","password":"not-the-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginValidation(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	body := `{"email":"not-an-email","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")
}

func TestLoginMalformedBody(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	req := httptest.NewRequest(http.MethodOptions, "/api/metrics", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	router := testRouter(t, snapshot.NewMetricsStore(), testCfg())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
