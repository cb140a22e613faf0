package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rozgar-darpan/go-mgnrega-backend/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: "8080"},
		Upstream:  config.UpstreamConfig{BaseURL: "https://api.data.gov.in/resource/", ResourceID: "test-resource"},
		Cache:     config.CacheConfig{TTL: time.Hour},
		RateLimit: config.RateLimitConfig{Max: 100, Window: time.Minute},
		App:       config.AppConfig{Environment: "test", LogLevel: "info", Version: "test"},
	}
}

func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// Empty API key selects the deterministic mock provider.
	return BuildRouter(RouterDeps{
		ServiceName: "test-service",
		Config:      testConfig(),
		Log:         zap.NewNop().Sugar(),
		Redis:       rdb,
	})
}

func TestRouter_DistrictEndToEnd(t *testing.T) {
	r := buildTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/district/27", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		DistrictCode    string `json:"district_code"`
		DistrictName    string `json:"district_name"`
		StateName       string `json:"state_name"`
		PerformanceData struct {
			TotalWorkers      int64   `json:"total_workers"`
			ActiveWorkers     int64   `json:"active_workers"`
			WagesPaid         float64 `json:"wages_paid"`
			WorkDaysGenerated int64   `json:"work_days_generated"`
		} `json:"performance_data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "27", resp.DistrictCode)
	assert.Equal(t, "Patna", resp.DistrictName)
	assert.Equal(t, "Bihar", resp.StateName)
	assert.GreaterOrEqual(t, resp.PerformanceData.TotalWorkers, int64(0))
	assert.GreaterOrEqual(t, resp.PerformanceData.ActiveWorkers, int64(0))
	assert.GreaterOrEqual(t, resp.PerformanceData.WagesPaid, float64(0))
	assert.GreaterOrEqual(t, resp.PerformanceData.WorkDaysGenerated, int64(0))
}

func TestRouter_UnknownDistrict(t *testing.T) {
	r := buildTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/district/999", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"District not found"}`, rr.Body.String())
}

func TestRouter_SecurityHeadersOnEveryResponse(t *testing.T) {
	r := buildTestRouter(t)

	for _, path := range []string{"/health", "/api/districts", "/api/district/999"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, "SAMEORIGIN", rr.Header().Get("X-Frame-Options"), "path %s", path)
		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"), "path %s", path)
	}
}

func TestRouter_LocaleContent(t *testing.T) {
	r := buildTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/content/hi", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var content struct {
		Locale string `json:"locale"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &content))
	assert.Equal(t, "hi", content.Locale)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/content/fr", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_MetricsExposed(t *testing.T) {
	r := buildTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "mgnrega_")
}
