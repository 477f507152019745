package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pkgserver "github.com/jeonbyeongmin/canny-sub000/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	s := NewServer(&Config{Port: "8080", CorsOrigins: []string{"*"}})
	s.SetupHealthChecks(pkgserver.NewOkHealthChecker())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_CorsOrigins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", " https://a.example , https://b.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
}
