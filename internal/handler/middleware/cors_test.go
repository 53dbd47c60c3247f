//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/handler/middleware"
	"github.com/Fabri-com/esteticas/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/services", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsConfig(origins ...string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Retry-After"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		cfg             config.CORSConfig
		origin          string
		wantStatus      int
		wantAllowOrigin string
		wantCredentials string
	}{
		{
			name:            "listed origin",
			cfg:             corsConfig("https://turnos.esteticas.test"),
			origin:          "https://turnos.esteticas.test",
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "https://turnos.esteticas.test",
			wantCredentials: "true",
		},
		{
			name:       "unlisted origin",
			cfg:        corsConfig("https://turnos.esteticas.test"),
			origin:     "https://evil.test",
			wantStatus: http.StatusForbidden,
		},
		{
			name:            "wildcard disables credentials",
			cfg:             corsConfig("*"),
			origin:          "https://anywhere.test",
			wantStatus:      http.StatusOK,
			wantAllowOrigin: "*",
		},
		{
			name:       "no origins configured",
			cfg:        corsConfig(),
			origin:     "https://turnos.esteticas.test",
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank origin entries ignored",
			cfg:        corsConfig("", " "),
			origin:     "https://turnos.esteticas.test",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			corsRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestCORS_TestConfigBuildsMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().CORS
	assert.NotEmpty(t, cfg.AllowOrigins)

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.Header.Set("Origin", cfg.AllowOrigins[0])
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { corsRouter(cfg).ServeHTTP(w, req) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, cfg.AllowOrigins[0], w.Header().Get("Access-Control-Allow-Origin"))
}
