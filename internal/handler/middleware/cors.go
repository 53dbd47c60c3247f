package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/Fabri-com/esteticas/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// NewCORSMiddleware lets the public booking page call the API from another origin.
// A "*" origin opens the API to every site and turns credentials off.
// With no origins configured the API stays same-origin only.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	origins := slices.DeleteFunc(slices.Clone(cfg.AllowOrigins), func(o string) bool { return strings.TrimSpace(o) == "" })
	if len(origins) == 0 {
		slog.Warn("cors disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	if slices.Contains(origins, wildcardOrigin) {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}

	slog.Info("cors configured",
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"allow_origins", corsCfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
