package middleware

import (
	"log/slog"
	"slices"

	"storefront-cart/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// "*" cannot be combined with explicit origins or credentials
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	if !slices.Contains(corsCfg.AllowHeaders, OwnerHeader) {
		corsCfg.AllowHeaders = append(slices.Clone(corsCfg.AllowHeaders), OwnerHeader)
	}
	corsCfg.ExposeHeaders = append(slices.Clone(corsCfg.ExposeHeaders), RequestIDHeader)

	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAllOrigins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
