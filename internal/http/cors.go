package http

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware returns nil when CORS is disabled or no origin is
// configured. Only needed when a webview talks to the agent directly, so
// non-http schemes such as capacitor:// are allowed.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) (gin.HandlerFunc, error) {
	if !enabled {
		return nil, nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("cors enabled but no origins configured, cors will not be applied")
		return nil, nil
	}

	corsConfig := cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		CustomSchemas: customSchemas(origins),
		MaxAge:        12 * time.Hour,
	}
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors configuration: %w", err)
	}

	logger.Info("cors enabled", slog.Any("origins", origins))

	return cors.New(corsConfig), nil
}

// parseOrigins splits a comma-separated origin list, dropping blanks.
func parseOrigins(originsStr string) []string {
	if strings.TrimSpace(originsStr) == "" {
		return nil
	}

	parts := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// customSchemas collects the "scheme://" prefixes of origins outside http
// and https.
func customSchemas(origins []string) []string {
	var schemas []string
	for _, origin := range origins {
		scheme, _, found := strings.Cut(origin, "://")
		if !found || scheme == "" || strings.EqualFold(scheme, "http") || strings.EqualFold(scheme, "https") {
			continue
		}
		if schema := scheme + "://"; !slices.Contains(schemas, schema) {
			schemas = append(schemas, schema)
		}
	}
	return schemas
}
