// Package server assembles the gin engines shared by both binaries.
package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Options configures NewEngine.
type Options struct {
	ServiceName string
	Production  bool
	Traced      bool
	Gzip        bool
	// LogSkipPaths are passed to LoggerMiddleware.
	LogSkipPaths []string
}

// DefaultLogSkipPaths keeps probes and assets out of the request log.
var DefaultLogSkipPaths = []string{"/health", "/api/health", "/metrics", "/favicon.ico", "/static/*", "/images/*"}

// NewEngine creates a gin engine with tracing, recovery, request logging and
// optional gzip, plus /health and /metrics.
func NewEngine(opts Options, logger *slog.Logger) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if opts.Traced {
		engine.Use(otelgin.Middleware(opts.ServiceName))
		logger.Info("otel_http_middleware_enabled", slog.String("service", opts.ServiceName))
	}
	engine.Use(gin.Recovery())

	skip := opts.LogSkipPaths
	if skip == nil {
		skip = DefaultLogSkipPaths
	}
	engine.Use(LoggerMiddleware(logger, skip...))

	if opts.Gzip {
		engine.Use(gzipMiddleware())
	}

	engine.GET("/health", Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return engine
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func gzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithCustomShouldCompressFn(shouldCompress))
}

// shouldCompress replaces the library's default check, so it must also
// honour Accept-Encoding and leave upgrades and event streams alone.
func shouldCompress(c *gin.Context) bool {
	req := c.Request
	if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") ||
		strings.Contains(req.Header.Get("Connection"), "Upgrade") ||
		strings.Contains(req.Header.Get("Accept"), "text/event-stream") {
		return false
	}

	path := req.URL.Path
	switch {
	case path == "/health", path == "/metrics":
		return false
	case strings.HasPrefix(path, "/cv/"), strings.HasSuffix(path, ".pdf"):
		return false
	default:
		return true
	}
}
