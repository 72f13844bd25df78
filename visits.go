package main

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vladmesh/personal-site/internal/metrics"
)

var untrackedPrefixes = []string{"/static/", "/images/", "/cv/", "/favicon", "/health", "/metrics"}

// visitCounter counts page views per route. Assets are skipped and the DNT
// header is respected. Nothing about the visitor is recorded.
func visitCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		// Only count routed pages that rendered, not redirects or 404s.
		if route := c.FullPath(); route != "" && c.Writer.Status() < 300 {
			metrics.PageViewed(route)
		}
	}
}
