package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsPolicy is built once from the configured origins. An empty list or a
// "*" entry allows any origin.
type corsPolicy struct {
	any      bool
	fallback string
	origins  map[string]struct{}
}

func newCORSPolicy(allowed []string) corsPolicy {
	p := corsPolicy{any: len(allowed) == 0, origins: make(map[string]struct{}, len(allowed))}
	for _, origin := range allowed {
		if origin == "*" {
			p.any = true
			continue
		}
		if p.fallback == "" {
			p.fallback = origin
		}
		p.origins[strings.ToLower(origin)] = struct{}{}
	}
	return p
}

func (p corsPolicy) allowOrigin(origin string) string {
	if p.any {
		return "*"
	}
	if _, ok := p.origins[strings.ToLower(origin)]; ok && origin != "" {
		return origin
	}
	return p.fallback
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	policy := newCORSPolicy(allowed)
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", policy.allowOrigin(c.GetHeader("Origin")))
		if !policy.any {
			h.Add("Vary", "Origin")
		}
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		h.Set("Access-Control-Expose-Headers", requestIDHeader)

		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
