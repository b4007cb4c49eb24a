package handler

import (
	"fmt"

	"priyansh-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// StrictRoutes are the write endpoints held to the strict rate tier.
var StrictRoutes = []string{"POST /seed", "POST /checkout"}

// NewRouter wires the middleware chain in front of the API routes.
// Forwarding headers are honoured only from trustedProxies; with none,
// the client IP is the connection's remote address.
func NewRouter(h *Handler, limiter *middleware.RateLimiter, corsOrigins, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.CORS(corsOrigins),
	)
	if limiter != nil {
		r.Use(limiter.Middleware())
	}

	h.RegisterRoutes(r)
	return r, nil
}
