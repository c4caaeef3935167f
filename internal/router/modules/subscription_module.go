package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkanlabs/newsletter-api/internal/container"
	handlers "github.com/arkanlabs/newsletter-api/internal/interface/http"
	"github.com/arkanlabs/newsletter-api/internal/interface/middleware"
)

// SubscriptionModule wires the public double-opt-in routes:
// POST /subscriptions and GET /subscriptions/confirm.
type SubscriptionModule struct {
	Handler *handlers.SubscriptionHandler
}

func NewSubscriptionModule(h *handlers.SubscriptionHandler) *SubscriptionModule {
	return &SubscriptionModule{Handler: h}
}

func (m *SubscriptionModule) Register(rg *gin.RouterGroup) {
	// The signup form is the abuse-prone surface; keep it on a tight per-IP limit.
	subscribeLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	confirmLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/subscriptions", subscribeLimiter, m.Handler.Subscribe)
	rg.GET("/subscriptions/confirm", confirmLimiter, m.Handler.Confirm)
}
