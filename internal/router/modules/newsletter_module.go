package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkanlabs/newsletter-api/internal/container"
	handlers "github.com/arkanlabs/newsletter-api/internal/interface/http"
	"github.com/arkanlabs/newsletter-api/internal/interface/middleware"
)

// NewsletterModule wires the issue-publishing endpoint. Requests from
// private networks bypass the limiter so internal tooling can publish.
type NewsletterModule struct {
	Handler *handlers.NewsletterHandler
}

func NewNewsletterModule(h *handlers.NewsletterHandler) *NewsletterModule {
	return &NewsletterModule{Handler: h}
}

func (m *NewsletterModule) Register(rg *gin.RouterGroup) {
	publishLimiter := middleware.RateLimit(
		container.GetRedis(), 10, time.Minute,
		middleware.KeyByIPAndPath(), middleware.AllowPrivateIP(),
	)
	rg.POST("/newsletters", publishLimiter, m.Handler.Publish)
}
