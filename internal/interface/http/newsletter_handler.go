package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/arkanlabs/newsletter-api/config"
	"github.com/arkanlabs/newsletter-api/internal/application"
	"github.com/arkanlabs/newsletter-api/pkg/response"
	"github.com/arkanlabs/newsletter-api/pkg/validation"
)

type NewsletterHandler struct {
	Service *application.NewsletterService
	Logger  *logrus.Logger
	Cfg     *config.Config
}

func NewNewsletterHandler(service *application.NewsletterService, logger *logrus.Logger, cfg *config.Config) *NewsletterHandler {
	return &NewsletterHandler{Service: service, Logger: logger, Cfg: cfg}
}

type publishIssueRequest struct {
	Title string `json:"title" binding:"required"`
	HTML  string `json:"html" binding:"required_without=Text"`
	Text  string `json:"text" binding:"required_without=HTML"`
}

// Publish enqueues a newsletter issue for every confirmed subscriber.
func (h *NewsletterHandler) Publish(c *gin.Context) {
	var req publishIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	// If sending disabled, short-circuit
	if h.Cfg != nil && !h.Cfg.MailSendEnabled {
		response.Success[any](c, http.StatusAccepted, map[string]any{"enqueued": 0, "disabled": true}, "email sending disabled")
		return
	}

	n, err := h.Service.PublishIssue(c.Request.Context(), req.Title, req.HTML, req.Text)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("enqueued", n).Error("newsletter issue publish failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to enqueue issue", nil)
		return
	}
	response.Success[any](c, http.StatusAccepted, map[string]any{"enqueued": n}, "newsletter issue enqueued")
}
