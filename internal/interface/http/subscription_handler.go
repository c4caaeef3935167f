package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/arkanlabs/newsletter-api/internal/application"
)

// SubscriptionHandler binds the public subscription endpoints. Both return
// empty bodies: the status code carries the whole outcome.
type SubscriptionHandler struct {
	Service *application.SubscriptionService
	Logger  *logrus.Logger
}

func NewSubscriptionHandler(service *application.SubscriptionService, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{Service: service, Logger: logger}
}

type subscribeForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email" binding:"required"`
}

// Subscribe handles POST /subscriptions with form fields name and email.
// 200 on success, 400 on invalid input, 500 on persistence or delivery
// failure (the subscriber may still have been durably stored as pending).
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var form subscribeForm
	if err := c.ShouldBind(&form); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.Service.Subscribe(c.Request.Context(), form.Name, form.Email)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, application.ErrInvalidSubscriber):
		c.Status(http.StatusBadRequest)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("subscription failed")
		}
		c.Status(http.StatusInternalServerError)
	}
}

// Confirm handles GET /subscriptions/confirm?subscription_token=...
// Policy: a missing or empty parameter is 400, a well-formed but unknown
// token is 404.
func (h *SubscriptionHandler) Confirm(c *gin.Context) {
	token := c.Query("subscription_token")
	if token == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.Service.Confirm(c.Request.Context(), token)
	switch {
	case err == nil:
		c.Status(http.StatusOK)
	case errors.Is(err, application.ErrTokenNotFound):
		c.Status(http.StatusNotFound)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("confirmation failed")
		}
		c.Status(http.StatusInternalServerError)
	}
}
