package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arkanlabs/newsletter-api/internal/domain/entity"
	"github.com/arkanlabs/newsletter-api/internal/domain/repository"
	"github.com/arkanlabs/newsletter-api/internal/domain/valueobject"
)

var (
	// ErrInvalidSubscriber wraps validation failures of the submitted form fields.
	ErrInvalidSubscriber = errors.New("invalid subscriber details")
	// ErrPersistence wraps store failures, duplicates included.
	ErrPersistence = errors.New("subscription could not be persisted")
	// ErrDelivery wraps confirmation email failures. The subscriber is
	// already durable when this is returned.
	ErrDelivery = errors.New("confirmation email could not be delivered")
	// ErrTokenNotFound is returned when a confirmation token is unknown.
	ErrTokenNotFound = errors.New("subscription token not found")
)

// EmailNotifier is the outbound email capability; implemented by
// mailer.Client and by test doubles.
type EmailNotifier interface {
	Send(ctx context.Context, recipient, subject, html, text string) error
}

// SubscriptionService orchestrates the double-opt-in lifecycle:
// validate -> persist (one transaction) -> email a confirmation link, and
// separately resolve confirmation tokens.
type SubscriptionService struct {
	Repo     repository.SubscriptionRepository
	Notifier EmailNotifier
	BaseURL  string
	Logger   *logrus.Logger
}

func NewSubscriptionService(repo repository.SubscriptionRepository, notifier EmailNotifier, baseURL string, logger *logrus.Logger) *SubscriptionService {
	return &SubscriptionService{Repo: repo, Notifier: notifier, BaseURL: baseURL, Logger: logger}
}

// Subscribe validates the raw form fields, persists a pending subscriber
// with its confirmation token in one transaction, and then emails the
// confirmation link. Persistence commits strictly before the email is
// dispatched; if delivery fails the subscriber stays pending and can be
// confirmed later by a resent link, so the error surfaces without rollback.
func (s *SubscriptionService) Subscribe(ctx context.Context, rawName, rawEmail string) error {
	name, err := valueobject.ParseSubscriberName(rawName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSubscriber, err)
	}
	email, err := valueobject.ParseSubscriberEmail(rawEmail)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSubscriber, err)
	}

	id, token, err := s.Repo.CreatePendingSubscriber(ctx, entity.NewSubscriber{Name: name, Email: email})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := s.sendConfirmationEmail(ctx, email.String(), token); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("subscriber_id", id).
				Warn("confirmation email failed; subscriber remains pending")
		}
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if s.Logger != nil {
		s.Logger.WithField("subscriber_id", id).Info("new subscriber pending confirmation")
	}
	return nil
}

// Confirm transitions the subscriber referenced by token to confirmed.
func (s *SubscriptionService) Confirm(ctx context.Context, token string) error {
	err := s.Repo.ConfirmSubscriber(ctx, token)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrUnknownToken) {
		return fmt.Errorf("%w: %w", ErrTokenNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func (s *SubscriptionService) sendConfirmationEmail(ctx context.Context, recipient, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.BaseURL, token)
	html := fmt.Sprintf(
		"Welcome to our newsletter!<br />Click <a href=\"%s\">here</a> to confirm your subscription.",
		link,
	)
	text := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
		link,
	)
	return s.Notifier.Send(ctx, recipient, "Welcome!", html, text)
}
