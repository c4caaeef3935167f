package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arkanlabs/newsletter-api/internal/domain/repository"
	"github.com/arkanlabs/newsletter-api/internal/domain/valueobject"
	"github.com/arkanlabs/newsletter-api/pkg/mailer"
)

// IssuePublisher enqueues email jobs for asynchronous delivery; implemented
// by helpers.RabbitPublisher.
type IssuePublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// NewsletterService fans a newsletter issue out to every confirmed
// subscriber by enqueueing one email job per recipient. The email worker
// drains the queue and talks to the provider.
type NewsletterService struct {
	Repo   repository.SubscriptionRepository
	Pub    IssuePublisher
	Logger *logrus.Logger
}

func NewNewsletterService(repo repository.SubscriptionRepository, pub IssuePublisher, logger *logrus.Logger) *NewsletterService {
	return &NewsletterService{Repo: repo, Pub: pub, Logger: logger}
}

// PublishIssue enqueues the issue for all confirmed subscribers and returns
// how many jobs were enqueued. Stored emails that no longer parse are logged
// and skipped rather than failing the whole issue.
func (s *NewsletterService) PublishIssue(ctx context.Context, title, html, text string) (int, error) {
	emails, err := s.Repo.ListConfirmedEmails(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	enqueued := 0
	for _, raw := range emails {
		email, err := valueobject.ParseSubscriberEmail(raw)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).Warn("skipping confirmed subscriber with invalid stored email")
			}
			continue
		}
		job := mailer.EmailJob{To: email.String(), Subject: title, HTML: html, Text: text}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			return enqueued, fmt.Errorf("%w: enqueue issue email: %w", ErrDelivery, err)
		}
		enqueued++
	}
	return enqueued, nil
}
