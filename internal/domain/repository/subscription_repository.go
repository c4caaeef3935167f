package repository

import (
	"context"
	"errors"

	"github.com/arkanlabs/newsletter-api/internal/domain/entity"
)

var (
	// ErrDuplicateEmail is returned when the subscriber's email already exists.
	ErrDuplicateEmail = errors.New("email is already subscribed")
	// ErrUnknownToken is returned when a confirmation token does not exist.
	ErrUnknownToken = errors.New("unknown subscription token")
	// ErrUnavailable wraps transient persistence failures; callers may retry.
	ErrUnavailable = errors.New("subscription store unavailable")
)

// SubscriptionRepository defines the persistence operations of the
// subscription lifecycle. Implementations must make each method a single
// atomic unit of work: either everything it writes is durable or nothing is.
type SubscriptionRepository interface {
	// CreatePendingSubscriber inserts a pending subscriber together with a
	// fresh confirmation token in one transaction and returns both.
	CreatePendingSubscriber(ctx context.Context, ns entity.NewSubscriber) (id string, token string, err error)

	// ConfirmSubscriber resolves token and transitions the referenced
	// subscriber to confirmed. It is idempotent: confirming an already
	// confirmed subscriber succeeds without further effect.
	ConfirmSubscriber(ctx context.Context, token string) error

	// ListConfirmedEmails returns the email addresses of all confirmed
	// subscribers, for newsletter issue delivery.
	ListConfirmedEmails(ctx context.Context) ([]string, error)
}
