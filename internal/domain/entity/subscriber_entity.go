package entity

import (
	"time"

	"github.com/arkanlabs/newsletter-api/internal/domain/valueobject"
)

// SubscriberStatus is the double-opt-in state of a subscriber. The only
// transition is pending -> confirmed; it is never reversed.
type SubscriberStatus string

const (
	StatusPending   SubscriberStatus = "pending"
	StatusConfirmed SubscriberStatus = "confirmed"
)

// Subscriber is the persisted aggregate root for the subscription domain.
type Subscriber struct {
	ID           string
	Email        string
	Name         string
	SubscribedAt time.Time
	Status       SubscriberStatus
}

// NewSubscriber carries validated form input into the store. It is transient
// and consumed immediately by CreatePendingSubscriber.
type NewSubscriber struct {
	Name  valueobject.SubscriberName
	Email valueobject.SubscriberEmail
}

// SubscriptionToken links a confirmation token to exactly one subscriber.
// It is written in the same transaction as its subscriber row.
type SubscriptionToken struct {
	Token        string
	SubscriberID string
}
