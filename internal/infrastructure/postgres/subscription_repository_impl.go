package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arkanlabs/newsletter-api/internal/domain/entity"
	"github.com/arkanlabs/newsletter-api/internal/domain/repository"
	"github.com/arkanlabs/newsletter-api/pkg/helpers"
)

// Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

type SubscriptionRepository struct {
	pool   *pgxpool.Pool
	tokens *helpers.TokenIssuer
}

func NewSubscriptionRepository(pool *pgxpool.Pool, tokens *helpers.TokenIssuer) *SubscriptionRepository {
	return &SubscriptionRepository{pool: pool, tokens: tokens}
}

// CreatePendingSubscriber inserts the subscriber row and its confirmation
// token in one transaction. A subscriber without a retrievable token is
// unconfirmable, so the two inserts are inseparable.
func (r *SubscriptionRepository) CreatePendingSubscriber(ctx context.Context, ns entity.NewSubscriber) (string, string, error) {
	id := uuid.NewString()
	token := r.tokens.Generate()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", "", fmt.Errorf("%w: begin: %v", repository.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)
	`, id, ns.Email.String(), ns.Name.String(), time.Now().UTC(), entity.StatusPending)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return "", "", repository.ErrDuplicateEmail
		}
		return "", "", fmt.Errorf("%w: insert subscriber: %v", repository.ErrUnavailable, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)
	`, token, id)
	if err != nil {
		return "", "", fmt.Errorf("%w: insert token: %v", repository.ErrUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", "", fmt.Errorf("%w: commit: %v", repository.ErrUnavailable, err)
	}
	return id, token, nil
}

// ConfirmSubscriber resolves the token and flips the subscriber to
// confirmed. The token row is locked for the duration of the transaction so
// concurrent confirmations with the same token serialize; the UPDATE is a
// no-op when the status is already confirmed, which keeps the operation
// idempotent.
func (r *SubscriptionRepository) ConfirmSubscriber(ctx context.Context, token string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", repository.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var subscriberID string
	err = tx.QueryRow(ctx, `
		SELECT subscriber_id FROM subscription_tokens
		WHERE subscription_token = $1
		FOR UPDATE
	`, token).Scan(&subscriberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrUnknownToken
		}
		return fmt.Errorf("%w: lookup token: %v", repository.ErrUnavailable, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE subscriptions SET status = $1 WHERE id = $2
	`, entity.StatusConfirmed, subscriberID)
	if err != nil {
		return fmt.Errorf("%w: update status: %v", repository.ErrUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (r *SubscriptionRepository) ListConfirmedEmails(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT email FROM subscriptions WHERE status = $1
	`, entity.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("%w: list confirmed: %v", repository.ErrUnavailable, err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", repository.ErrUnavailable, err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %v", repository.ErrUnavailable, err)
	}
	return emails, nil
}

var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
