package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/arkanlabs/newsletter-api/config"
	"github.com/arkanlabs/newsletter-api/pkg/helpers"
)

// Seeds a pending and a confirmed subscriber for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	tokens := helpers.NewTokenIssuer()

	pendingID := uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, now(), 'pending')
		ON CONFLICT (email) DO NOTHING
	`, pendingID, "pending@example.com", "Pending Demo"); err != nil {
		log.Fatalf("failed to seed pending subscriber: %v", err)
	}
	token := tokens.Generate()
	if _, err := db.Exec(`
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		SELECT $1, id FROM subscriptions WHERE email = $2 AND status = 'pending'
		ON CONFLICT (subscription_token) DO NOTHING
	`, token, "pending@example.com"); err != nil {
		log.Fatalf("failed to seed token: %v", err)
	}
	fmt.Printf("seeded pending subscriber: email=pending@example.com token=%s\n", token)

	if _, err := db.Exec(`
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, now(), 'confirmed')
		ON CONFLICT (email) DO NOTHING
	`, uuid.NewString(), "confirmed@example.com", "Confirmed Demo"); err != nil {
		log.Fatalf("failed to seed confirmed subscriber: %v", err)
	}
	fmt.Println("seeded confirmed subscriber: email=confirmed@example.com")
}
