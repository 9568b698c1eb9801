package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/designershaven/marketplace-api/config"
)

// Seeds two demo users and a product so the engagement endpoints have
// something to act on locally.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seedUser := func(email, username, code, name string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (email, username, user_code, name)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, email, username, code, name).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s username=%s\n", id, email, username)
		return id
	}

	seller := seedUser("ava@designershaven.dev", "ava.atelier", "DH-0001", "Ava Laurent")
	seedUser("ben@designershaven.dev", "ben.buyer", "DH-0002", "Ben Okafor")
	_ = seller

	var productID string
	if err := db.QueryRow(`
		INSERT INTO products (owner_email, title, description, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "ava@designershaven.dev", "Silk Slip Dress", "Bias-cut midi in ivory silk.", 18500).Scan(&productID); err != nil {
		log.Fatalf("failed to seed product: %v", err)
	}
	fmt.Printf("seeded product: id=%s\n", productID)
}
