package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/portify/portify-api/pkg/auth"
)

// Seeds a demo account so the public page has something to render.
// Reads DB_DSN, DEMO_EMAIL, DEMO_PASSWORD and DEMO_USERNAME from the env.
func main() {
	fmt.Println("seeding demo account...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	email := os.Getenv("DEMO_EMAIL")
	password := os.Getenv("DEMO_PASSWORD")
	username := os.Getenv("DEMO_USERNAME")
	if dsn == "" || email == "" || password == "" || username == "" {
		log.Fatal("DB_DSN, DEMO_EMAIL, DEMO_PASSWORD and DEMO_USERNAME are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	userID := uuid.New()
	userQuery := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = $3
		RETURNING id
	`
	if err := pool.QueryRow(context.Background(), userQuery, userID, email, hash).Scan(&userID); err != nil {
		log.Fatalf("cannot seed user: %v", err)
	}

	profileQuery := `
		INSERT INTO profiles (owner_id, username, full_name, is_public)
		VALUES ($1, $2, 'Demo User', TRUE)
		ON CONFLICT (owner_id) DO NOTHING
	`
	if _, err := pool.Exec(context.Background(), profileQuery, userID, username); err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	fmt.Printf("seeded demo account '%s' with username '%s'\n", email, username)
}
