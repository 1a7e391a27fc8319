package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gatherly/gatherly/config"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// Seeds a demo user with one event they attend, for poking at the API
// locally. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", userID, username, password)

	eventName := "Gatherly launch party"
	var eventID string
	err = db.QueryRow(`
		SELECT id FROM events WHERE name = $1 AND creator_id = $2
	`, eventName, userID).Scan(&eventID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`
			INSERT INTO events (name, date, location, creator_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, eventName, "2026-09-30", "Rotterdam", userID).Scan(&eventID)
	}
	if err != nil {
		log.Fatalf("failed to seed event: %v", err)
	}
	fmt.Printf("seeded event: id=%s name=%q\n", eventID, eventName)

	if _, err := db.Exec(`
		INSERT INTO event_attendees (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`, userID, eventID); err != nil {
		log.Fatalf("failed to seed attendance: %v", err)
	}
	fmt.Println("seeded attendance for demo user (if not already)")
}
