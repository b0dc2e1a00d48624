// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Connect opens a Postgres handle from DATABASE_URL, or assembles a DSN
// from the DB_* env vars when it is unset. The handle is returned to
// the caller; nothing is kept as package state.
func Connect() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		name := os.Getenv("DB_NAME")

		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			user, pass, host, port, name,
		)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return conn, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS customers (
		customer_id     VARCHAR(50) PRIMARY KEY,
		first_name      VARCHAR(100) NOT NULL,
		last_name       VARCHAR(100) NOT NULL,
		email           VARCHAR(255) NOT NULL,
		phone           VARCHAR(20),
		address         TEXT,
		date_of_birth   DATE,
		account_balance NUMERIC(15,2) NOT NULL DEFAULT 0,
		created_at      TIMESTAMP
	)
`

// EnsureSchema creates the customers table when it does not exist yet.
func EnsureSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	return err
}
