package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the menu tables used by the Postgres catalog source.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS menu_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	itemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			category_id INT NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			image VARCHAR(500),
			position INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES menu_categories(id)
		)
	`
	if _, err := pool.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
