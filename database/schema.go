package database

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"app/models"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS inventory_analysis (
		id BIGSERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		category TEXT,
		season TEXT NOT NULL,
		current_stock INTEGER NOT NULL,
		predicted_demand INTEGER,
		recommendation TEXT,
		decision TEXT,
		price DOUBLE PRECISION,
		unit TEXT,
		optimal_level INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS chatbot_conversations (
		id BIGSERIAL PRIMARY KEY,
		user_message TEXT NOT NULL,
		bot_response TEXT NOT NULL,
		source TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_activity (
		id BIGSERIAL PRIMARY KEY,
		activity_type TEXT NOT NULL,
		description TEXT,
		details TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		category TEXT,
		current_price DOUBLE PRECISION,
		unit TEXT,
		historical_price_avg DOUBLE PRECISION,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT,
		password_hash TEXT,
		role TEXT DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// InitSchema creates all tables if they do not exist yet.
func InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema initialized")
	return nil
}

// SaveProduct inserts or updates one catalog entry, keyed by name.
func SaveProduct(ctx context.Context, p models.Product) error {
	query := `
		INSERT INTO products (name, category, current_price, unit, historical_price_avg, metadata, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			current_price = EXCLUDED.current_price,
			unit = EXCLUDED.unit,
			historical_price_avg = EXCLUDED.historical_price_avg,
			metadata = EXCLUDED.metadata,
			updated_at = NOW()
	`
	_, err := DB.Exec(ctx, query, p.Name, p.Category, p.CurrentPrice, p.Unit, p.HistoricalPriceAvg, p.Metadata)
	return err
}

// GetAllProducts returns the persisted catalog ordered by name.
func GetAllProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := DB.Query(ctx, `
		SELECT name, category, current_price, unit, historical_price_avg, metadata
		FROM products
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Name, &p.Category, &p.CurrentPrice, &p.Unit, &p.HistoricalPriceAvg, &p.Metadata); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// SeedProducts populates the products table from a JSON catalog file when the
// table is empty. A missing file is not an error; the catalog then lives in
// the file only.
func SeedProducts(ctx context.Context, path string) error {
	var count int
	if err := DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("No product catalog file at %s, skipping seed", path)
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return err
	}

	for _, p := range products {
		if err := SaveProduct(ctx, p); err != nil {
			log.Printf("Failed to seed product %q: %v", p.Name, err)
		}
	}
	log.Printf("Seeded %d products from %s", len(products), path)
	return nil
}
