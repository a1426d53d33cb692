package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/quotegen?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	return db
}

func setupCatalogSchema(t *testing.T, db *sql.DB) {
	ctx := context.Background()
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			specs VARCHAR(255) NOT NULL,
			min_order INT NOT NULL,
			price_min DOUBLE NOT NULL,
			price_max DOUBLE NOT NULL,
			description TEXT NOT NULL,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS containers (
			id VARCHAR(16) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			capacity INT NOT NULL,
			notes TEXT NOT NULL,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payment_methods (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS banks (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			account_name VARCHAR(255) NOT NULL,
			account_number VARCHAR(64) NOT NULL,
			swift VARCHAR(32) NOT NULL,
			address VARCHAR(255) NOT NULL,
			position INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS trade_terms (
			kind VARCHAR(16) NOT NULL,
			code VARCHAR(8) NOT NULL,
			position INT NOT NULL,
			PRIMARY KEY (kind, code)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("schema setup failed: %v", err)
		}
	}
}

func TestLoadMySQLCatalog(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	setupCatalogSchema(t, db)

	// Setup
	db.ExecContext(ctx, `DELETE FROM products WHERE id LIKE 'test-%'`)
	db.ExecContext(ctx, `DELETE FROM trade_terms WHERE code = 'ZZZ'`)
	_, err := db.ExecContext(ctx, `
		INSERT INTO products (id, name, specs, min_order, price_min, price_max, description, position)
		VALUES ('test-panel', 'Test Panel', '1x1m', 100, 2.5, 4.0, 'test row', 999)
		ON DUPLICATE KEY UPDATE min_order = 100`)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO trade_terms (kind, code, position) VALUES ('incoterm', 'ZZZ', 999)
		ON DUPLICATE KEY UPDATE position = 999`)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	catalog, err := LoadMySQLCatalog(ctx, db)
	if err != nil {
		t.Fatalf("LoadMySQLCatalog failed: %v", err)
	}

	product := catalog.FindProduct("test-panel")
	if product == nil {
		t.Fatal("expected test-panel in loaded catalog")
	}
	if product.MinOrder != 100 {
		t.Errorf("expected min order 100, got %d", product.MinOrder)
	}
	if product.PriceRange != [2]float64{2.5, 4.0} {
		t.Errorf("unexpected price range %v", product.PriceRange)
	}

	if !catalog.HasIncoterm("ZZZ") {
		t.Error("expected loaded incoterm ZZZ")
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM products WHERE id = 'test-panel'`)
	db.ExecContext(ctx, `DELETE FROM trade_terms WHERE code = 'ZZZ'`)
}
