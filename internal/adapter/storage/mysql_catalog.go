package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/buildmate/quote-service/internal/core/domain"
)

// Trade term kinds stored in the trade_terms table.
const (
	termKindIncoterm = "incoterm"
	termKindCurrency = "currency"
)

// LoadMySQLCatalog reads the full reference data set once and returns
// an immutable in-memory catalog. The database is not touched again
// after startup.
func LoadMySQLCatalog(ctx context.Context, db *sql.DB) (*MemoryCatalog, error) {
	var data domain.CatalogData
	var err error

	if data.Products, err = loadProducts(ctx, db); err != nil {
		return nil, err
	}
	if data.Containers, err = loadContainers(ctx, db); err != nil {
		return nil, err
	}
	if data.PaymentMethods, err = loadPaymentMethods(ctx, db); err != nil {
		return nil, err
	}
	if data.Banks, err = loadBanks(ctx, db); err != nil {
		return nil, err
	}
	if data.Incoterms, err = loadTradeTerms(ctx, db, termKindIncoterm); err != nil {
		return nil, err
	}
	if data.Currencies, err = loadTradeTerms(ctx, db, termKindCurrency); err != nil {
		return nil, err
	}

	return NewMemoryCatalog(data), nil
}

func loadProducts(ctx context.Context, db *sql.DB) ([]domain.Product, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, specs, min_order, price_min, price_max, description
		FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Specs, &p.MinOrder,
			&p.PriceRange[0], &p.PriceRange[1], &p.Description); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadContainers(ctx context.Context, db *sql.DB) ([]domain.ContainerType, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, capacity, notes FROM containers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query containers: %w", err)
	}
	defer rows.Close()

	var containers []domain.ContainerType
	for rows.Next() {
		var c domain.ContainerType
		if err := rows.Scan(&c.ID, &c.Name, &c.Capacity, &c.Notes); err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		containers = append(containers, c)
	}
	return containers, rows.Err()
}

func loadPaymentMethods(ctx context.Context, db *sql.DB) ([]domain.PaymentMethod, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, description FROM payment_methods ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query payment methods: %w", err)
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func loadBanks(ctx context.Context, db *sql.DB) ([]domain.Bank, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, account_name, account_number, swift, address
		FROM banks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query banks: %w", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.AccountName, &b.AccountNumber,
			&b.SWIFT, &b.Address); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

func loadTradeTerms(ctx context.Context, db *sql.DB, kind string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT code FROM trade_terms WHERE kind = ? ORDER BY position`, kind)
	if err != nil {
		return nil, fmt.Errorf("query trade terms %q: %w", kind, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan trade term: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
