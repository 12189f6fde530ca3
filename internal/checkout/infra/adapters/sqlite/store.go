// Package sqlite provides a SQLite-backed catalog and order ledger for local
// development and tests, so the service can run without Google credentials.
//
// WAL mode is enabled on Open so that catalog reads never block ledger
// writes and vice versa.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/donfermin/bakery-checkout/internal/checkout/core/domain"
	"github.com/donfermin/bakery-checkout/internal/checkout/core/ports"

	// Register the pure-Go SQLite driver.
	// modernc.org/sqlite avoids CGO, keeping the dev build trivial.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// products mirrors the catalog tab; orders is append-only, one row per
// finalized checkout, matching the ledger columns.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    -- Product identifier, e.g. "PAN_FRANCES_KG".
    product_id  TEXT PRIMARY KEY,

    -- Decimal price stored as TEXT to avoid binary float drift.
    unit_price  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Wall-clock timestamp (RFC3339 stored as TEXT, SQLite idiom).
    created_at      TEXT NOT NULL,

    transaction_id  TEXT NOT NULL,
    customer_name   TEXT NOT NULL,
    customer_email  TEXT NOT NULL,

    -- Recomputed total at 2 decimals, stored as TEXT like unit_price.
    total           TEXT NOT NULL,
    payment_method  TEXT NOT NULL,

    -- JSON array of the submitted cart lines.
    products        TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_orders_transaction_id ON orders(transaction_id);
`

// Store implements ports.CatalogSource and ports.OrderLedger on SQLite.
type Store struct {
	db *sql.DB
}

var (
	_ ports.CatalogSource = (*Store)(nil)
	_ ports.OrderLedger   = (*Store)(nil)
)

// Open opens (or creates) the database at the given path and applies the
// schema. WAL mode is enabled; busy_timeout waits for locks instead of
// failing immediately.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCatalog reads the full products table into a fresh Catalog map.
func (s *Store) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	const q = `SELECT product_id, unit_price FROM products`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load catalog: %w", err)
	}
	defer rows.Close()

	catalog := make(domain.Catalog)
	for rows.Next() {
		var id, price string
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("sqlite: scan catalog row: %w", err)
		}
		unitPrice, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("sqlite: product %q has non-numeric price %q: %w", id, price, err)
		}
		catalog[id] = domain.CatalogEntry{ProductID: id, UnitPrice: unitPrice}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load catalog: %w", err)
	}
	return catalog, nil
}

// AppendOrder inserts one immutable ledger row.
func (s *Store) AppendOrder(ctx context.Context, rec domain.LedgerRecord) error {
	const q = `
		INSERT INTO orders
			(created_at, transaction_id, customer_name, customer_email, total, payment_method, products)
		VALUES
			(?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		rec.Timestamp.UTC().Format("2006-01-02T15:04:05.999999999Z"),
		rec.TransactionID,
		rec.CustomerName,
		rec.CustomerEmail,
		rec.Total.StringFixed(2),
		string(rec.PaymentMethod),
		rec.ProductsJSON,
	)
	if err != nil {
		return fmt.Errorf("sqlite: append order %q: %w", rec.TransactionID, err)
	}
	return nil
}

// SeedCatalog upserts catalog entries. Intended for dev fixtures and tests.
func (s *Store) SeedCatalog(ctx context.Context, entries []domain.CatalogEntry) error {
	const q = `INSERT OR REPLACE INTO products (product_id, unit_price) VALUES (?, ?)`

	for _, e := range entries {
		if _, err := s.db.ExecContext(ctx, q, e.ProductID, e.UnitPrice.String()); err != nil {
			return fmt.Errorf("sqlite: seed product %q: %w", e.ProductID, err)
		}
	}
	return nil
}
