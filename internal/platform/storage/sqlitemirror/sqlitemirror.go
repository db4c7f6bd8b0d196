// Package sqlitemirror keeps a local, best-effort copy of products and
// price history in an embedded SQLite database. The mirror is secondary
// to Postgres: callers treat its failures as non-fatal.
package sqlitemirror

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/soukwatch/pricetracker/internal/platform/models"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS products(
  product_id TEXT NOT NULL,
  source TEXT NOT NULL,
  name TEXT,
  display_name TEXT,
  brand TEXT,
  category TEXT,
  url TEXT,
  quality_score REAL NOT NULL DEFAULT 0,
  last_price REAL,
  first_seen_at TEXT NOT NULL,
  last_updated_at TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  PRIMARY KEY(product_id, source)
);

CREATE TABLE IF NOT EXISTS price_history(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id TEXT NOT NULL,
  source TEXT NOT NULL,
  scraped_at TEXT NOT NULL,
  price REAL,
  price_text TEXT,
  old_price REAL,
  discount REAL,
  is_available INTEGER NOT NULL DEFAULT 1,
  data_quality TEXT NOT NULL DEFAULT 'poor'
);

CREATE INDEX IF NOT EXISTS idx_price_history_product ON price_history(product_id, source, scraped_at);
`

// Mirror is a SQLite copy of the primary product store.
type Mirror struct {
	db *sqlx.DB
}

// Open opens the SQLite database at path and ensures the schema.
// Use ":memory:" for an in-memory mirror.
func Open(path string) (*Mirror, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open sqlite database: %w", err)
	}

	// Writes are serialized anyway, one connection avoids lock errors.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("can't ping sqlite database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("can't ensure sqlite schema: %w", err)
	}

	return &Mirror{db: db}, nil
}

// Close closes the underlying database.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// SaveProduct upserts the product and appends the snapshot to the
// mirrored price history.
func (m *Mirror) SaveProduct(ctx context.Context, product models.Product, snapshot models.Snapshot) error {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin sqlite transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
	  INSERT INTO products(
	    product_id, source, name, display_name, brand, category, url,
	    quality_score, last_price, first_seen_at, last_updated_at, is_active
	  ) VALUES(?,?,?,?,?,?,?,?,?,?,?,1)
	  ON CONFLICT(product_id, source) DO UPDATE SET
	    name            = COALESCE(excluded.name, name),
	    display_name    = COALESCE(excluded.display_name, display_name),
	    brand           = COALESCE(excluded.brand, brand),
	    category        = COALESCE(excluded.category, category),
	    url             = COALESCE(excluded.url, url),
	    quality_score   = excluded.quality_score,
	    last_price      = COALESCE(excluded.last_price, last_price),
	    last_updated_at = excluded.last_updated_at,
	    is_active       = 1
	`,
		product.ProductID,
		product.Source,
		product.Name,
		product.DisplayName,
		product.Brand,
		product.Category,
		product.URL,
		product.QualityScore,
		snapshot.Price,
		product.FirstSeenAt.UTC().Format(timeLayout),
		product.LastUpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("can't upsert mirrored product: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
	  INSERT INTO price_history(
	    product_id, source, scraped_at, price, price_text, old_price,
	    discount, is_available, data_quality
	  ) VALUES(?,?,?,?,?,?,?,?,?)
	`,
		snapshot.ProductID,
		snapshot.Source,
		snapshot.ScrapedAt.UTC().Format(timeLayout),
		snapshot.Price,
		snapshot.PriceText,
		snapshot.OldPrice,
		snapshot.Discount,
		snapshot.IsAvailable,
		string(snapshot.DataQuality),
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("can't insert mirrored snapshot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit sqlite transaction: %w", err)
	}

	return nil
}

// ProductCount returns the number of mirrored products.
func (m *Mirror) ProductCount(ctx context.Context) (int64, error) {
	var count int64
	if err := m.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("can't count mirrored products: %w", err)
	}
	return count, nil
}

// HistoryCount returns the number of mirrored snapshots.
func (m *Mirror) HistoryCount(ctx context.Context) (int64, error) {
	var count int64
	if err := m.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM price_history`); err != nil {
		return 0, fmt.Errorf("can't count mirrored snapshots: %w", err)
	}
	return count, nil
}

// LastPrice returns the mirrored product's last known price, or nil
// when the product is unknown or has no price yet.
func (m *Mirror) LastPrice(ctx context.Context, productID, source string) (*float64, error) {
	var price *float64
	err := m.db.GetContext(ctx, &price, `
	  SELECT last_price FROM products WHERE product_id = ? AND source = ?
	`, productID, source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get mirrored price: %w", err)
	}
	return price, nil
}

const timeLayout = "2006-01-02T15:04:05.000Z"
