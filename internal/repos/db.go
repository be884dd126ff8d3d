package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Catalog snapshot. The whole collection is rewritten on every mutation;
-- position preserves the display order across reloads.
CREATE TABLE IF NOT EXISTS products(
  id             TEXT PRIMARY KEY,
  position       INTEGER NOT NULL,
  name           TEXT NOT NULL,
  name_km        TEXT,
  price          NUMERIC NOT NULL CHECK (price >= 0),
  description    TEXT,
  description_km TEXT,
  image          TEXT,
  images_json    TEXT,
  scent          TEXT,
  scent_km       TEXT,
  ingredients    TEXT,
  ingredients_km TEXT,
  updated_at     TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
`
	_, err := db.Exec(schema)
	return err
}
