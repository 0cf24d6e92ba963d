package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id   UUID NOT NULL,
	name TEXT PRIMARY KEY,
	img  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS brands (
	id            UUID NOT NULL,
	name          TEXT NOT NULL,
	category_name TEXT NOT NULL REFERENCES categories(name) ON DELETE CASCADE,
	PRIMARY KEY (name, category_name)
);

CREATE TABLE IF NOT EXISTS products (
	id                TEXT PRIMARY KEY,
	title             TEXT NOT NULL,
	name_key          TEXT NOT NULL DEFAULT '',
	short_description TEXT NOT NULL DEFAULT '',
	discounted_price  NUMERIC(12,2) NOT NULL CHECK (discounted_price >= 0),
	original_price    NUMERIC(12,2) NOT NULL CHECK (original_price >= 0),
	colors            TEXT[] NOT NULL DEFAULT '{}',
	category          TEXT NOT NULL,
	brand             TEXT NOT NULL,
	display_image     TEXT NOT NULL DEFAULT '',
	ratings           NUMERIC(3,2) NOT NULL DEFAULT 0,
	reviews           TEXT[] NOT NULL DEFAULT '{}',
	long_description  TEXT NOT NULL DEFAULT '',
	overview          TEXT[] NOT NULL DEFAULT '{}',
	key_features      JSONB NOT NULL DEFAULT '[]',
	is_bestseller     BOOLEAN NOT NULL DEFAULT FALSE,
	additional_images TEXT[] NOT NULL DEFAULT '{}',
	description_image TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (brand, category) REFERENCES brands(name, category_name)
);

ALTER TABLE products ADD COLUMN IF NOT EXISTS name_key TEXT NOT NULL DEFAULT '';

CREATE INDEX IF NOT EXISTS products_category_brand_idx ON products (category, brand);
CREATE INDEX IF NOT EXISTS products_category_price_idx ON products (category, discounted_price);
CREATE INDEX IF NOT EXISTS products_bestseller_idx ON products (id) WHERE is_bestseller;
`

var errNoPool = errors.New("catalog: repository is bound to a transaction")

// Migrate creates the catalog tables if they do not exist.
func (r *PGRepo) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schemaSQL)
	return err
}

// Seed upserts a fixture in one transaction.
func (r *PGRepo) Seed(ctx context.Context, f Fixture) error {
	if r.pool == nil {
		return errNoPool
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, c := range f.Categories {
		if _, err := tx.Exec(ctx, `
			INSERT INTO categories (id, name, img) VALUES ($1::text::uuid,$2,$3)
			ON CONFLICT (name) DO UPDATE SET img = EXCLUDED.img
		`, c.ID, c.Name, c.Img); err != nil {
			return err
		}
		for _, b := range f.Brands[c.Name] {
			if _, err := tx.Exec(ctx, `
				INSERT INTO brands (id, name, category_name) VALUES ($1::text::uuid,$2,$3)
				ON CONFLICT (name, category_name) DO NOTHING
			`, BrandID(c.Name, b), b, c.Name); err != nil {
				return err
			}
		}
	}

	for _, p := range f.Products {
		if _, err := tx.Exec(ctx, `
			INSERT INTO products (id, title, short_description, discounted_price, original_price,
				colors, category, brand, display_image, ratings, reviews, long_description,
				overview, key_features, is_bestseller, additional_images, description_image, name_key)
			VALUES ($1,$2,$3,$4::text::numeric,$5::text::numeric,$6,$7,$8,$9,$10::text::numeric,$11,$12,$13,$14,$15,$16,$17,$18)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				name_key = EXCLUDED.name_key,
				discounted_price = EXCLUDED.discounted_price,
				original_price = EXCLUDED.original_price,
				ratings = EXCLUDED.ratings,
				is_bestseller = EXCLUDED.is_bestseller
		`, p.ID, p.Title, p.ShortDescription, p.DiscountedPrice.String(), p.OriginalPrice.String(),
			nonNilStrings(p.Colors), p.Category, p.Brand, p.DisplayImage, p.Ratings.String(),
			nonNilStrings(p.Reviews), p.LongDescription, nonNilStrings(p.Overview), nonNilFeatures(p.KeyFeatures),
			p.IsBestseller, nonNilStrings(p.AdditionalImages), p.DescriptionImage, NameKey(p.Title)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func nonNilFeatures(f []map[string]string) []map[string]string {
	if f == nil {
		return []map[string]string{}
	}
	return f
}
