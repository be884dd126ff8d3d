package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"sudsshop/internal/domain"
)

type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

type productRow struct {
	ID            string  `db:"id"`
	Position      int     `db:"position"`
	Name          string  `db:"name"`
	NameKM        string  `db:"name_km"`
	Price         float64 `db:"price"`
	Description   string  `db:"description"`
	DescriptionKM string  `db:"description_km"`
	Image         string  `db:"image"`
	ImagesJSON    string  `db:"images_json"`
	Scent         string  `db:"scent"`
	ScentKM       string  `db:"scent_km"`
	Ingredients   string  `db:"ingredients"`
	IngredientsKM string  `db:"ingredients_km"`
}

// Load reads the full snapshot in display order. An empty result means no
// snapshot has been persisted yet.
func (r *CatalogRepo) Load() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `
	  SELECT id, position, name, COALESCE(name_km,'') AS name_km, price,
	         COALESCE(description,'') AS description, COALESCE(description_km,'') AS description_km,
	         COALESCE(image,'') AS image, COALESCE(images_json,'[]') AS images_json,
	         COALESCE(scent,'') AS scent, COALESCE(scent_km,'') AS scent_km,
	         COALESCE(ingredients,'') AS ingredients, COALESCE(ingredients_km,'') AS ingredients_km
	  FROM products
	  ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p := domain.Product{
			ID:            row.ID,
			Name:          row.Name,
			NameKM:        row.NameKM,
			Price:         row.Price,
			Description:   row.Description,
			DescriptionKM: row.DescriptionKM,
			Image:         row.Image,
			Scent:         row.Scent,
			ScentKM:       row.ScentKM,
			Ingredients:   row.Ingredients,
			IngredientsKM: row.IngredientsKM,
		}
		if err := json.Unmarshal([]byte(row.ImagesJSON), &p.Images); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ReplaceAll rewrites the whole snapshot in one transaction. No diffing; the
// in-memory collection is the source of truth.
func (r *CatalogRepo) ReplaceAll(products []domain.Product) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}
	for i, p := range products {
		imgs, err := json.Marshal(p.Images)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
		  INSERT INTO products(id, position, name, name_km, price, description, description_km,
		                       image, images_json, scent, scent_km, ingredients, ingredients_km, updated_at)
		  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
		`, p.ID, i, p.Name, p.NameKM, p.Price, p.Description, p.DescriptionKM,
			p.Image, string(imgs), p.Scent, p.ScentKM, p.Ingredients, p.IngredientsKM); err != nil {
			return err
		}
	}
	return tx.Commit()
}
