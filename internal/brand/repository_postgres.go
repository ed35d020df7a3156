package brand

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listBrandsQuery = `
		SELECT id, name, logo, description
		FROM brands
		ORDER BY name
	`
	getBrandByIDQuery = `
		SELECT id, name, logo, description
		FROM brands
		WHERE id = $1
	`
	insertBrandQuery = `
		INSERT INTO brands (id, name, logo, description)
		VALUES ($1,$2,$3,$4)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Brand {
	rows, err := r.db.Query(listBrandsQuery)
	if err != nil {
		return []Brand{}
	}
	defer rows.Close()

	out := make([]Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Brand, error) {
	row := r.db.QueryRow(getBrandByIDQuery, id)
	b, err := scanBrand(row)
	if err != nil {
		return Brand{}, ErrNotFound
	}
	return b, nil
}

func (r *PostgresRepository) Create(b Brand) (Brand, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, err := r.db.Exec(insertBrandQuery, b.ID, b.Name, b.Logo, b.Description); err != nil {
		return Brand{}, err
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBrand(row rowScanner) (Brand, error) {
	var (
		b    Brand
		logo sql.NullString
		desc sql.NullString
	)
	if err := row.Scan(&b.ID, &b.Name, &logo, &desc); err != nil {
		return Brand{}, err
	}
	if logo.Valid {
		b.Logo = &logo.String
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	return b, nil
}
