package wheel

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listWheelsQuery = `
		SELECT id, brand_id, name, description, images, finishes, sizes, price, pcd, offset_min, offset_max, center_bore, stock, rating, review_count, is_new, finance_available
		FROM wheels
		ORDER BY name
	`
	getWheelByIDQuery = `
		SELECT id, brand_id, name, description, images, finishes, sizes, price, pcd, offset_min, offset_max, center_bore, stock, rating, review_count, is_new, finance_available
		FROM wheels
		WHERE id = $1
	`
	insertWheelQuery = `
		INSERT INTO wheels (id, brand_id, name, description, images, finishes, sizes, price, pcd, offset_min, offset_max, center_bore, stock, rating, review_count, is_new, finance_available)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Wheel {
	rows, err := r.db.Query(listWheelsQuery)
	if err != nil {
		return []Wheel{}
	}
	defer rows.Close()

	out := make([]Wheel, 0)
	for rows.Next() {
		w, err := scanWheel(rows)
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Wheel, error) {
	row := r.db.QueryRow(getWheelByIDQuery, id)
	w, err := scanWheel(row)
	if err != nil {
		return Wheel{}, ErrNotFound
	}
	return w, nil
}

func (r *PostgresRepository) Create(w Wheel) (Wheel, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertWheelQuery,
		w.ID, w.BrandID, w.Name, w.Description,
		pq.Array(w.Images), pq.Array(w.Finishes), pq.Array(w.Sizes),
		w.Price, w.PCD, w.OffsetMin, w.OffsetMax, w.CenterBore,
		w.Stock, w.Rating, w.ReviewCount, w.IsNew, w.FinanceAvailable)
	if err != nil {
		return Wheel{}, err
	}
	return w, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWheel(row rowScanner) (Wheel, error) {
	var (
		w                       Wheel
		images, finishes, sizes pq.StringArray
	)
	err := row.Scan(&w.ID, &w.BrandID, &w.Name, &w.Description,
		&images, &finishes, &sizes,
		&w.Price, &w.PCD, &w.OffsetMin, &w.OffsetMax, &w.CenterBore,
		&w.Stock, &w.Rating, &w.ReviewCount, &w.IsNew, &w.FinanceAvailable)
	if err != nil {
		return Wheel{}, err
	}
	w.Images = images
	w.Finishes = finishes
	w.Sizes = sizes
	return w, nil
}
