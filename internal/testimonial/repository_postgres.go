package testimonial

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listTestimonialsQuery = `
		SELECT id, name, location, rating, comment, avatar, vehicle
		FROM testimonials
		ORDER BY id
	`
	insertTestimonialQuery = `
		INSERT INTO testimonials (id, name, location, rating, comment, avatar, vehicle)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Testimonial {
	rows, err := r.db.Query(listTestimonialsQuery)
	if err != nil {
		return []Testimonial{}
	}
	defer rows.Close()

	out := make([]Testimonial, 0)
	for rows.Next() {
		var (
			t        Testimonial
			location sql.NullString
			avatar   sql.NullString
			vehicle  sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &location, &t.Rating, &t.Comment, &avatar, &vehicle); err != nil {
			continue
		}
		if location.Valid {
			t.Location = &location.String
		}
		if avatar.Valid {
			t.Avatar = &avatar.String
		}
		if vehicle.Valid {
			t.Vehicle = &vehicle.String
		}
		out = append(out, t)
	}
	return out
}

func (r *PostgresRepository) Create(t Testimonial) (Testimonial, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertTestimonialQuery, t.ID, t.Name, t.Location, t.Rating, t.Comment, t.Avatar, t.Vehicle)
	if err != nil {
		return Testimonial{}, err
	}
	return t, nil
}
