package fitment

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listFitmentsQuery = `
		SELECT id, make, model, year, engine, wheel_specs
		FROM fitments
		ORDER BY make, model, year DESC
	`
	insertFitmentQuery = `
		INSERT INTO fitments (id, make, model, year, engine, wheel_specs)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Fitment {
	rows, err := r.db.Query(listFitmentsQuery)
	if err != nil {
		return []Fitment{}
	}
	defer rows.Close()

	out := make([]Fitment, 0)
	for rows.Next() {
		var (
			f      Fitment
			engine sql.NullString
			specs  []byte
		)
		if err := rows.Scan(&f.ID, &f.Make, &f.Model, &f.Year, &engine, &specs); err != nil {
			continue
		}
		if engine.Valid {
			f.Engine = &engine.String
		}
		// wheel_specs is a jsonb column
		if err := json.Unmarshal(specs, &f.WheelSpecs); err != nil {
			fmt.Printf("warning: bad wheel_specs for fitment %s: %v\n", f.ID, err)
			continue
		}
		out = append(out, f)
	}
	return out
}

func (r *PostgresRepository) Create(f Fitment) (Fitment, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	specs, err := json.Marshal(f.WheelSpecs)
	if err != nil {
		return Fitment{}, err
	}
	if _, err := r.db.Exec(insertFitmentQuery, f.ID, f.Make, f.Model, f.Year, f.Engine, specs); err != nil {
		return Fitment{}, err
	}
	return f, nil
}
