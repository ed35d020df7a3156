package gallery

import (
	"database/sql"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listGalleryQuery = `
		SELECT id, vehicle, wheel_info, image, category
		FROM gallery_images
		ORDER BY id
	`
	insertGalleryQuery = `
		INSERT INTO gallery_images (id, vehicle, wheel_info, image, category)
		VALUES ($1,$2,$3,$4,$5)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Image {
	rows, err := r.db.Query(listGalleryQuery)
	if err != nil {
		return []Image{}
	}
	defer rows.Close()

	out := make([]Image, 0)
	for rows.Next() {
		var (
			img       Image
			wheelInfo sql.NullString
		)
		if err := rows.Scan(&img.ID, &img.Vehicle, &wheelInfo, &img.URL, &img.Category); err != nil {
			continue
		}
		if wheelInfo.Valid {
			img.WheelInfo = &wheelInfo.String
		}
		out = append(out, img)
	}
	return out
}

func (r *PostgresRepository) Create(img Image) (Image, error) {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	_, err := r.db.Exec(insertGalleryQuery, img.ID, img.Vehicle, img.WheelInfo, img.URL, img.Category)
	if err != nil {
		return Image{}, err
	}
	return img, nil
}
