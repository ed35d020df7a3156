package wheel

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func wheelColumns() []string {
	return []string{"id", "brand_id", "name", "description", "images", "finishes", "sizes", "price", "pcd", "offset_min", "offset_max", "center_bore", "stock", "rating", "review_count", "is_new", "finance_available"}
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(wheelColumns()).
		AddRow("w1", "b1", "CH-R II", "Satin Black", "{img1}", `{"Satin Black",Silver}`, "{18x8,19x8.5}", 485.0, "5x112", 25, 45, 66.6, 12, 4.8, 24, true, true).
		AddRow("w2", "b2", "RPF1", "Matte Black", "{img2}", "{Silver}", "{17x9}", 225.0, "5x114.3", 12, 38, 73.1, 15, 4.7, 67, false, false)
	mock.ExpectQuery("FROM wheels").WillReturnRows(rows)

	wheels := repo.List()
	if len(wheels) != 2 {
		t.Fatalf("expected 2 wheels, got %d", len(wheels))
	}
	if wheels[0].Name != "CH-R II" || len(wheels[0].Sizes) != 2 {
		t.Fatalf("unexpected first wheel %+v", wheels[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM wheels").WithArgs("missing").WillReturnRows(sqlmock.NewRows(wheelColumns()))

	if _, err := repo.GetByID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
