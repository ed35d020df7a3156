package basket

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	basketBySessionQuery = `
		SELECT id, session_id, wheel_id, selected_size, selected_finish, quantity, unit_price
		FROM basket_items
		WHERE session_id = $1
		ORDER BY id
	`
	basketByIDQuery = `
		SELECT id, session_id, wheel_id, selected_size, selected_finish, quantity, unit_price
		FROM basket_items
		WHERE id = $1
	`
	insertBasketItemQuery = `
		INSERT INTO basket_items (id, session_id, wheel_id, selected_size, selected_finish, quantity, unit_price)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	updateBasketQuantityQuery = `
		UPDATE basket_items SET quantity = $1 WHERE id = $2
		RETURNING id, session_id, wheel_id, selected_size, selected_finish, quantity, unit_price
	`
	removeBasketItemQuery = `DELETE FROM basket_items WHERE id = $1`
	clearBasketQuery      = `DELETE FROM basket_items WHERE session_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) BySession(sessionID string) []Item {
	rows, err := r.db.Query(basketBySessionQuery, sessionID)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Item, error) {
	it, err := scanItem(r.db.QueryRow(basketByIDQuery, id))
	if err != nil {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *PostgresRepository) Insert(item Item) (Item, error) {
	_, err := r.db.Exec(insertBasketItemQuery,
		item.ID, item.SessionID, item.WheelID, item.Size, item.Finish, item.Quantity, item.UnitPrice)
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

func (r *PostgresRepository) UpdateQuantity(id string, quantity int) (Item, error) {
	it, err := scanItem(r.db.QueryRow(updateBasketQuantityQuery, quantity, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) Remove(id string) error {
	// deleting an absent row is fine; the contract is idempotent
	_, err := r.db.Exec(removeBasketItemQuery, id)
	return err
}

func (r *PostgresRepository) Clear(sessionID string) error {
	_, err := r.db.Exec(clearBasketQuery, sessionID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.SessionID, &it.WheelID, &it.Size, &it.Finish, &it.Quantity, &it.UnitPrice)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}
