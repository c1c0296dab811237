package book

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	Insert(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]Book, error)
	FindByTitle(ctx context.Context, title string) (*Book, error)
	AddStock(ctx context.Context, id int64, qty int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bookColumns = `id, title, author, genre, description, shelf_position, buy_price, sell_price, stock`

func (r *repository) Insert(ctx context.Context, b Book) (Book, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO books (title, author, genre, description, shelf_position, buy_price, sell_price, stock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.Title, b.Author, b.Genre, b.Description,
		b.ShelfPosition, b.BuyPrice, b.SellPrice, b.Stock,
	)
	if err != nil {
		return Book{}, err
	}

	b.ID, err = res.LastInsertId()
	return b, err
}

// Delete removes the book; line items referencing it go with it via the
// cascade. Deleting an unknown id is a no-op, not an error.
func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	return err
}

func (r *repository) GetAll(ctx context.Context) ([]Book, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bookColumns+` FROM books`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Genre, &b.Description,
			&b.ShelfPosition, &b.BuyPrice, &b.SellPrice, &b.Stock,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// FindByTitle is a case-insensitive exact match. With duplicate titles the
// store picks one; callers must not rely on which.
func (r *repository) FindByTitle(ctx context.Context, title string) (*Book, error) {
	var b Book
	err := r.db.QueryRowContext(ctx, `
		SELECT `+bookColumns+`
		FROM books
		WHERE LOWER(title) = LOWER(?)
		LIMIT 1
	`, title).Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.Description,
		&b.ShelfPosition, &b.BuyPrice, &b.SellPrice, &b.Stock,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) AddStock(ctx context.Context, id int64, qty int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE books SET stock = stock + ? WHERE id = ?`, qty, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}
