package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookstore-be/internal/book"
	"bookstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, items []LineItemInput) (*Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetItems(ctx context.Context, orderID string) ([]LineItemView, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder inserts the order header and its line items in one
// transaction, decrementing each book's stock as it goes. Any item
// referencing an unknown book aborts the whole thing; nothing partial
// survives. Stock is decremented without a sufficiency check, so it can go
// negative when two sessions race on the same book.
func (r *repository) CreateOrder(
	ctx context.Context,
	items []LineItemInput,
) (*Order, error) {

	o := &Order{
		ID:        uuid.NewString()[:8],
		CreatedAt: time.Now().Format(TimeLayout),
	}
	for _, it := range items {
		o.TotalQty += it.Quantity
		o.TotalAmount += it.Total
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_id", o.ID),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting order transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, total_qty, total_amount, created_at)
		VALUES (?, ?, ?, ?)
	`, o.ID, o.TotalQty, o.TotalAmount, o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i, it := range items {
		var bookID int64
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM books WHERE id = ?`, it.BookID,
		).Scan(&bookID)
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("order references unknown book",
				zap.Int("item_index", i),
				zap.Int64("book_id", it.BookID),
			)
			return nil, fmt.Errorf("book %d: %w", it.BookID, book.ErrBookNotFound)
		}
		if err != nil {
			return nil, err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, book_id, quantity, unit_price, total)
			VALUES (?, ?, ?, ?, ?)
		`, o.ID, it.BookID, it.Quantity, it.UnitPrice, it.Total)
		if err != nil {
			log.Error("failed to insert line item",
				zap.Int("item_index", i),
				zap.Error(err),
			)
			return nil, err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE books SET stock = stock - ? WHERE id = ?`,
			it.Quantity, it.BookID,
		)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.Int64("book_id", it.BookID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	log.Info("order created",
		zap.Int64("total_qty", o.TotalQty),
		zap.Int64("total_amount", o.TotalAmount),
	)

	return o, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, total_qty, total_amount, created_at FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.TotalQty, &o.TotalAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *repository) GetItems(ctx context.Context, orderID string) ([]LineItemView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, b.title, oi.quantity, oi.unit_price, oi.total
		FROM order_items oi
		JOIN books b ON oi.book_id = b.id
		WHERE oi.order_id = ?
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItemView
	for rows.Next() {
		var it LineItemView
		if err := rows.Scan(&it.ID, &it.Title, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}
