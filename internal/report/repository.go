package report

import (
	"context"
	"database/sql"

	"bookstore-be/internal/logger"
	"bookstore-be/internal/utils"

	"go.uber.org/zap"
)

type Repository interface {
	Revenue(ctx context.Context, filter RevenueFilter) ([]RevenueRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Revenue(ctx context.Context, filter RevenueFilter) ([]RevenueRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Revenue"),
		zap.String("start_date", utils.PtrString(filter.StartDate)),
		zap.String("end_date", utils.PtrString(filter.EndDate)),
	)

	query := `
		SELECT b.id AS book_id, b.title,
		       SUM(oi.quantity) AS quantity,
		       SUM(oi.total) AS total_amount,
		       SUM((b.sell_price - b.buy_price) * oi.quantity) AS profit
		FROM order_items oi
		JOIN books b ON oi.book_id = b.id
		JOIN orders o ON oi.order_id = o.id
		WHERE 1=1
	`

	args := []any{}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += " AND o.created_at >= ?"
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += " AND o.created_at <= ?"
		args = append(args, *filter.EndDate)
	}

	query += " GROUP BY b.id, b.title"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []RevenueRow
	for rows.Next() {
		var row RevenueRow
		if err := rows.Scan(
			&row.BookID, &row.Title, &row.Quantity, &row.TotalAmount, &row.Profit,
		); err != nil {
			log.Error("failed to scan revenue row", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
