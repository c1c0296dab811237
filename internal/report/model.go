package report

// RevenueRow aggregates sales per book. Profit is derived from the book's
// current buy/sell prices, not the unit price recorded at sale time, so the
// figure drifts when prices are edited after the fact. That matches how the
// store has always reported and is kept as-is.
type RevenueRow struct {
	BookID      int64  `json:"book_id"`
	Title       string `json:"title"`
	Quantity    int64  `json:"quantity"`
	TotalAmount int64  `json:"total_amount"`
	Profit      int64  `json:"profit"`
}

// RevenueFilter bounds are inclusive and compared as text against the
// orders' created_at column.
type RevenueFilter struct {
	StartDate *string
	EndDate   *string
}
