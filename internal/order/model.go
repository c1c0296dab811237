package order

// Timestamps are persisted as text in this layout; the revenue date filter
// compares against it lexically, so the layout must sort chronologically.
const TimeLayout = "2006-01-02 15:04:05"

// Order is an append-only record of a completed sale. There is no update
// path; aggregates are fixed at creation time.
type Order struct {
	ID          string `json:"id"`
	TotalQty    int64  `json:"total_qty"`
	TotalAmount int64  `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// LineItemInput is one requested book/quantity/price entry. Total is
// computed by the caller and stored as given.
type LineItemInput struct {
	BookID    int64 `json:"book_id"`
	Quantity  int64 `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
	Total     int64 `json:"total"`
}

// LineItemView is a line item joined with its book's title for display.
// UnitPrice is the price at time of sale, not the book's current price.
type LineItemView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Total     int64  `json:"total"`
}
