package book

// Book is a catalog row. Titles are deliberately not unique: two editions
// of the same work are two rows.
type Book struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	Description   string `json:"description"`
	ShelfPosition string `json:"shelf_position"`
	BuyPrice      int64  `json:"buy_price"`
	SellPrice     int64  `json:"sell_price"`
	Stock         int64  `json:"stock"`
}
