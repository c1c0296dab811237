package insights

// DemandForecast is the restock suggestion for a single title.
type DemandForecast struct {
	Title             string  `json:"title"`
	SuggestedQuantity int64   `json:"suggested_quantity"`
	SeasonFactor      float64 `json:"season_factor"`
	Message           string  `json:"message"`
}

// ProfitAnalysis compares all-time revenue against cost of goods sold.
type ProfitAnalysis struct {
	TotalRevenue  int64  `json:"total_revenue"`
	TotalExpenses int64  `json:"total_expenses"`
	Profit        int64  `json:"profit"`
	Message       string `json:"message"`
	Suggestion    string `json:"suggestion"`
}

// InventoryAdvice is one book's row in the optimization report.
type InventoryAdvice struct {
	Title      string `json:"title"`
	Verdict    string `json:"verdict"`
	Message    string `json:"message"`
	MarginNote string `json:"margin_note,omitempty"`
}

const (
	VerdictUnsold = "unsold"
	VerdictSlow   = "slow"
	VerdictSteady = "steady"
	VerdictFast   = "fast"
)
