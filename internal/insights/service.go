package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookstore-be/internal/book"
	"bookstore-be/internal/logger"
	"bookstore-be/internal/order"
	"bookstore-be/internal/report"

	"go.uber.org/zap"
)

type Service interface {
	PredictDemand(ctx context.Context, title string, days int) (*DemandForecast, error)
	AnalyzeProfit(ctx context.Context) (*ProfitAnalysis, error)
	SuggestRestock(ctx context.Context, title string) (string, error)
	OptimizeInventory(ctx context.Context) ([]InventoryAdvice, error)
	PromptContext(ctx context.Context) (string, error)
}

type service struct {
	books   book.Repository
	reports report.Repository
	now     func() time.Time
}

func NewService(books book.Repository, reports report.Repository) Service {
	return &service{
		books:   books,
		reports: reports,
		now:     time.Now,
	}
}

// seasonFactor bumps forecasts during the back-to-school month, the store's
// historical high season.
func (s *service) seasonFactor() float64 {
	if s.now().Month() == time.August {
		return 1.5
	}
	return 1.0
}

func (s *service) PredictDemand(ctx context.Context, title string, days int) (*DemandForecast, error) {
	if days <= 0 {
		days = 7
	}

	b, err := s.books.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -days).Format(order.TimeLayout)
	rows, err := s.reports.Revenue(ctx, report.RevenueFilter{StartDate: &since})
	if err != nil {
		return nil, err
	}

	var recentSales int64
	for _, row := range rows {
		if row.BookID == b.ID {
			recentSales = row.Quantity
			break
		}
	}

	factor := s.seasonFactor()
	// 20% buffer on top of the seasonal factor.
	suggested := int64(float64(recentSales) * factor * 1.2)

	return &DemandForecast{
		Title:             b.Title,
		SuggestedQuantity: suggested,
		SeasonFactor:      factor,
		Message: fmt.Sprintf(
			"Predicted demand for '%s': %d copies (Season factor: %.1fx).",
			b.Title, suggested, factor,
		),
	}, nil
}

func (s *service) AnalyzeProfit(ctx context.Context) (*ProfitAnalysis, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AnalyzeProfit"),
	)

	rows, err := s.reports.Revenue(ctx, report.RevenueFilter{})
	if err != nil {
		return nil, err
	}

	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	buyPrices := make(map[int64]int64, len(books))
	for _, b := range books {
		buyPrices[b.ID] = b.BuyPrice
	}

	analysis := &ProfitAnalysis{}
	for _, row := range rows {
		analysis.TotalRevenue += row.TotalAmount
		// cost of goods sold at the book's current purchase price
		analysis.TotalExpenses += buyPrices[row.BookID] * row.Quantity
	}
	analysis.Profit = analysis.TotalRevenue - analysis.TotalExpenses

	if analysis.Profit < 0 {
		analysis.Message = fmt.Sprintf(
			"Negative profit: %d VND. Consider reducing costs or adjusting prices.",
			analysis.Profit,
		)
	} else {
		analysis.Message = fmt.Sprintf(
			"Profit: %d VND | Revenue: %d VND | Expenses: %d VND.",
			analysis.Profit, analysis.TotalRevenue, analysis.TotalExpenses,
		)
	}

	if analysis.Profit < 1_000_000 {
		analysis.Suggestion = "Increase prices for certain categories to optimize profit."
	} else {
		analysis.Suggestion = "Offer book combos or promotions to boost revenue."
	}

	log.Debug("profit analyzed",
		zap.Int64("revenue", analysis.TotalRevenue),
		zap.Int64("expenses", analysis.TotalExpenses),
		zap.Int64("profit", analysis.Profit),
	)

	return analysis, nil
}

func (s *service) SuggestRestock(ctx context.Context, title string) (string, error) {
	forecast, err := s.PredictDemand(ctx, title, 7)
	if err != nil {
		return "", err
	}

	if forecast.SuggestedQuantity > 0 {
		return fmt.Sprintf(
			"Suggested restock: %d copies of '%s'.",
			forecast.SuggestedQuantity, forecast.Title,
		), nil
	}
	return fmt.Sprintf("No additional stock needed for '%s'.", forecast.Title), nil
}

// OptimizeInventory classifies every book by how long its stock will last
// at the recent sales rate, assuming the sales aggregate covers roughly the
// last 30 days.
func (s *service) OptimizeInventory(ctx context.Context) ([]InventoryAdvice, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.Revenue(ctx, report.RevenueFilter{})
	if err != nil {
		return nil, err
	}

	soldByID := make(map[int64]int64, len(rows))
	for _, row := range rows {
		soldByID[row.BookID] = row.Quantity
	}

	var advice []InventoryAdvice
	for _, b := range books {
		sold := soldByID[b.ID]

		a := InventoryAdvice{Title: b.Title}

		if sold == 0 {
			a.Verdict = VerdictUnsold
			a.Message = fmt.Sprintf(
				"No sales: suggest discount to %d VND or stop importing.",
				int64(float64(b.SellPrice)*0.7),
			)
			advice = append(advice, a)
			continue
		}

		dailySales := float64(sold) / 30.0
		daysToSell := float64(b.Stock) / dailySales

		switch {
		case daysToSell > 90:
			a.Verdict = VerdictSlow
			a.Message = fmt.Sprintf(
				"Slow selling (stock lasts %.0f days): reduce price to %d VND.",
				daysToSell, int64(float64(b.SellPrice)*0.85),
			)
		case daysToSell >= 30:
			a.Verdict = VerdictSteady
			a.Message = fmt.Sprintf(
				"Average selling (stock lasts %.0f days): keep current price %d VND.",
				daysToSell, b.SellPrice,
			)
		default:
			suggestImport := int64(dailySales * 60)
			a.Verdict = VerdictFast
			a.Message = fmt.Sprintf(
				"Fast selling (may run out in %.0f days): suggest importing %d copies (~%d VND cost).",
				daysToSell, suggestImport, suggestImport*b.BuyPrice,
			)
		}

		if b.SellPrice > 0 {
			margin := float64(b.SellPrice-b.BuyPrice) / float64(b.SellPrice) * 100
			if margin < 10 {
				a.MarginNote = fmt.Sprintf(
					"Low profit margin (%.1f%%): consider raising price or discontinuing.", margin)
			} else if margin > 40 {
				a.MarginNote = fmt.Sprintf(
					"High profit margin (%.1f%%): should promote more.", margin)
			}
		}

		advice = append(advice, a)
	}

	return advice, nil
}

// PromptContext renders the catalog and sales summary the staff chatbot
// feeds into its prompt. The chat layer itself lives outside this backend.
func (s *service) PromptContext(ctx context.Context) (string, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return "", err
	}

	rows, err := s.reports.Revenue(ctx, report.RevenueFilter{})
	if err != nil {
		return "", err
	}

	titleByID := make(map[int64]string, len(books))

	var sb strings.Builder
	sb.WriteString("Books in stock:\n")
	for _, b := range books {
		titleByID[b.ID] = b.Title
		fmt.Fprintf(&sb, "- %s (genre: %s, shelf: %s, price: %d VND, stock: %d copies)\n",
			b.Title, b.Genre, b.ShelfPosition, b.SellPrice, b.Stock)
	}

	if len(rows) > 0 {
		sb.WriteString("Sales:\n")
		for _, row := range rows {
			fmt.Fprintf(&sb, "- %s: sold %d copies, revenue %d VND, profit %d VND\n",
				titleByID[row.BookID], row.Quantity, row.TotalAmount, row.Profit)
		}
	}

	return sb.String(), nil
}
