package order

import (
	"context"

	"bookstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, items []LineItemInput) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Items(ctx context.Context, orderID string) ([]LineItemView, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create records a checkout. Line-item totals come from the caller and are
// stored as given; the GUI is responsible for pricing each line before
// submitting the cart.
func (s *service) Create(ctx context.Context, items []LineItemInput) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(items)),
	)

	o, err := s.repo.CreateOrder(ctx, items)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	return o, nil
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Items(ctx context.Context, orderID string) ([]LineItemView, error) {
	return s.repo.GetItems(ctx, orderID)
}
