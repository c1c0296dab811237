package report

import "context"

type Service interface {
	Revenue(ctx context.Context, filter RevenueFilter) ([]RevenueRow, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Revenue(ctx context.Context, filter RevenueFilter) ([]RevenueRow, error) {
	return s.repo.Revenue(ctx, filter)
}
