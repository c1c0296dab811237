package book

import (
	"context"
	"errors"

	"bookstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Add(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Book, error)
	FindByTitle(ctx context.Context, title string) (*Book, error)
	AddStock(ctx context.Context, id int64, qty int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, b Book) (Book, error) {
	if b.Title == "" {
		return Book{}, errors.New("title cannot be empty")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddBook"),
		zap.String("title", b.Title),
	)

	created, err := s.repo.Insert(ctx, b)
	if err != nil {
		log.Error("failed to add book", zap.Error(err))
		return Book{}, err
	}

	log.Info("book added", zap.Int64("book_id", created.ID))
	return created, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context) ([]Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) FindByTitle(ctx context.Context, title string) (*Book, error) {
	if title == "" {
		return nil, ErrBookNotFound
	}
	return s.repo.FindByTitle(ctx, title)
}

func (s *service) AddStock(ctx context.Context, id int64, qty int64) error {
	if qty <= 0 {
		return errors.New("quantity must be greater than zero")
	}
	return s.repo.AddStock(ctx, id, qty)
}
