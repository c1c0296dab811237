package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, b Book) (Book, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(Book), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Book), args.Error(1)
}

func (m *MockRepository) FindByTitle(ctx context.Context, title string) (*Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Book), args.Error(1)
}

func (m *MockRepository) AddStock(ctx context.Context, id int64, qty int64) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := Book{Title: "Foo", SellPrice: 120}
		repo.On("Insert", ctx, input).Return(Book{ID: 1, Title: "Foo", SellPrice: 120}, nil)

		created, err := svc.Add(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Add(ctx, Book{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Insert")
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Insert", ctx, mock.Anything).Return(Book{}, errors.New("db error"))

		_, err := svc.Add(ctx, Book{Title: "Foo"})
		assert.Error(t, err)
	})
}

func TestService_FindByTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyTitle", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.FindByTitle(ctx, "")
		assert.ErrorIs(t, err, ErrBookNotFound)
		repo.AssertNotCalled(t, "FindByTitle")
	})

	t.Run("Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("FindByTitle", ctx, "Foo").Return(&Book{ID: 1, Title: "Foo"}, nil)

		found, err := svc.FindByTitle(ctx, "Foo")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), found.ID)
	})
}

func TestService_AddStock(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsNonPositiveQty", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		assert.Error(t, svc.AddStock(ctx, 1, 0))
		assert.Error(t, svc.AddStock(ctx, 1, -3))
		repo.AssertNotCalled(t, "AddStock")
	})

	t.Run("Delegates", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("AddStock", ctx, int64(1), int64(5)).Return(nil)
		assert.NoError(t, svc.AddStock(ctx, 1, 5))
		repo.AssertExpectations(t)
	})
}
