package order_test

import (
	"context"
	"path/filepath"
	"testing"

	"bookstore-be/internal/book"
	"bookstore-be/internal/config"
	"bookstore-be/internal/db"
	"bookstore-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These run the order path against a real store file instead of sqlmock:
// rollback, stock decrement and the cascades are the store's behavior, not
// the repository's, and only a real transaction exercises them.

func openTestStore(t *testing.T) (*testStore, context.Context) {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	database, err := db.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return &testStore{
		books:  book.NewRepository(database),
		orders: order.NewRepository(database),
	}, context.Background()
}

type testStore struct {
	books  book.Repository
	orders order.Repository
}

func (s *testStore) addBook(t *testing.T, ctx context.Context, title string, stock int64) book.Book {
	t.Helper()
	b, err := s.books.Insert(ctx, book.Book{
		Title: title, Author: "Author", Genre: "Programming",
		ShelfPosition: "Shelf 1", BuyPrice: 50, SellPrice: 120, Stock: stock,
	})
	require.NoError(t, err)
	return b
}

func TestCreateOrder_DecrementsStockAndStoresAggregates(t *testing.T) {
	store, ctx := openTestStore(t)
	b := store.addBook(t, ctx, "Foo", 10)

	o, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: b.ID, Quantity: 3, UnitPrice: 120, Total: 360},
	})
	require.NoError(t, err)
	assert.Len(t, o.ID, 8)
	assert.Equal(t, int64(3), o.TotalQty)
	assert.Equal(t, int64(360), o.TotalAmount)

	after, err := store.books.FindByTitle(ctx, "Foo")
	require.NoError(t, err)
	assert.Equal(t, int64(7), after.Stock)

	orders, err := store.orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.TotalAmount, orders[0].TotalAmount)
}

func TestCreateOrder_UnknownBookLeavesStoreUnchanged(t *testing.T) {
	store, ctx := openTestStore(t)

	_, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: 999, Quantity: 1, UnitPrice: 10, Total: 10},
	})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	orders, err := store.orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_PartiallyValidOrderIsAtomic(t *testing.T) {
	store, ctx := openTestStore(t)
	b := store.addBook(t, ctx, "Foo", 10)

	// First item is valid, second references a missing book: the valid
	// item's insert and stock decrement must not survive.
	_, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: b.ID, Quantity: 2, UnitPrice: 120, Total: 240},
		{BookID: 999, Quantity: 1, UnitPrice: 10, Total: 10},
	})
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	after, err := store.books.FindByTitle(ctx, "Foo")
	require.NoError(t, err)
	assert.Equal(t, int64(10), after.Stock)

	orders, err := store.orders.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_StockMayGoNegative(t *testing.T) {
	store, ctx := openTestStore(t)
	b := store.addBook(t, ctx, "Foo", 1)

	_, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: b.ID, Quantity: 3, UnitPrice: 120, Total: 360},
	})
	require.NoError(t, err)

	after, err := store.books.FindByTitle(ctx, "Foo")
	require.NoError(t, err)
	assert.Equal(t, int64(-2), after.Stock)
}

func TestDeleteBook_CascadesToLineItems(t *testing.T) {
	store, ctx := openTestStore(t)
	b := store.addBook(t, ctx, "Foo", 10)

	o, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: b.ID, Quantity: 1, UnitPrice: 120, Total: 120},
	})
	require.NoError(t, err)

	require.NoError(t, store.books.Delete(ctx, b.ID))

	items, err := store.orders.GetItems(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItems_JoinsBookTitle(t *testing.T) {
	store, ctx := openTestStore(t)
	b := store.addBook(t, ctx, "Clean Code", 10)

	o, err := store.orders.CreateOrder(ctx, []order.LineItemInput{
		{BookID: b.ID, Quantity: 2, UnitPrice: 160, Total: 320},
	})
	require.NoError(t, err)

	items, err := store.orders.GetItems(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Clean Code", items[0].Title)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(320), items[0].Total)
}
