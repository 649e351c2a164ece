package usecase

import (
	"context"

	"bookstore/internal/domain/model"
	repo "bookstore/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock runs the closure against a fixed set of repos. A
// closure error comes back like a rolled-back transaction would.
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposStub struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	cartItems  repo.CartItemRepository
	books      repo.BookRepository
	payments   repo.PaymentRepository
}

func (r *TxReposStub) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposStub) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposStub) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *TxReposStub) Books() repo.BookRepository           { return r.books }
func (r *TxReposStub) Payments() repo.PaymentRepository     { return r.payments }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByIDForUpdate(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListViewByOrderID(ctx context.Context, orderID int64) ([]repo.OrderLineView, error) {
	args := m.Called(ctx, orderID)
	views, _ := args.Get(0).([]repo.OrderLineView)
	return views, args.Error(1)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUser(ctx context.Context, userID string) ([]repo.CartLineView, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]repo.CartLineView)
	return lines, args.Error(1)
}

func (m *CartItemRepoMock) Upsert(ctx context.Context, userID string, bookID int64, addQty int64) error {
	args := m.Called(ctx, userID, bookID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, userID string, bookID int64, qty int64) error {
	args := m.Called(ctx, userID, bookID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) Delete(ctx context.Context, userID string, bookID int64) error {
	args := m.Called(ctx, userID, bookID)
	return args.Error(0)
}

func (m *CartItemRepoMock) FindByUserAndBook(ctx context.Context, userID string, bookID int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, bookID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) ListForCheckout(ctx context.Context, userID string) ([]repo.CheckoutLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]repo.CheckoutLine)
	return lines, args.Error(1)
}

func (m *CartItemRepoMock) DeleteByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type BookRepoMock struct{ mock.Mock }

func (m *BookRepoMock) ListActive(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *BookRepoMock) FindActiveByID(ctx context.Context, id int64) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func (m *BookRepoMock) Search(ctx context.Context, query string) ([]model.Book, error) {
	args := m.Called(ctx, query)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PaymentRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Payment, error) {
	args := m.Called(ctx, userID)
	payments, _ := args.Get(0).([]model.Payment)
	return payments, args.Error(1)
}

// =====================
// Publisher / Gateway mocks
// =====================

type PublisherMock struct{ mock.Mock }

func (m *PublisherMock) PublishJSON(ctx context.Context, routingKey string, v any) error {
	args := m.Called(ctx, routingKey, v)
	return args.Error(0)
}
