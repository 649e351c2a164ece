package repository

import "context"

// Repositories bound to one open transaction.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	CartItems() CartItemRepository
	Books() BookRepository
	Payments() PaymentRepository
}

// Hides begin/commit/rollback from usecases. fn returning an error
// rolls the whole unit back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
