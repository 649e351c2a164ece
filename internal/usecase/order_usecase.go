package usecase

import (
	"context"
	"net/http"
	"time"

	"bookstore/internal/domain/model"
	"bookstore/internal/events"
	repo "bookstore/internal/repository"

	"github.com/rs/zerolog/log"
)

type OrderUsecase struct {
	tx  repo.TransactionManager
	pub events.Publisher
}

func NewOrderUsecase(tx repo.TransactionManager, pub events.Publisher) *OrderUsecase {
	return &OrderUsecase{tx: tx, pub: pub}
}

type OrderCreateOutput struct {
	OrderID     int64  `json:"order_id"`
	TotalAmount int64  `json:"total_amount"`
	Message     string `json:"message"`
}

type OrderLineOutput struct {
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

type OrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []OrderLineOutput `json:"items"`
}

// CreateOrder turns the user's cart into a persisted order inside one
// transaction: read cart lines with live catalog prices, compute the
// total, insert the order and its items, clear the cart. Any failure
// rolls the whole unit back; nothing partial ever survives.
//
// The caller supplies nothing but its identity. Quantities and prices
// come from persisted state only, so a client cannot inject a total.
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string) (OrderCreateOutput, error) {
	if userID == "" {
		return OrderCreateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out OrderCreateOutput
	var payload events.OrderCreatedPayload

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// Cart rows are locked here. A concurrent checkout for the
		// same user waits, re-reads an empty cart and gets the
		// empty-cart error instead of a duplicate order.
		lines, err := r.CartItems().ListForCheckout(ctx, userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("checkout read failed")
			return NewHTTPError(http.StatusInternalServerError, "failed to create order")
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		// Exact accumulation in minor currency units. No floats.
		now := time.Now()
		items := make([]model.OrderItem, 0, len(lines))
		var total int64 = 0

		for _, ln := range lines {
			items = append(items, model.OrderItem{
				BookID:    ln.BookID,
				Quantity:  ln.Quantity,
				Price:     ln.UnitPrice,
				CreatedAt: now,
			})
			total += ln.UnitPrice * ln.Quantity
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:      userID,
			Status:      model.OrderStatusPending,
			TotalAmount: total,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("order insert failed")
			return NewHTTPError(http.StatusInternalServerError, "failed to create order")
		}

		// Item prices are the ones read above, not re-read. A catalog
		// price change racing this transaction does not leak in.
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			log.Error().Err(err).Int64("order_id", orderID).Msg("order items insert failed")
			return NewHTTPError(http.StatusInternalServerError, "failed to create order")
		}

		if err := r.CartItems().DeleteByUser(ctx, userID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("cart clear failed")
			return NewHTTPError(http.StatusInternalServerError, "failed to create order")
		}

		out = OrderCreateOutput{
			OrderID:     orderID,
			TotalAmount: total,
			Message:     "Order created successfully",
		}

		evtItems := make([]events.OrderItemEvent, 0, len(items))
		for _, it := range items {
			evtItems = append(evtItems, events.OrderItemEvent{
				BookID:    it.BookID,
				Quantity:  it.Quantity,
				UnitCents: it.Price,
			})
		}
		payload = events.OrderCreatedPayload{
			OrderID:    orderID,
			UserID:     userID,
			TotalCents: total,
			Items:      evtItems,
		}
		return nil
	})

	if err != nil {
		return OrderCreateOutput{}, err
	}

	// After commit, best effort. The order exists either way.
	if pubErr := u.pub.PublishJSON(ctx, events.RKOrderCreated, payload); pubErr != nil {
		log.Error().Err(pubErr).Int64("order_id", out.OrderID).Msg("publish order.created failed")
	}

	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var orders []model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID string, orderID int64) (OrderDetailOutput, error) {
	if userID == "" {
		return OrderDetailOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.UserID != userID {
			// someone else's order looks like no order at all
			return NewHTTPError(http.StatusNotFound, "order not found")
		}

		views, err := r.OrderItems().ListViewByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items := make([]OrderLineOutput, 0, len(views))
		for _, v := range views {
			items = append(items, OrderLineOutput{
				BookID:   v.BookID,
				Title:    v.Title,
				Author:   v.Author,
				Quantity: v.Quantity,
				Price:    v.Price,
			})
		}

		out = OrderDetailOutput{Order: o, Items: items}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}
