package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bookstore/internal/domain/model"
	"bookstore/internal/payment"
	repo "bookstore/internal/repository"

	"github.com/rs/zerolog/log"
)

type PaymentUsecase struct {
	tx       repo.TransactionManager
	payments repo.PaymentRepository
	gateway  payment.Gateway
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	payments repo.PaymentRepository,
	gateway payment.Gateway,
) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, payments: payments, gateway: gateway}
}

type ProcessPaymentInput struct {
	OrderID       int64
	PaymentMethod string
}

type PaymentOutput struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// ProcessPayment charges the stored order total through the gateway
// and records the outcome. The amount never comes from the request.
//
// The order row is locked for the whole unit, so concurrent attempts
// on the same order serialize: the loser re-reads the flipped status
// and is rejected before the gateway is charged a second time.
func (u *PaymentUsecase) ProcessPayment(ctx context.Context, userID string, in ProcessPaymentInput) (PaymentOutput, error) {
	if userID == "" {
		return PaymentOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.OrderID <= 0 {
		return PaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" || len(method) > 50 {
		return PaymentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	var out PaymentOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByIDForUpdate(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if order.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if order.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusBadRequest, "order is not payable")
		}

		res, err := u.gateway.Charge(ctx, order.ID, order.TotalAmount, method)
		if err != nil {
			log.Error().Err(err).Int64("order_id", order.ID).Msg("payment gateway charge failed")
			return NewHTTPError(http.StatusBadGateway, "payment gateway unavailable")
		}

		status := model.PaymentStatusCompleted
		orderStatus := model.OrderStatusPaid
		msg := "Payment successful"
		if !res.Approved {
			status = model.PaymentStatusFailed
			orderStatus = model.OrderStatusFailed
			msg = "Payment failed"
		}

		_, err = r.Payments().Create(ctx, model.Payment{
			OrderID:       order.ID,
			UserID:        userID,
			Amount:        order.TotalAmount,
			PaymentMethod: method,
			Status:        status,
			TransactionID: res.Reference,
			CreatedAt:     time.Now(),
		})
		if err != nil {
			log.Error().Err(err).Int64("order_id", order.ID).Msg("payment record failed")
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Orders().UpdateStatus(ctx, order.ID, orderStatus); err != nil {
			log.Error().Err(err).Int64("order_id", order.ID).Msg("order status update failed")
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PaymentOutput{
			PaymentID: res.Reference,
			Status:    string(status),
			Message:   msg,
		}
		return nil
	})
	if err != nil {
		return PaymentOutput{}, err
	}

	return out, nil
}

func (u *PaymentUsecase) ListMyPayments(ctx context.Context, userID string) ([]model.Payment, error) {
	if userID == "" {
		return []model.Payment{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	payments, err := u.payments.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Payment{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return payments, nil
}
