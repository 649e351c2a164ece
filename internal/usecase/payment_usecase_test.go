package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"bookstore/internal/domain/model"
	"bookstore/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) Charge(ctx context.Context, orderID int64, amountCents int64, method string) (payment.Result, error) {
	args := m.Called(ctx, orderID, amountCents, method)
	res, _ := args.Get(0).(payment.Result)
	return res, args.Error(1)
}

func newPaymentFixture() (*OrderRepoMock, *PaymentRepoMock, *GatewayMock, *PaymentUsecase) {
	orders := new(OrderRepoMock)
	payments := new(PaymentRepoMock)
	gateway := new(GatewayMock)

	// the tx sees the same mocks so status updates are assertable
	tx := &TxManagerMock{Repos: &TxReposStub{
		orders:   orders,
		payments: payments,
	}}
	tx.On("WithinTx", mock.Anything).Return(nil)

	return orders, payments, gateway, NewPaymentUsecase(tx, payments, gateway)
}

func TestProcessPaymentApproved(t *testing.T) {
	orders, payments, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPending, TotalAmount: 2500,
	}, nil)

	// charged amount comes from the stored order, not the caller
	gateway.On("Charge", mock.Anything, int64(42), int64(2500), "card").Return(payment.Result{
		Approved: true, Reference: "pay_abc",
	}, nil)

	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 42 && p.UserID == "u1" &&
			p.Amount == 2500 && p.Status == model.PaymentStatusCompleted &&
			p.TransactionID == "pay_abc"
	})).Return(int64(1), nil)
	orders.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusPaid).Return(nil)

	out, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})

	assert.NoError(t, err)
	assert.Equal(t, "pay_abc", out.PaymentID)
	assert.Equal(t, "completed", out.Status)
	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestProcessPaymentDeclined(t *testing.T) {
	orders, payments, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPending, TotalAmount: 2500,
	}, nil)
	gateway.On("Charge", mock.Anything, int64(42), int64(2500), "card").Return(payment.Result{
		Approved: false, Reference: "pay_def", Reason: "insufficient_funds",
	}, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.Status == model.PaymentStatusFailed
	})).Return(int64(2), nil)
	orders.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusFailed).Return(nil)

	out, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})

	assert.NoError(t, err)
	assert.Equal(t, "failed", out.Status)
	assert.Equal(t, "Payment failed", out.Message)
}

func TestProcessPaymentForeignOrderHidden(t *testing.T) {
	orders, payments, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "someone-else", Status: model.OrderStatusPending,
	}, nil)

	_, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProcessPaymentAlreadyPaid(t *testing.T) {
	orders, _, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPaid, TotalAmount: 2500,
	}, nil)

	_, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Two attempts on the same pending order serialize on the row lock.
// The second attempt re-reads the order after the first committed,
// sees it paid, and must not reach the gateway.
func TestProcessPaymentDuplicateAttemptChargesOnce(t *testing.T) {
	orders, payments, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPending, TotalAmount: 2500,
	}, nil).Once()
	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPaid, TotalAmount: 2500,
	}, nil).Once()

	gateway.On("Charge", mock.Anything, int64(42), int64(2500), "card").Return(payment.Result{
		Approved: true, Reference: "pay_abc",
	}, nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	orders.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusPaid).Return(nil)

	out, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})
	assert.NoError(t, err)
	assert.Equal(t, "completed", out.Status)

	_, err = uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	gateway.AssertNumberOfCalls(t, "Charge", 1)
	payments.AssertNumberOfCalls(t, "Create", 1)
	orders.AssertExpectations(t)
}

func TestProcessPaymentGatewayDown(t *testing.T) {
	orders, payments, gateway, uc := newPaymentFixture()

	orders.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: "u1", Status: model.OrderStatusPending, TotalAmount: 2500,
	}, nil)
	gateway.On("Charge", mock.Anything, int64(42), int64(2500), "card").Return(payment.Result{}, errors.New("timeout"))

	_, err := uc.ProcessPayment(context.Background(), "u1", ProcessPaymentInput{OrderID: 42, PaymentMethod: "card"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Status)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
