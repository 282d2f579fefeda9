package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/labstack/gommon/log"
)

// OrderNotifier はOrderサービスへの支払い通知。at-most-onceで、結果は呼び出し元が観測する。
type OrderNotifier interface {
	MarkPaid(ctx context.Context, orderID string) error
}

// NotifyOutcome は通知1回分の型付き結果。
type NotifyOutcome string

const (
	NotifyDelivered NotifyOutcome = "DELIVERED"
	NotifyFailed    NotifyOutcome = "FAILED"
)

type PaymentUsecase struct {
	paymentRepo repo.PaymentRepository
	orders      OrderNotifier
	idGen       IDGenerator
	logger      *log.Logger

	// 観測フック（nil可）。通知結果を支払いの成否に影響させずに外へ出す。
	onNotify func(orderID string, outcome NotifyOutcome)
}

// DI
func NewPaymentUsecase(
	paymentRepo repo.PaymentRepository,
	orders OrderNotifier,
	idGen IDGenerator,
	logger *log.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo: paymentRepo,
		orders:      orders,
		idGen:       idGen,
		logger:      logger,
	}
}

func (u *PaymentUsecase) SetNotifyHook(fn func(orderID string, outcome NotifyOutcome)) {
	u.onNotify = fn
}

type PaymentResponse struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// Pay はローカルに支払いを記録してCOMPLETEDにし、その後Orderへベストエフォートで通知する。
// order_idの実在確認はしない。通知の成否は支払い自体に影響しない。
func (u *PaymentUsecase) Pay(ctx context.Context, orderID string, amount float64) (PaymentResponse, error) {
	if strings.TrimSpace(orderID) == "" {
		return PaymentResponse{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	p := model.Payment{
		PaymentID: u.idGen.NewID(),
		OrderID:   orderID,
		Amount:    amount,
		Status:    model.PaymentStatusPending,
		CreatedAt: time.Now(),
	}
	if err := u.paymentRepo.Create(ctx, p); err != nil {
		return PaymentResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.paymentRepo.UpdateStatus(ctx, p.PaymentID, model.PaymentStatusCompleted); err != nil {
		return PaymentResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	p.Status = model.PaymentStatusCompleted

	// 通知は1回だけ。クライアントが切断しても完走させるため、リクエストのctxは引き継がない。
	outcome := NotifyDelivered
	if err := u.orders.MarkPaid(context.Background(), orderID); err != nil {
		outcome = NotifyFailed
		u.logger.Warnf("mark_paid notification failed for order %s: %v", orderID, err)
	} else {
		u.logger.Infof("order %s marked paid", orderID)
	}
	if u.onNotify != nil {
		u.onNotify(orderID, outcome)
	}

	return PaymentResponse{
		PaymentID: p.PaymentID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Status:    string(p.Status),
	}, nil
}

// GetPayment は該当注文の最新の支払いを返す。
func (u *PaymentUsecase) GetPayment(ctx context.Context, orderID string) (PaymentResponse, error) {
	p, err := u.paymentRepo.FindLatestByOrderID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return PaymentResponse{}, NewHTTPError(http.StatusNotFound, "payment not found")
	}
	if err != nil {
		return PaymentResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return PaymentResponse{
		PaymentID: p.PaymentID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Status:    string(p.Status),
	}, nil
}
