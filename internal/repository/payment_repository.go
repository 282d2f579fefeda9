package repository

import (
	"context"

	"app/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) error
	UpdateStatus(ctx context.Context, paymentID string, status model.PaymentStatus) error

	// 同じorder_idの行が複数あるときは最新の1件を返す。
	FindLatestByOrderID(ctx context.Context, orderID string) (model.Payment, error)
}
