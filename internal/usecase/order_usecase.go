package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	idGen         IDGenerator
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	idGen IDGenerator,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		idGen:         idGen,
	}
}

// 明細の入力。quantity/priceは省略可（省略時は1と0）。
// 価格は申告値をそのまま信じる。Catalogでの再導出はしない。
type OrderItemInput struct {
	ProductID int64    `json:"product_id"`
	Quantity  *int64   `json:"quantity"`
	Price     *float64 `json:"price"`
}

type CreateOrderInput struct {
	UserID string           `json:"user_id"`
	Items  []OrderItemInput `json:"items"`
}

type OrderItemOutput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderOutput struct {
	OrderID     string            `json:"order_id"`
	UserID      string            `json:"user_id"`
	Items       []OrderItemOutput `json:"items"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CreateOrder は合計を作成時に一度だけ計算して注文をCREATEDで保存する。
// total_amount = Σ(quantity × price)。以後の再計算はしない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	orderID := u.idGen.NewID()
	now := time.Now()

	items := make([]model.OrderItem, 0, len(in.Items))
	total := decimal.Zero

	for _, it := range in.Items {
		qty := int64(1)
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		price := 0.0
		if it.Price != nil {
			price = *it.Price
		}

		items = append(items, model.OrderItem{
			OrderID:   orderID,
			ProductID: it.ProductID,
			Quantity:  qty,
			Price:     price,
		})

		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(qty)))
	}

	order := model.Order{
		OrderID:     orderID,
		UserID:      in.UserID,
		Status:      model.OrderStatusCreated,
		TotalAmount: total.InexactFloat64(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.orderItemRepo.CreateAll(ctx, items); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOrderOutput(order, items), nil
}

// GET /orders
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItemRepo.ListByOrderID(ctx, o.OrderID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, toOrderOutput(o, items))
	}
	return out, nil
}

// GetOrder は未知IDをHTTPエラーにしない（ハンドラが200で {"error": ...} を返す）。
// foundで区別する。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (OrderOutput, bool, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, false, nil
	}
	if err != nil {
		return OrderOutput{}, false, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), true, nil
}

// MarkPaid はCREATED→PAIDの一方向遷移。PAID済みの再実行も成功する（冪等）。
// 同時実行のガードは持たず、ストレージの1文アトミック性に任せる。
func (u *OrderUsecase) MarkPaid(ctx context.Context, orderID string) (OrderOutput, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if o.Status != model.OrderStatusPaid {
		if err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusPaid); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
			}
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		o.Status = model.OrderStatusPaid
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return OrderOutput{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		Items:       outItems,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}
