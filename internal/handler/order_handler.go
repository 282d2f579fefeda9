package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CreateOrderRequest struct {
	UserID string                   `json:"user_id"`
	Items  []usecase.OrderItemInput `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/orders", authMW)
	g.POST("", h.createOrder)
	g.GET("", h.listOrders)
	g.GET("/:order_id", h.getOrder)
	// Paymentからのコールバック専用
	g.POST("/:order_id/payment", h.markPaid)
}

func (h *OrderHandler) createOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID: req.UserID,
		Items:  req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listOrders(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 未知IDは404ではなく200でエラーオブジェクトを返す（既存クライアント互換）。
func (h *OrderHandler) getOrder(c echo.Context) error {
	out, found, err := h.uc.GetOrder(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusOK, ErrorResponse{Error: "Order not found"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) markPaid(c echo.Context) error {
	out, err := h.uc.MarkPaid(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
