package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /pay, /paymentsのHTTP
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

// DI
func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	e.POST("/pay", h.pay, authMW)
	e.GET("/payments/:order_id", h.getPayment, authMW)
}

// クエリパラメータ order_id と amount は必須。
func (h *PaymentHandler) pay(c echo.Context) error {
	orderID := c.QueryParam("order_id")

	amount, err := strconv.ParseFloat(c.QueryParam("amount"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	}

	out, err := h.uc.Pay(c.Request().Context(), orderID, amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) getPayment(c echo.Context) error {
	out, err := h.uc.GetPayment(c.Request().Context(), c.Param("order_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
