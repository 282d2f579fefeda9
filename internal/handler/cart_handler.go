package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemResponse struct {
	Message string                     `json:"message"`
	Cart    []usecase.CartLineResponse `json:"cart"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("/cart", authMW)
	g.POST("/:user_id/add", h.addItem)
	g.GET("/:user_id", h.getCart)
	g.DELETE("/:user_id/clear", h.clearCart)
}

// クエリパラメータ product_id は必須、quantity は省略時1。
func (h *CartHandler) addItem(c echo.Context) error {
	userID := c.Param("user_id")

	productID, err := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	quantity := int64(1)
	if q := c.QueryParam("quantity"); q != "" {
		quantity, err = strconv.ParseInt(q, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
		}
	}

	out, err := h.uc.AddItem(c.Request().Context(), userID, productID, quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, AddItemResponse{
		Message: "Item added to cart",
		Cart:    out.Cart,
	})
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), c.Param("user_id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}
