package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/labstack/gommon/log"
)

// CatalogGateway はCatalogサービスへの問い合わせ。検証に使うのはID集合だけ。
type CatalogGateway interface {
	ListProductIDs(ctx context.Context) ([]int64, error)
}

// ValidationPolicy はCatalogに到達できないときの扱い。
// FailOpenは未検証のまま受け入れ、FailClosedは503で拒否する。
type ValidationPolicy string

const (
	FailOpen   ValidationPolicy = "fail_open"
	FailClosed ValidationPolicy = "fail_closed"
)

type CartUsecase struct {
	cartRepo repo.CartRepository
	catalog  CatalogGateway
	policy   ValidationPolicy
	logger   *log.Logger
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	catalog CatalogGateway,
	policy ValidationPolicy,
	logger *log.Logger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		catalog:  catalog,
		policy:   policy,
		logger:   logger,
	}
}

type CartLineResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CartResponse struct {
	UserID string             `json:"user_id"`
	Cart   []CartLineResponse `json:"cart"`
}

// AddItem は商品IDをCatalogで検証してからカート末尾に追記する。
// 検証はlist_productsを1回呼ぶだけで、リトライしない。
// Catalogに到達できないときはポリシー次第（fail_openなら未検証のまま受け入れる）。
func (u *CartUsecase) AddItem(ctx context.Context, userID string, productID int64, quantity int64) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// クライアントが切断しても下流呼び出しは完走させるため、リクエストのctxは引き継がない。
	ids, err := u.catalog.ListProductIDs(context.Background())
	if err != nil {
		if u.policy == FailClosed {
			return CartResponse{}, NewHTTPError(http.StatusServiceUnavailable, "catalog unavailable")
		}
		// fail-open: 存在しない商品IDが入りうる（ゴースト明細）
		u.logger.Warnf("catalog unreachable, accepting product %d for user %s unvalidated: %v", productID, userID, err)
	} else {
		found := false
		for _, id := range ids {
			if id == productID {
				found = true
				break
			}
		}
		if !found {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
	}

	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := u.cartRepo.Append(ctx, item); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// GetCart 未知ユーザーは空のカートを返す（エラーにしない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	return u.buildCartResponse(ctx, userID)
}

// ClearCart 未知ユーザーでもno-opで成功する（冪等）。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if err := u.cartRepo.Clear(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CartUsecase) buildCartResponse(ctx context.Context, userID string) (CartResponse, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CartLineResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartLineResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	return CartResponse{UserID: userID, Cart: lines}, nil
}
