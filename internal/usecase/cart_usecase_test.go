package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Append(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type CatalogGatewayMock struct{ mock.Mock }

func (m *CatalogGatewayMock) ListProductIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

// =====================
// Helpers
// =====================

func newTestLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func newCartUsecase(cartRepo *CartRepoMock, catalog *CatalogGatewayMock, policy usecase.ValidationPolicy) *usecase.CartUsecase {
	return usecase.NewCartUsecase(cartRepo, catalog, policy, newTestLogger())
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_Success_LastLineMatches(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	catalog := new(CatalogGatewayMock)
	uc := newCartUsecase(cartRepo, catalog, usecase.FailOpen)

	catalog.On("ListProductIDs", mock.Anything).Return([]int64{1, 2, 3}, nil)
	cartRepo.On("Append", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.UserID == "u1" && it.ProductID == 2 && it.Quantity == 3
	})).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, "u1").Return([]model.CartItem{
		{UserID: "u1", ProductID: 1, Quantity: 1},
		{UserID: "u1", ProductID: 2, Quantity: 3},
	}, nil)

	out, err := uc.AddItem(ctx, "u1", 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, "u1", out.UserID)
	if assert.Equal(t, 2, len(out.Cart)) {
		last := out.Cart[len(out.Cart)-1]
		assert.Equal(t, int64(2), last.ProductID)
		assert.Equal(t, int64(3), last.Quantity)
	}

	cartRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestCartUsecase_AddItem_UnknownProduct_RejectedAndCartUnchanged(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	catalog := new(CatalogGatewayMock)
	uc := newCartUsecase(cartRepo, catalog, usecase.FailOpen)

	catalog.On("ListProductIDs", mock.Anything).Return([]int64{1, 2, 3}, nil)

	_, err := uc.AddItem(ctx, "u1", 99, 1)
	assertErrContains(t, err, "product not found")

	cartRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

// Catalogが落ちていたら未検証のまま受け入れる（fail-open）
func TestCartUsecase_AddItem_CatalogDown_FailOpenAccepts(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	catalog := new(CatalogGatewayMock)
	uc := newCartUsecase(cartRepo, catalog, usecase.FailOpen)

	catalog.On("ListProductIDs", mock.Anything).Return(nil, errors.New("connection refused"))
	cartRepo.On("Append", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.ProductID == 99 && it.Quantity == 1
	})).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, "u1").Return([]model.CartItem{
		{UserID: "u1", ProductID: 99, Quantity: 1},
	}, nil)

	out, err := uc.AddItem(ctx, "u1", 99, 1)
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(out.Cart)) {
		assert.Equal(t, int64(99), out.Cart[0].ProductID)
	}

	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_AddItem_CatalogDown_FailClosedRejects(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	catalog := new(CatalogGatewayMock)
	uc := newCartUsecase(cartRepo, catalog, usecase.FailClosed)

	catalog.On("ListProductIDs", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.AddItem(ctx, "u1", 1, 1)
	assertErrContains(t, err, "catalog unavailable")

	cartRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc := newCartUsecase(new(CartRepoMock), new(CatalogGatewayMock), usecase.FailOpen)

	_, err := uc.AddItem(context.Background(), "u1", 1, 0)
	assertErrContains(t, err, "invalid quantity")
}

func TestCartUsecase_AddItem_InvalidUserID(t *testing.T) {
	uc := newCartUsecase(new(CartRepoMock), new(CatalogGatewayMock), usecase.FailOpen)

	_, err := uc.AddItem(context.Background(), "", 1, 1)
	assertErrContains(t, err, "invalid user_id")
}

// =====================
// GetCart / ClearCart
// =====================

func TestCartUsecase_GetCart_UnknownUser_Empty(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := newCartUsecase(cartRepo, new(CatalogGatewayMock), usecase.FailOpen)

	cartRepo.On("ListByUserID", mock.Anything, "nobody").Return([]model.CartItem{}, nil)

	out, err := uc.GetCart(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Equal(t, "nobody", out.UserID)
	assert.Equal(t, 0, len(out.Cart))

	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_ClearCart_NeverSeenUser_NoError(t *testing.T) {
	cartRepo := new(CartRepoMock)
	uc := newCartUsecase(cartRepo, new(CatalogGatewayMock), usecase.FailOpen)

	cartRepo.On("Clear", mock.Anything, "nobody").Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, "nobody").Return([]model.CartItem{}, nil)

	err := uc.ClearCart(context.Background(), "nobody")
	assert.NoError(t, err)

	out, err := uc.GetCart(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Cart))

	cartRepo.AssertExpectations(t)
}
