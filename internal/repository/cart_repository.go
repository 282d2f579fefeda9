package repository

import (
	"context"

	"app/internal/domain/model"
)

// カート明細は追記とユーザー単位の全削除だけ。
type CartRepository interface {
	Append(ctx context.Context, item model.CartItem) error
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	Clear(ctx context.Context, userID string) error
}
