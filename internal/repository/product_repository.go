package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化を約束。書き込みは起動時シードのためだけにある。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, products []model.Product) error
}
