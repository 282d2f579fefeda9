package db

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// SeedProducts は商品テーブルが空のときだけサンプル3件を投入する。
// 2回目以降の起動では何もしない。
func SeedProducts(ctx context.Context, products repo.ProductRepository) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return products.CreateAll(ctx, []model.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, Stock: 10},
		{ID: 2, Name: "Mouse", Price: 29.99, Stock: 50},
		{ID: 3, Name: "Keyboard", Price: 49.99, Stock: 30},
	})
}
