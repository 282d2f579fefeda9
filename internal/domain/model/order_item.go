package model

// 注文の明細。価格は呼び出し元が申告したスナップショットで、Catalogからは再導出しない。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string  `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID int64   `gorm:"not null" json:"product_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}
