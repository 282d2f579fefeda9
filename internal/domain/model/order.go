package model

import "time"

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "CREATED"
	OrderStatusPaid    OrderStatus = "PAID"
)

// 注文。statusはCREATED→PAIDの一方向のみ。それ以外のフィールドは作成後に変更しない。
// total_amountは作成時に一度だけ計算し、再計算しない。
type Order struct {
	OrderID     string      `gorm:"primaryKey;type:varchar(36)" json:"order_id"`
	UserID      string      `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
