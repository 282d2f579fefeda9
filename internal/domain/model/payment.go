package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// 支払いレコード。/pay 1回につき1行作る（dedupなし）ので、
// 同じorder_idの行が複数ありうる。
type Payment struct {
	PaymentID string        `gorm:"primaryKey;type:varchar(36)" json:"payment_id"`
	OrderID   string        `gorm:"type:varchar(36);not null;index" json:"order_id"`
	Amount    float64       `gorm:"not null" json:"amount"`
	Status    PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
