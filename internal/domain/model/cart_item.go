package model

import "time"

// カートの明細。追記のみで、個別の更新・削除はしない。
// 挿入順＝カートの並び順。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(255);not null;index" json:"-"`
	ProductID int64     `gorm:"not null" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
