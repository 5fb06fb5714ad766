package models

import "time"

// BasketItem is one line in a user's basket. The composite unique index keeps
// at most one row per (product, owner); add-to-basket upserts against it.
type BasketItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_basket_product_owner" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	OwnerID   string    `gorm:"not null;uniqueIndex:idx_basket_product_owner" json:"owner_id"`
	Amount    int       `gorm:"not null;default:1" json:"amount"`
	AddedAt   time.Time `json:"added_at"`
}
