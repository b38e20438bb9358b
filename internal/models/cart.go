// internal/models/cart.go
package models

import "time"

// Cart is a pending intent to purchase. The composite unique index is the
// source of truth for dedup; the handler-level existence check only decides
// between 200 and 201.
type Cart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cart_user_artwork"`
	ArtworkID uint      `json:"artwork_id" gorm:"not null;uniqueIndex:idx_cart_user_artwork"`
	AddedAt   time.Time `json:"added_at"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}

func (Cart) TableName() string {
	return "cart_items"
}
