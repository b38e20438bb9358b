// internal/models/purchase.go
package models

import "time"

// Purchase is a completed transaction. It is never updated in place; the
// sell conversion replaces it with a Sell listing.
type Purchase struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ArtworkID uint      `json:"artwork_id" gorm:"not null;index"`
	PricePaid int       `json:"price_paid" gorm:"not null"`
	Date      time.Time `json:"date"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}
