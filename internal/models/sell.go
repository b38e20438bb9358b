// internal/models/sell.go
package models

import "time"

// Sell is a resale listing created from a Purchase.
type Sell struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Price     int        `json:"price" gorm:"not null"`
	Status    SellStatus `json:"status" gorm:"type:varchar(20);default:'listed'"`
	CreatedAt time.Time  `json:"created_at"`
	SellerID  uint       `json:"seller_id" gorm:"not null;index"`
	ArtworkID uint       `json:"artwork_id" gorm:"not null;index"`

	Seller  *User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Artwork *Artwork `json:"artwork,omitempty" gorm:"foreignKey:ArtworkID"`
}
