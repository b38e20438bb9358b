// internal/models/artwork.go
package models

type Artwork struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Price       int    `json:"price" gorm:"not null"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ArtistID    uint   `json:"artist_id" gorm:"not null;index"`

	Artist    *Artist    `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Purchases []Purchase `json:"purchases,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
	Sells     []Sell     `json:"sells,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
	CartItems []Cart     `json:"cart_items,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}
