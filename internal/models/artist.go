// internal/models/artist.go
package models

type Artist struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Bio        string    `json:"bio"`
	ProfilePic string    `json:"profile_pic"`
	Email      *string   `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Artworks   []Artwork `json:"artworks,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}
