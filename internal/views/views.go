// internal/views/views.go
//
// Explicit projections of the entity graph into tree-shaped JSON. Each
// (root type, embedding context) pair has its own view type; an embedded
// entity never carries the relation that would lead back to the root, and
// a user's password never appears in any view. Keeping these as plain
// structs keeps the output shape deterministic instead of relying on a
// generic recursion breaker.
package views

import (
	"time"

	"github.com/brushwork/artmarket-backend/internal/models"
)

// Summaries: scalar fields only, safe to embed anywhere.

type ArtistSummary struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Bio        string  `json:"bio"`
	ProfilePic string  `json:"profile_pic"`
	Email      *string `json:"email,omitempty"`
}

type ArtworkSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ArtistID    uint   `json:"artist_id"`
}

type UserSummary struct {
	ID       uint        `json:"id"`
	UserName string      `json:"userName"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

type PurchaseSummary struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ArtworkID uint      `json:"artwork_id"`
	PricePaid int       `json:"price_paid"`
	Date      time.Time `json:"date"`
}

type SellSummary struct {
	ID        uint              `json:"id"`
	Price     int               `json:"price"`
	Status    models.SellStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	SellerID  uint              `json:"seller_id"`
	ArtworkID uint              `json:"artwork_id"`
}

type CartSummary struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ArtworkID uint      `json:"artwork_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Details: root scalars plus embedded summaries of the immediate relations.

type ArtistDetail struct {
	ArtistSummary
	Artworks []ArtworkSummary `json:"artworks"`
}

type ArtworkDetail struct {
	ArtworkSummary
	Artist    *ArtistSummary    `json:"artist,omitempty"`
	Purchases []PurchaseSummary `json:"purchases,omitempty"`
	Sells     []SellSummary     `json:"sells,omitempty"`
	CartItems []CartSummary     `json:"cart_items,omitempty"`
}

type UserDetail struct {
	UserSummary
	Purchases []PurchaseSummary `json:"purchases"`
	Sells     []SellSummary     `json:"sells"`
	CartItems []CartSummary     `json:"cart_items"`
}

type PurchaseDetail struct {
	PurchaseSummary
	User    *UserSummary    `json:"user,omitempty"`
	Artwork *ArtworkSummary `json:"artwork,omitempty"`
}

type SellDetail struct {
	SellSummary
	Seller  *UserSummary    `json:"seller,omitempty"`
	Artwork *ArtworkSummary `json:"artwork,omitempty"`
}

type CartDetail struct {
	CartSummary
	User    *UserSummary    `json:"user,omitempty"`
	Artwork *ArtworkSummary `json:"artwork,omitempty"`
}

// Builders

func NewArtistSummary(a *models.Artist) ArtistSummary {
	return ArtistSummary{
		ID:         a.ID,
		Name:       a.Name,
		Bio:        a.Bio,
		ProfilePic: a.ProfilePic,
		Email:      a.Email,
	}
}

func NewArtworkSummary(a *models.Artwork) ArtworkSummary {
	return ArtworkSummary{
		ID:          a.ID,
		Title:       a.Title,
		Price:       a.Price,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		ArtistID:    a.ArtistID,
	}
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func NewPurchaseSummary(p *models.Purchase) PurchaseSummary {
	return PurchaseSummary{
		ID:        p.ID,
		UserID:    p.UserID,
		ArtworkID: p.ArtworkID,
		PricePaid: p.PricePaid,
		Date:      p.Date,
	}
}

func NewSellSummary(s *models.Sell) SellSummary {
	return SellSummary{
		ID:        s.ID,
		Price:     s.Price,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		SellerID:  s.SellerID,
		ArtworkID: s.ArtworkID,
	}
}

func NewCartSummary(c *models.Cart) CartSummary {
	return CartSummary{
		ID:        c.ID,
		UserID:    c.UserID,
		ArtworkID: c.ArtworkID,
		AddedAt:   c.AddedAt,
	}
}

// NewArtistDetail embeds the artist's artworks as scalar rows; the artwork
// back-reference and its purchase/sell/cart children are cut here.
func NewArtistDetail(a *models.Artist) ArtistDetail {
	d := ArtistDetail{
		ArtistSummary: NewArtistSummary(a),
		Artworks:      make([]ArtworkSummary, 0, len(a.Artworks)),
	}
	for i := range a.Artworks {
		d.Artworks = append(d.Artworks, NewArtworkSummary(&a.Artworks[i]))
	}
	return d
}

func NewArtistList(artists []models.Artist) []ArtistDetail {
	out := make([]ArtistDetail, 0, len(artists))
	for i := range artists {
		out = append(out, NewArtistDetail(&artists[i]))
	}
	return out
}

// NewArtworkDetail embeds the owning artist without that artist's artwork
// collection, and the child rows without their user/seller sides.
func NewArtworkDetail(a *models.Artwork) ArtworkDetail {
	d := ArtworkDetail{ArtworkSummary: NewArtworkSummary(a)}
	if a.Artist != nil {
		s := NewArtistSummary(a.Artist)
		d.Artist = &s
	}
	for i := range a.Purchases {
		d.Purchases = append(d.Purchases, NewPurchaseSummary(&a.Purchases[i]))
	}
	for i := range a.Sells {
		d.Sells = append(d.Sells, NewSellSummary(&a.Sells[i]))
	}
	for i := range a.CartItems {
		d.CartItems = append(d.CartItems, NewCartSummary(&a.CartItems[i]))
	}
	return d
}

func NewArtworkList(artworks []models.Artwork) []ArtworkDetail {
	out := make([]ArtworkDetail, 0, len(artworks))
	for i := range artworks {
		out = append(out, NewArtworkDetail(&artworks[i]))
	}
	return out
}

func NewUserDetail(u *models.User) UserDetail {
	d := UserDetail{
		UserSummary: NewUserSummary(u),
		Purchases:   make([]PurchaseSummary, 0, len(u.Purchases)),
		Sells:       make([]SellSummary, 0, len(u.Sells)),
		CartItems:   make([]CartSummary, 0, len(u.CartItems)),
	}
	for i := range u.Purchases {
		d.Purchases = append(d.Purchases, NewPurchaseSummary(&u.Purchases[i]))
	}
	for i := range u.Sells {
		d.Sells = append(d.Sells, NewSellSummary(&u.Sells[i]))
	}
	for i := range u.CartItems {
		d.CartItems = append(d.CartItems, NewCartSummary(&u.CartItems[i]))
	}
	return d
}

func NewUserList(users []models.User) []UserDetail {
	out := make([]UserDetail, 0, len(users))
	for i := range users {
		out = append(out, NewUserDetail(&users[i]))
	}
	return out
}

func NewPurchaseDetail(p *models.Purchase) PurchaseDetail {
	d := PurchaseDetail{PurchaseSummary: NewPurchaseSummary(p)}
	if p.User != nil {
		u := NewUserSummary(p.User)
		d.User = &u
	}
	if p.Artwork != nil {
		a := NewArtworkSummary(p.Artwork)
		d.Artwork = &a
	}
	return d
}

func NewPurchaseList(purchases []models.Purchase) []PurchaseDetail {
	out := make([]PurchaseDetail, 0, len(purchases))
	for i := range purchases {
		out = append(out, NewPurchaseDetail(&purchases[i]))
	}
	return out
}

func NewSellDetail(s *models.Sell) SellDetail {
	d := SellDetail{SellSummary: NewSellSummary(s)}
	if s.Seller != nil {
		u := NewUserSummary(s.Seller)
		d.Seller = &u
	}
	if s.Artwork != nil {
		a := NewArtworkSummary(s.Artwork)
		d.Artwork = &a
	}
	return d
}

func NewSellList(sells []models.Sell) []SellDetail {
	out := make([]SellDetail, 0, len(sells))
	for i := range sells {
		out = append(out, NewSellDetail(&sells[i]))
	}
	return out
}

func NewCartDetail(c *models.Cart) CartDetail {
	d := CartDetail{CartSummary: NewCartSummary(c)}
	if c.User != nil {
		u := NewUserSummary(c.User)
		d.User = &u
	}
	if c.Artwork != nil {
		a := NewArtworkSummary(c.Artwork)
		d.Artwork = &a
	}
	return d
}

func NewCartList(items []models.Cart) []CartDetail {
	out := make([]CartDetail, 0, len(items))
	for i := range items {
		out = append(out, NewCartDetail(&items[i]))
	}
	return out
}
