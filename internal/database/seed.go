// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/models"
)

// SeedDemoData loads a small gallery fixture for local development. Seeding
// runs only when the artists table is empty so restarts do not duplicate
// rows, and inside a transaction so a partial fixture never survives.
func SeedDemoData(db *gorm.DB) error {
	var artistCount int64
	db.Model(&models.Artist{}).Count(&artistCount)
	if artistCount > 0 {
		return nil
	}

	if err := WithTransaction(db, seedFixtures); err != nil {
		return err
	}

	logrus.Info("Demo data seeded")
	return nil
}

func seedFixtures(db *gorm.DB) error {
	picassoEmail := "picasso@artmarket.example"
	kahloEmail := "kahlo@artmarket.example"
	artists := []models.Artist{
		{Name: "Pablo Picasso", Bio: "Spanish painter, sculptor, printmaker, ceramicist and stage designer.", Email: &picassoEmail},
		{Name: "Frida Kahlo", Bio: "Mexican painter known for self-portraits and works inspired by nature.", Email: &kahloEmail},
	}
	if err := db.Create(&artists).Error; err != nil {
		return fmt.Errorf("failed to seed artists: %w", err)
	}

	artworks := []models.Artwork{
		{Title: "Les Demoiselles d'Avignon", Price: 1000000, ArtistID: artists[0].ID},
		{Title: "The Weeping Woman", Price: 800000, ArtistID: artists[0].ID},
		{Title: "The Two Fridas", Price: 500000, ArtistID: artists[1].ID},
	}
	if err := db.Create(&artworks).Error; err != nil {
		return fmt.Errorf("failed to seed artworks: %w", err)
	}

	users := []models.User{
		{UserName: "alice", Email: "alice@example.com", Role: models.RoleUser},
		{UserName: "bob", Email: "bob@example.com", Role: models.RoleUser},
	}
	for i := range users {
		if err := users[i].SetPassword("password123"); err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	now := time.Now().UTC()
	purchases := []models.Purchase{
		{UserID: users[0].ID, ArtworkID: artworks[0].ID, PricePaid: 1000000, Date: now},
		{UserID: users[1].ID, ArtworkID: artworks[2].ID, PricePaid: 500000, Date: now},
	}
	if err := db.Create(&purchases).Error; err != nil {
		return fmt.Errorf("failed to seed purchases: %w", err)
	}

	sells := []models.Sell{
		{Price: 1200000, SellerID: users[0].ID, ArtworkID: artworks[0].ID, Status: models.SellStatusListed},
		{Price: 600000, SellerID: users[1].ID, ArtworkID: artworks[2].ID, Status: models.SellStatusListed},
	}
	if err := db.Create(&sells).Error; err != nil {
		return fmt.Errorf("failed to seed sell listings: %w", err)
	}

	return nil
}

// TableCounts reports row counts per table for the diagnostics endpoint.
func TableCounts(db *gorm.DB) (map[string]int64, error) {
	counts := map[string]int64{}
	tables := map[string]interface{}{
		"artists":    &models.Artist{},
		"artworks":   &models.Artwork{},
		"users":      &models.User{},
		"purchases":  &models.Purchase{},
		"sells":      &models.Sell{},
		"cart_items": &models.Cart{},
	}
	for name, model := range tables {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
