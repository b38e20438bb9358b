// internal/services/testdb_test.go
package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brushwork/artmarket-backend/internal/database"
	"github.com/brushwork/artmarket-backend/internal/models"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory sqlite database with foreign keys
// enabled, so cascade rules behave like production postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared&_foreign_keys=on", n)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive for
	// the duration of the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func createTestArtist(t *testing.T, db *gorm.DB, name string) *models.Artist {
	t.Helper()
	artist := &models.Artist{Name: name, Bio: "test bio"}
	require.NoError(t, db.Create(artist).Error)
	return artist
}

func createTestArtwork(t *testing.T, db *gorm.DB, artistID uint, title string, price int) *models.Artwork {
	t.Helper()
	artwork := &models.Artwork{Title: title, Price: price, ArtistID: artistID}
	require.NoError(t, db.Create(artwork).Error)
	return artwork
}

func createTestUser(t *testing.T, db *gorm.DB, userName, email string) *models.User {
	t.Helper()
	user := &models.User{UserName: userName, Email: email, Role: models.RoleUser}
	require.NoError(t, user.SetPassword("correct-horse-battery"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPurchase(t *testing.T, db *gorm.DB, userID, artworkID uint, pricePaid int) *models.Purchase {
	t.Helper()
	purchase := &models.Purchase{
		UserID:    userID,
		ArtworkID: artworkID,
		PricePaid: pricePaid,
		Date:      time.Now().UTC(),
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

func uintPtr(v uint) *uint           { return &v }
func intPtr(v int) *int              { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }
