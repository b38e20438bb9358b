// internal/services/sell_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
)

func createTestSell(t *testing.T, db *gorm.DB, sellerID, artworkID uint, price int) *models.Sell {
	t.Helper()
	sell := &models.Sell{Price: price, SellerID: sellerID, ArtworkID: artworkID, Status: models.SellStatusListed}
	require.NoError(t, db.Create(sell).Error)
	return sell
}

func TestSellGetPreloadsRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewSellService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	sell := createTestSell(t, db, user.ID, artwork.ID, 1500000)

	fetched, err := svc.Get(sell.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500000, fetched.Price)
	assert.Equal(t, models.SellStatusListed, fetched.Status)
	require.NotNil(t, fetched.Seller)
	assert.Equal(t, "alice", fetched.Seller.UserName)
	require.NotNil(t, fetched.Artwork)
	assert.Equal(t, "Guernica", fetched.Artwork.Title)
}

func TestSellUpdatePriceAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewSellService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	sell := createTestSell(t, db, user.ID, artwork.ID, 1500000)

	updated, err := svc.Update(sell.ID, &UpdateSellRequest{Price: intPtr(1200000)})
	require.NoError(t, err)
	assert.Equal(t, 1200000, updated.Price)
	assert.Equal(t, models.SellStatusListed, updated.Status, "untouched fields survive a patch")

	updated, err = svc.Update(sell.ID, &UpdateSellRequest{Status: strPtr("sold")})
	require.NoError(t, err)
	assert.Equal(t, models.SellStatusSold, updated.Status)
	assert.Equal(t, 1200000, updated.Price)
}

func TestSellUpdateRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewSellService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	sell := createTestSell(t, db, user.ID, artwork.ID, 1500000)

	_, err := svc.Update(sell.ID, &UpdateSellRequest{Status: strPtr("pending")})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)

	fetched, err := svc.Get(sell.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SellStatusListed, fetched.Status, "rejected update leaves the row alone")
}

func TestSellDeleteAndAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSellService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	sell := createTestSell(t, db, user.ID, artwork.ID, 1500000)

	require.NoError(t, svc.Delete(sell.ID))

	err := db.First(&models.Sell{}, sell.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = svc.Delete(sell.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
