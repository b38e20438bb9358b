// internal/services/purchase_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
)

func TestPurchaseCreateChecksReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db)
	artist := createTestArtist(t, db, "A")
	artwork := createTestArtwork(t, db, artist.ID, "W", 100)
	user := createTestUser(t, db, "alice", "alice@example.com")

	_, err := svc.Create(&CreatePurchaseRequest{
		UserID:    uintPtr(9999),
		ArtworkID: uintPtr(artwork.ID),
		PricePaid: intPtr(100),
		Date:      timePtr(time.Now()),
	})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)

	_, err = svc.Create(&CreatePurchaseRequest{
		UserID:    uintPtr(user.ID),
		ArtworkID: uintPtr(9999),
		PricePaid: intPtr(100),
		Date:      timePtr(time.Now()),
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)

	purchase, err := svc.Create(&CreatePurchaseRequest{
		UserID:    uintPtr(user.ID),
		ArtworkID: uintPtr(artwork.ID),
		PricePaid: intPtr(100),
		Date:      timePtr(time.Now()),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, purchase.PricePaid)
}

func TestConvertToSell(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db)
	artist := createTestArtist(t, db, "A")
	artwork := createTestArtwork(t, db, artist.ID, "W", 750)
	user := createTestUser(t, db, "alice", "alice@example.com")
	purchase := createTestPurchase(t, db, user.ID, artwork.ID, 750)

	sell, err := svc.ConvertToSell(purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, 750, sell.Price, "price_paid carries over as asking price")
	assert.Equal(t, user.ID, sell.SellerID)
	assert.Equal(t, artwork.ID, sell.ArtworkID)
	assert.Equal(t, models.SellStatusListed, sell.Status)

	err = db.First(&models.Purchase{}, purchase.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound), "purchase is consumed by the conversion")
}

func TestConvertToSellAbsentPurchase(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db)

	_, err := svc.ConvertToSell(9999)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)

	var count int64
	db.Model(&models.Sell{}).Count(&count)
	assert.Zero(t, count, "no orphan listing on a failed conversion")
}

func TestListByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewPurchaseService(db)
	artist := createTestArtist(t, db, "A")
	artwork := createTestArtwork(t, db, artist.ID, "W", 10)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	createTestPurchase(t, db, alice.ID, artwork.ID, 10)
	createTestPurchase(t, db, alice.ID, artwork.ID, 12)
	createTestPurchase(t, db, bob.ID, artwork.ID, 11)

	purchases, err := svc.ListByUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)

	_, err = svc.ListByUser(9999)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
