// internal/services/user_service_test.go
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

func TestUserGetWithRelations(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	createTestPurchase(t, db, user.ID, artwork.ID, 2000000)
	createTestSell(t, db, user.ID, artwork.ID, 1800000)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID, ArtworkID: artwork.ID}).Error)

	fetched, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fetched.UserName)
	assert.Len(t, fetched.Purchases, 1)
	assert.Len(t, fetched.Sells, 1)
	assert.Len(t, fetched.CartItems, 1)

	_, err = svc.Get(9999)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestUserPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	updated, err := svc.Update(user.ID, &UpdateUserRequest{UserName: strPtr("alice2")})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.UserName)
	assert.Equal(t, "alice@example.com", updated.Email, "untouched fields survive a patch")

	updated, err = svc.Update(user.ID, &UpdateUserRequest{Role: strPtr("admin")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	updated, err := svc.Update(user.ID, &UpdateUserRequest{Password: strPtr("new-sup3r-secret")})
	require.NoError(t, err)
	assert.NotEqual(t, "new-sup3r-secret", updated.Password, "password is stored hashed")
	assert.NoError(t, updated.CheckPassword("new-sup3r-secret"))
	assert.Error(t, updated.CheckPassword("correct-horse-battery"))
}

func TestUserUpdateRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	for name, req := range map[string]*UpdateUserRequest{
		"malformed email": {Email: strPtr("not-an-email")},
		"short password":  {Password: strPtr("short")},
		"unknown role":    {Role: strPtr("superuser")},
	} {
		_, err := svc.Update(user.ID, req)
		var appErr *apperrors.Error
		require.ErrorAs(t, err, &appErr, name)
		assert.Equal(t, apperrors.KindValidation, appErr.Kind, name)
	}
}

func TestUserUpdateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	_, err := svc.Update(bob.ID, &UpdateUserRequest{Email: strPtr("alice@example.com")})
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	artist := createTestArtist(t, db, "Pablo Picasso")
	artwork := createTestArtwork(t, db, artist.ID, "Guernica", 2000000)
	user := createTestUser(t, db, "alice", "alice@example.com")
	purchase := createTestPurchase(t, db, user.ID, artwork.ID, 2000000)
	cart := &models.Cart{UserID: user.ID, ArtworkID: artwork.ID}
	require.NoError(t, db.Create(cart).Error)

	require.NoError(t, svc.Delete(user.ID))

	assert.True(t, errors.Is(db.First(&models.Purchase{}, purchase.ID).Error, gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(db.First(&models.Cart{}, cart.ID).Error, gorm.ErrRecordNotFound))
	assert.NoError(t, db.First(&models.Artwork{}, artwork.ID).Error, "artworks belong to the artist, not the buyer")

	err := svc.Delete(user.ID)
	var appErr *apperrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}
