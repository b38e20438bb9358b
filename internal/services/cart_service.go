// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type CartService struct {
	db *gorm.DB
}

type AddToCartRequest struct {
	UserID    *uint `json:"user_id" validate:"required"`
	ArtworkID *uint `json:"artwork_id" validate:"required"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add inserts a cart row, or returns the existing one for the same
// (user, artwork) pair. created reports which happened so the handler can
// choose between 201 and 200.
func (s *CartService) Add(req *AddToCartRequest) (item *models.Cart, created bool, err error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, false, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var user models.User
	if err := s.db.First(&user, *req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.NotFound("User (user_id)")
		}
		return nil, false, fmt.Errorf("database error: %w", err)
	}

	var artwork models.Artwork
	if err := s.db.First(&artwork, *req.ArtworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.NotFound("Artwork (artwork_id)")
		}
		return nil, false, fmt.Errorf("database error: %w", err)
	}

	var existing models.Cart
	err = s.db.Where("user_id = ? AND artwork_id = ?", *req.UserID, *req.ArtworkID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("database error: %w", err)
	}

	row := &models.Cart{
		UserID:    *req.UserID,
		ArtworkID: *req.ArtworkID,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.db.Create(row).Error; err != nil {
		// The unique index is the real dedup guard; a racer that lost the
		// insert still gets the surviving row back.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var winner models.Cart
			if ferr := s.db.Where("user_id = ? AND artwork_id = ?", *req.UserID, *req.ArtworkID).
				First(&winner).Error; ferr == nil {
				return &winner, false, nil
			}
			return nil, false, fmt.Errorf("failed to reload cart row: %w", err)
		}
		return nil, false, fmt.Errorf("failed to add to cart: %w", err)
	}
	return row, true, nil
}

func (s *CartService) ListByUser(userID uint) ([]models.Cart, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var items []models.Cart
	if err := s.db.Preload("Artwork").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return items, nil
}

func (s *CartService) Remove(cartID uint) error {
	result := s.db.Delete(&models.Cart{}, cartID)
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Cart item")
	}
	return nil
}

// Checkout converts every cart row into a purchase at the artwork's
// current price and empties the cart, all in one transaction. An empty
// cart is a validation error, not a trivial success.
func (s *CartService) Checkout(userID uint) ([]models.Purchase, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var purchases []models.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.Cart
		if err := tx.Preload("Artwork").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(items) == 0 {
			return apperrors.Validation("Cart is empty")
		}

		now := time.Now().UTC()
		for i := range items {
			item := &items[i]
			if item.Artwork == nil {
				return apperrors.NotFound("Artwork (artwork_id)")
			}

			purchase := models.Purchase{
				UserID:    userID,
				ArtworkID: item.ArtworkID,
				PricePaid: item.Artwork.Price,
				Date:      now,
			}
			if err := tx.Create(&purchase).Error; err != nil {
				return fmt.Errorf("failed to create purchase: %w", err)
			}
			if err := tx.Delete(item).Error; err != nil {
				return fmt.Errorf("failed to clear cart row: %w", err)
			}
			purchases = append(purchases, purchase)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchases, nil
}
