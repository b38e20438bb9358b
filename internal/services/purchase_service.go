// internal/services/purchase_service.go
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

type PurchaseService struct {
	db *gorm.DB
}

type CreatePurchaseRequest struct {
	UserID    *uint      `json:"user_id" validate:"required"`
	ArtworkID *uint      `json:"artwork_id" validate:"required"`
	PricePaid *int       `json:"price_paid" validate:"required,min=0"`
	Date      *time.Time `json:"date" validate:"required"`
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

func (s *PurchaseService) Create(req *CreatePurchaseRequest) (*models.Purchase, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var user models.User
	if err := s.db.First(&user, *req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User (user_id)")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var artwork models.Artwork
	if err := s.db.First(&artwork, *req.ArtworkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artwork (artwork_id)")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	purchase := &models.Purchase{
		UserID:    *req.UserID,
		ArtworkID: *req.ArtworkID,
		PricePaid: *req.PricePaid,
		Date:      *req.Date,
	}
	if err := s.db.Create(purchase).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}

	purchase.User = &user
	purchase.Artwork = &artwork
	return purchase, nil
}

func (s *PurchaseService) Get(id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := s.db.Preload("User").Preload("Artwork").First(&purchase, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Purchase")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &purchase, nil
}

// ListByUser returns a user's purchase history; the user must exist.
func (s *PurchaseService) ListByUser(userID uint) ([]models.Purchase, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var purchases []models.Purchase
	if err := s.db.Preload("Artwork").Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// ConvertToSell turns a purchase into a resale listing: the new Sell
// carries price_paid as its asking price and the buyer as seller, and the
// purchase row is deleted. Both happen or neither does.
func (s *PurchaseService) ConvertToSell(purchaseID uint) (*models.Sell, error) {
	var sell *models.Sell

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		if err := tx.First(&purchase, purchaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Purchase")
			}
			return fmt.Errorf("database error: %w", err)
		}

		sell = &models.Sell{
			Price:     purchase.PricePaid,
			Status:    models.SellStatusListed,
			SellerID:  purchase.UserID,
			ArtworkID: purchase.ArtworkID,
		}
		if err := tx.Create(sell).Error; err != nil {
			return fmt.Errorf("failed to create sell listing: %w", err)
		}

		if err := tx.Delete(&purchase).Error; err != nil {
			return fmt.Errorf("failed to delete purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Seller").Preload("Artwork").First(sell, sell.ID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return sell, nil
}
