// internal/services/sell_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type SellService struct {
	db *gorm.DB
}

type UpdateSellRequest struct {
	Price  *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	Status *string `json:"status,omitempty" validate:"omitempty,sell_status"`
}

func NewSellService(db *gorm.DB) *SellService {
	return &SellService{db: db}
}

func (s *SellService) List() ([]models.Sell, error) {
	var sells []models.Sell
	if err := s.db.Preload("Seller").Preload("Artwork").Find(&sells).Error; err != nil {
		return nil, fmt.Errorf("failed to list sell listings: %w", err)
	}
	return sells, nil
}

func (s *SellService) Get(id uint) (*models.Sell, error) {
	var sell models.Sell
	err := s.db.Preload("Seller").Preload("Artwork").First(&sell, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Sell listing")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &sell, nil
}

func (s *SellService) Update(id uint, req *UpdateSellRequest) (*models.Sell, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var sell models.Sell
	if err := s.db.First(&sell, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Sell listing")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Price != nil {
		sell.Price = *req.Price
	}
	if req.Status != nil {
		sell.Status = models.SellStatus(*req.Status)
	}

	if err := s.db.Save(&sell).Error; err != nil {
		return nil, fmt.Errorf("failed to update sell listing: %w", err)
	}
	return &sell, nil
}

func (s *SellService) Delete(id uint) error {
	result := s.db.Delete(&models.Sell{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sell listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Sell listing")
	}
	return nil
}
