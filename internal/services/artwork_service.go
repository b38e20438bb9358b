// internal/services/artwork_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type ArtworkService struct {
	db *gorm.DB
}

type CreateArtworkRequest struct {
	Title       string `json:"title" validate:"required"`
	Price       *int   `json:"price" validate:"required,min=0"`
	ArtistID    *uint  `json:"artist_id" validate:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type UpdateArtworkRequest struct {
	Title       *string `json:"title,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	ArtistID    *uint   `json:"artist_id,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

func NewArtworkService(db *gorm.DB) *ArtworkService {
	return &ArtworkService{db: db}
}

func (s *ArtworkService) List() ([]models.Artwork, error) {
	var artworks []models.Artwork
	if err := s.db.Preload("Artist").Find(&artworks).Error; err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkService) Get(id uint) (*models.Artwork, error) {
	var artwork models.Artwork
	err := s.db.Preload("Artist").
		Preload("Purchases").Preload("Sells").Preload("CartItems").
		First(&artwork, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artwork")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artwork, nil
}

// Create checks artist_id against the artists table itself; a dangling
// reference is a 404, distinct from the 400 for missing fields.
func (s *ArtworkService) Create(req *CreateArtworkRequest) (*models.Artwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var artist models.Artist
	if err := s.db.First(&artist, *req.ArtistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artist (artist_id)")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	artwork := &models.Artwork{
		Title:       req.Title,
		Price:       *req.Price,
		ArtistID:    *req.ArtistID,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(artwork).Error; err != nil {
		return nil, fmt.Errorf("failed to create artwork: %w", err)
	}

	artwork.Artist = &artist
	return artwork, nil
}

func (s *ArtworkService) Update(id uint, req *UpdateArtworkRequest) (*models.Artwork, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var artwork models.Artwork
	if err := s.db.First(&artwork, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artwork")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.ArtistID != nil {
		var artist models.Artist
		if err := s.db.First(&artist, *req.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Artist (artist_id)")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		artwork.ArtistID = *req.ArtistID
	}
	if req.Title != nil {
		artwork.Title = *req.Title
	}
	if req.Price != nil {
		artwork.Price = *req.Price
	}
	if req.Description != nil {
		artwork.Description = *req.Description
	}
	if req.ImageURL != nil {
		artwork.ImageURL = *req.ImageURL
	}

	if err := s.db.Save(&artwork).Error; err != nil {
		return nil, fmt.Errorf("failed to update artwork: %w", err)
	}

	if err := s.db.Preload("Artist").First(&artwork, artwork.ID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artwork, nil
}

func (s *ArtworkService) Delete(id uint) error {
	result := s.db.Delete(&models.Artwork{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete artwork: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Artwork")
	}
	return nil
}
