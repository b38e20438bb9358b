// internal/services/artist_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type ArtistService struct {
	db *gorm.DB
}

type CreateArtistRequest struct {
	Name       string  `json:"name" validate:"required"`
	Bio        string  `json:"bio,omitempty"`
	ProfilePic string  `json:"profile_pic,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateArtistRequest carries an arbitrary subset of fields; nil means
// "leave unchanged".
type UpdateArtistRequest struct {
	Name       *string `json:"name,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
}

func NewArtistService(db *gorm.DB) *ArtistService {
	return &ArtistService{db: db}
}

func (s *ArtistService) List() ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Preload("Artworks").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (s *ArtistService) Get(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.Preload("Artworks").First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artist")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artist, nil
}

func (s *ArtistService) Create(req *CreateArtistRequest) (*models.Artist, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	artist := &models.Artist{
		Name:       req.Name,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
		Email:      req.Email,
	}

	if err := s.db.Create(artist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Artist email already registered")
		}
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	return artist, nil
}

func (s *ArtistService) Update(id uint, req *UpdateArtistRequest) (*models.Artist, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var artist models.Artist
	if err := s.db.First(&artist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Artist")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.ProfilePic != nil {
		artist.ProfilePic = *req.ProfilePic
	}
	if req.Email != nil {
		artist.Email = req.Email
	}

	if err := s.db.Save(&artist).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Artist email already registered")
		}
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}
	return &artist, nil
}

// Delete removes the artist; the schema's cascade rules take the artist's
// artworks and their purchase/sell/cart rows with it.
func (s *ArtistService) Delete(id uint) error {
	result := s.db.Delete(&models.Artist{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete artist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Artist")
	}
	return nil
}
