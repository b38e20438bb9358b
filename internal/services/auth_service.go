// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
	"github.com/brushwork/artmarket-backend/internal/models"
	"github.com/brushwork/artmarket-backend/internal/session"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type AuthService struct {
	db       *gorm.DB
	sessions *session.Store
}

type SignupRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// dummyHash is compared against when no account matches the email, so the
// failure path costs one bcrypt comparison either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("artmarket-timing-pad"), bcrypt.DefaultCost)

func NewAuthService(db *gorm.DB, sessions *session.Store) *AuthService {
	return &AuthService{db: db, sessions: sessions}
}

func (s *AuthService) Signup(req *SignupRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	// Pre-check for a friendlier error; the unique index is the actual
	// guard against a concurrent signup with the same email.
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	user := &models.User{
		UserName: req.UserName,
		Email:    req.Email,
		Role:     models.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password produce the same error.
func (s *AuthService) Login(req *LoginRequest) (*models.User, string, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, "", apperrors.Validation("%s", utils.ValidationMessage(err)).Wrap(err)
	}

	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			return nil, "", apperrors.Auth("Invalid email or password")
		}
		return nil, "", fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, "", apperrors.Auth("Invalid email or password")
	}

	token, err := s.sessions.Create(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return &user, token, nil
}

func (s *AuthService) Logout(token string) {
	s.sessions.Destroy(token)
}
