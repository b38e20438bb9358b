// internal/handlers/auth.go
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/config"
	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type AuthHandler struct {
	auth *services.AuthService
	cfg  config.SessionConfig
}

func NewAuthHandler(auth *services.AuthService, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, err := h.auth.Signup(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, views.NewUserSummary(user))
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.SetCookie(h.cfg.CookieName, token, h.cfg.TTL*3600, "/", "", h.cfg.Secure, true)
	utils.MessageResponse(c, fmt.Sprintf("welcome back, %s!", user.UserName))
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, exists := c.Get("session_token"); exists {
		if t, ok := token.(string); ok {
			h.auth.Logout(t)
		}
	}

	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.Secure, true)
	utils.MessageResponse(c, "User logged out successfully")
}
