// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/session"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type UserHandler struct {
	users    *services.UserService
	sessions *session.Store
}

func NewUserHandler(users *services.UserService, sessions *session.Store) *UserHandler {
	return &UserHandler{users: users, sessions: sessions}
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewUserList(users))
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "User")
	if !ok {
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewUserDetail(user))
}

// PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "User")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	user, err := h.users.Update(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewUserSummary(user))
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "User")
	if !ok {
		return
	}

	if err := h.users.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	// A deleted account's sessions must not outlive it.
	h.sessions.DestroyUser(id)
	utils.MessageResponse(c, "User successfully deleted")
}
