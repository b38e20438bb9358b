// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type CartHandler struct {
	cart *services.CartService
}

func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// POST /cart — 201 on a genuine insert, 200 with the existing row when the
// (user, artwork) pair is already in the cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	item, created, err := h.cart.Add(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if created {
		utils.CreatedResponse(c, views.NewCartDetail(item))
	} else {
		utils.OKResponse(c, views.NewCartDetail(item))
	}
}

// GET /cart/:user_id
func (h *CartHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id", "User")
	if !ok {
		return
	}

	items, err := h.cart.ListByUser(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewCartList(items))
}

// DELETE /cart/:cart_id
func (h *CartHandler) Remove(c *gin.Context) {
	cartID, ok := pathID(c, "cart_id", "Cart item")
	if !ok {
		return
	}

	if err := h.cart.Remove(cartID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.MessageResponse(c, "Cart item removed")
}

// POST /cart/checkout/:user_id
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := pathID(c, "user_id", "User")
	if !ok {
		return
	}

	purchases, err := h.cart.Checkout(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, views.NewPurchaseList(purchases))
}
