// internal/handlers/purchase.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type PurchaseHandler struct {
	purchases *services.PurchaseService
}

func NewPurchaseHandler(purchases *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// POST /purchases (session required)
func (h *PurchaseHandler) Create(c *gin.Context) {
	if _, ok := utils.GetUserIDFromContext(c); !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	purchase, err := h.purchases.Create(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, views.NewPurchaseDetail(purchase))
}

// GET /purchases/:id
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Purchase")
	if !ok {
		return
	}

	purchase, err := h.purchases.Get(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewPurchaseDetail(purchase))
}

// GET /purchases/user/:id
func (h *PurchaseHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id", "User")
	if !ok {
		return
	}

	purchases, err := h.purchases.ListByUser(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewPurchaseList(purchases))
}

// Sell converts a purchase into a resale listing. Exposed both as
// DELETE /purchases/:id (the historical wiring) and as the explicit
// POST /purchases/:id/sell.
func (h *PurchaseHandler) Sell(c *gin.Context) {
	id, ok := pathID(c, "id", "Purchase")
	if !ok {
		return
	}

	sell, err := h.purchases.ConvertToSell(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, views.NewSellDetail(sell))
}
