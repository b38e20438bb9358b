// internal/handlers/sell.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type SellHandler struct {
	sells *services.SellService
}

func NewSellHandler(sells *services.SellService) *SellHandler {
	return &SellHandler{sells: sells}
}

// GET /sells
func (h *SellHandler) List(c *gin.Context) {
	sells, err := h.sells.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewSellList(sells))
}

// GET /sells/:id
func (h *SellHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Sell listing")
	if !ok {
		return
	}

	sell, err := h.sells.Get(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewSellDetail(sell))
}

// PATCH /sells/:id
func (h *SellHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Sell listing")
	if !ok {
		return
	}

	var req services.UpdateSellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	sell, err := h.sells.Update(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewSellSummary(sell))
}

// DELETE /sells/:id
func (h *SellHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Sell listing")
	if !ok {
		return
	}

	if err := h.sells.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.MessageResponse(c, "Sell listing removed")
}
