// internal/handlers/artwork.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type ArtworkHandler struct {
	artworks *services.ArtworkService
}

func NewArtworkHandler(artworks *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{artworks: artworks}
}

// GET /artworks
func (h *ArtworkHandler) List(c *gin.Context) {
	artworks, err := h.artworks.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtworkList(artworks))
}

// GET /artworks/:id
func (h *ArtworkHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Artwork")
	if !ok {
		return
	}

	artwork, err := h.artworks.Get(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtworkDetail(artwork))
}

// POST /artworks
func (h *ArtworkHandler) Create(c *gin.Context) {
	var req services.CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artwork, err := h.artworks.Create(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.CreatedResponse(c, views.NewArtworkDetail(artwork))
}

// PATCH /artworks/:id
func (h *ArtworkHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Artwork")
	if !ok {
		return
	}

	var req services.UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artwork, err := h.artworks.Update(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtworkDetail(artwork))
}

// DELETE /artworks/:id
func (h *ArtworkHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Artwork")
	if !ok {
		return
	}

	if err := h.artworks.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.MessageResponse(c, "Artwork successfully deleted")
}
