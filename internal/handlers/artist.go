// internal/handlers/artist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/services"
	"github.com/brushwork/artmarket-backend/internal/utils"
	"github.com/brushwork/artmarket-backend/internal/views"
)

type ArtistHandler struct {
	artists *services.ArtistService
}

func NewArtistHandler(artists *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

// GET /artists
func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.artists.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtistList(artists))
}

// GET /artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Artist")
	if !ok {
		return
	}

	artist, err := h.artists.Get(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtistDetail(artist))
}

// POST /artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var req services.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artist, err := h.artists.Create(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	// A fresh artist has no artworks, so the summary is the whole story.
	utils.CreatedResponse(c, views.NewArtistSummary(artist))
}

// PATCH /artists/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Artist")
	if !ok {
		return
	}

	var req services.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	artist, err := h.artists.Update(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, views.NewArtistSummary(artist))
}

// DELETE /artists/:id
func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Artist")
	if !ok {
		return
	}

	if err := h.artists.Delete(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.MessageResponse(c, "Artist successfully deleted")
}
