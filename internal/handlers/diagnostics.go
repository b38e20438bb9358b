// internal/handlers/diagnostics.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brushwork/artmarket-backend/internal/database"
	"github.com/brushwork/artmarket-backend/internal/utils"
)

type DiagnosticsHandler struct {
	db *gorm.DB
}

func NewDiagnosticsHandler(db *gorm.DB) *DiagnosticsHandler {
	return &DiagnosticsHandler{db: db}
}

// GET /
func (h *DiagnosticsHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Art Gallery Marketplace!")
}

// GET /health
func (h *DiagnosticsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GET /seed-check
func (h *DiagnosticsHandler) SeedCheck(c *gin.Context) {
	counts, err := database.TableCounts(h.db)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.OKResponse(c, counts)
}
