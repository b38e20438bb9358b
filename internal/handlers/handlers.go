// internal/handlers/handlers.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/utils"
)

// pathID parses an integral id path segment. A non-integer segment means
// the resource cannot exist, so it reports 404 rather than 400.
func pathID(c *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, resource)
		return 0, false
	}
	return uint(id), true
}
