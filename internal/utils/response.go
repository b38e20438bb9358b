// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brushwork/artmarket-backend/internal/apperrors"
)

// Success bodies are the entity view itself (or {"message": ...} for
// delete/logout actions); error bodies are always {"error": ...}.

func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

func InternalErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}

// HandleError translates a service error into the matching status and
// error body. Unclassified errors become opaque 500s.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindValidation, apperrors.KindConflict:
			ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case apperrors.KindNotFound:
			ErrorResponse(c, http.StatusNotFound, appErr.Message)
		case apperrors.KindAuth:
			ErrorResponse(c, http.StatusUnauthorized, appErr.Message)
		default:
			InternalErrorResponse(c)
		}
		return
	}
	InternalErrorResponse(c)
}

func GetUserIDFromContext(c *gin.Context) (uint, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
