package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunhub/apperrors"
)

// respondError maps a service error to an HTTP status and the standard error
// envelope
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindInvalidArgument, apperrors.KindInvalidState:
		status = http.StatusBadRequest
	case apperrors.KindConflict:
		status = http.StatusConflict
	}

	ctx.JSON(status, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

// respondBadRequest reports a request body or parameter binding failure
func respondBadRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
