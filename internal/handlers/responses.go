package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body for API failures
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the generic success body for operations that
// return no entity
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse mirrors the original frontend contract for mutations
// that only need an acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}

// parseIDParam reads a numeric :id path parameter
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
