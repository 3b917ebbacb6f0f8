package response

import (
	"github.com/gin-gonic/gin"
)

// Success writes the standard envelope with success=true. Payload keys are merged
// at the top level so handlers control the exact response shape
// (e.g. "appointment", "dashboard", "employee").
func Success(c *gin.Context, status int, payload gin.H) {
	out := gin.H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	c.JSON(status, out)
}

// Error writes the standard envelope with success=false plus a human message.
// Extra keys carry machine-checkable markers like "error", "status" or "yourRole".
func Error(c *gin.Context, status int, message string, extra gin.H) {
	out := gin.H{
		"success": false,
		"message": message,
	}
	for k, v := range extra {
		out[k] = v
	}
	c.JSON(status, out)
}
