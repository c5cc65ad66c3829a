package httpx

import (
	"github.com/gin-gonic/gin"
)

// Error writes the standard error envelope used by every service:
// {"error": {"code": "...", "message": "..."}}
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, "BAD_REQUEST", message)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, message string) {
	Error(c, 404, "NOT_FOUND", message)
}

// Conflict writes a 409 envelope.
func Conflict(c *gin.Context, message string) {
	Error(c, 409, "CONFLICT", message)
}

// Internal writes a 500 envelope.
func Internal(c *gin.Context, err error) {
	Error(c, 500, "INTERNAL", err.Error())
}
