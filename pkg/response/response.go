package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the JSON error envelope returned on every failure path.
// Message is always human-readable; Error carries a short machine-ish
// label on the chat/resume routes; Details holds field-level validation
// errors or an internal detail string.
type Body struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Fail writes an error response with just a message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

// FailDetails writes an error response with a message and details.
func FailDetails(c *gin.Context, status int, message string, details any) {
	c.JSON(status, Body{Message: message, Details: details})
}

// FailLabeled writes an error response with an error label, a message
// and optional details.
func FailLabeled(c *gin.Context, status int, label, message string, details any) {
	c.JSON(status, Body{Error: label, Message: message, Details: details})
}
