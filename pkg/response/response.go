package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body every endpoint writes. The field names are
// part of the HTTP contract; user and errors are omitted when empty.
type Envelope struct {
	Message string            `json:"message"`
	User    any               `json:"user,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// UserView is the non-secret projection of an account returned by the
// register and login endpoints. The password hash has no field here.
type UserView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender string `json:"gender"`
}

// Success writes a 2xx body. user may be nil for endpoints that only
// acknowledge.
func Success(c *gin.Context, status int, message string, user any) {
	c.JSON(status, Envelope{Message: message, User: user})
}

// Error writes a failure body. details carries per-field validation
// messages and is omitted when nil.
func Error(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, Envelope{Message: message, Errors: details})
}
