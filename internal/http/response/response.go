// Package response defines the error envelope shared by handlers and
// middleware.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key under which the logging middleware
// stores the request ID.
const RequestIDKey = "request_id"

// Error is the wire shape of every failure response.
type Error struct {
	Error      string `json:"error"`
	Detail     string `json:"detail"`
	RequestID  string `json:"request_id"`
	StatusCode int    `json:"status_code"`
}

// WriteError writes the error envelope with the request ID taken from the
// gin context and aborts the handler chain.
func WriteError(c *gin.Context, status int, name, detail string) {
	c.AbortWithStatusJSON(status, Error{
		Error:      name,
		Detail:     detail,
		RequestID:  c.GetString(RequestIDKey),
		StatusCode: status,
	})
}

// WriteInternalError writes a generic 500 envelope without leaking the
// underlying failure to the client.
func WriteInternalError(c *gin.Context) {
	WriteError(c, http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred")
}
