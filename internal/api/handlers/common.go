package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorhq/resume-tailor/internal/utils"
)

// Envelope is the uniform response body: {success, data?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), Envelope{
		Success: false,
		Error:   utils.SafeMessage(err),
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: "unauthorized"})
	return "", false
}
