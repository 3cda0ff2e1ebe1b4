package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	adminKey     = "admin"
	requestIDKey = "requestId"
)

func SetCurrentAdmin(c *gin.Context, identity string) {
	c.Set(adminKey, identity)
}

// CurrentAdmin returns the identity stored by the auth middleware, or "".
func CurrentAdmin(c *gin.Context) string {
	if v, ok := c.Get(adminKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func SetRequestID(c *gin.Context, id string) {
	c.Set(requestIDKey, id)
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
