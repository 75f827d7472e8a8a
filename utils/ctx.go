package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user id set by the auth
// middleware. ok is false when the key is missing or mistyped — a route
// registered without the guard fails loudly instead of acting as user 0.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userId")
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
