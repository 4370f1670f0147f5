package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey  = "userId"
	isGuestKey = "isGuest"

	guestHeader    = "X-Guest-Id"
	guestPrefix    = "guest:"
	maxGuestIDLen  = 64
	AnonymousActor = "anonymous"
)

// Identity records who is calling. A X-Guest-Id header scopes history to
// "guest:<id>"; requests without one share the anonymous history.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := cleanGuestID(c.GetHeader(guestHeader))
		if guestID == "" {
			c.Set(userIDKey, AnonymousActor)
			c.Set(isGuestKey, false)
			c.Next()
			return
		}
		c.Set(userIDKey, guestPrefix+guestID)
		c.Set(isGuestKey, true)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}

func cleanGuestID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxGuestIDLen {
		return ""
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ""
		}
	}
	return id
}
