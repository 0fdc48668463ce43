package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bloghub/internal/user"
	"bloghub/models"
)

const SessionCookieName = "session"

const sessionMaxAge = int(tokenTTL / time.Second)

func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, sessionMaxAge, "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// Middleware restores the session identity on every request. A missing or
// invalid cookie, or a token pointing at a deleted user, leaves the request
// anonymous rather than failing it.
func Middleware(users user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			c.Next()
			return
		}

		userID, err := ParseToken(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		u, err := users.ByID(userID)
		if err != nil {
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), u))
		c.Next()
	}
}

// CurrentUser returns the identity resolved by Middleware, or nil for an
// anonymous request.
func CurrentUser(c *gin.Context) *models.User {
	u, err := UserFromContext(c.Request.Context())
	if err != nil {
		return nil
	}
	return u
}

// RequireAdmin gates post management. Anyone who is not the admin account,
// anonymous visitors included, gets a hard 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
