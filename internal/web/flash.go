package web

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// setFlash queues a one-time notice for the next rendered page. The value
// is base64-encoded so it survives cookie character restrictions.
func setFlash(c *gin.Context, msg string) {
	encoded := base64.URLEncoding.EncodeToString([]byte(msg))
	c.SetCookie(flashCookieName, encoded, 60, "/", "", false, true)
}

// popFlash reads and clears the pending notice, if any.
func popFlash(c *gin.Context) string {
	encoded, err := c.Cookie(flashCookieName)
	if err != nil || encoded == "" {
		return ""
	}

	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	msg, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(msg)
}
