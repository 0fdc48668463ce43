// Package gravatar derives avatar image URLs from user emails.
package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	size    = 100
	defimg  = "retro"
	rating  = "g"
	baseURL = "https://www.gravatar.com/avatar"
)

// URL builds the avatar URL for an email. The email is trimmed and
// lowercased before hashing, so the result is case-insensitive.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s/%x?s=%d&d=%s&r=%s", baseURL, hash, size, defimg, rating)
}
