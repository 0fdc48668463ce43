package auth

import (
	"context"
	"errors"

	"bloghub/models"
)

type contextKey string

const userKey = contextKey("currentUser")

// WithUser attaches the resolved identity to the request context.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext returns the identity attached by the session middleware.
// An anonymous request yields an error.
func UserFromContext(ctx context.Context) (*models.User, error) {
	u, ok := ctx.Value(userKey).(*models.User)
	if !ok || u == nil {
		return nil, errors.New("no user in context")
	}
	return u, nil
}
