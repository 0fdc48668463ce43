package comment

import (
	"context"
	"errors"

	"bloghub/models"
)

var ErrPostNotFound = errors.New("post not found")

type Store interface {
	// Create ties the comment to the post and to the identity on ctx.
	Create(ctx context.Context, postID uint, text string) (*models.Comment, error)
	ByPost(postID uint) ([]models.Comment, error)
}
