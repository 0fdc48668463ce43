package post

import (
	"context"
	"errors"

	"bloghub/models"
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrDuplicateTitle = errors.New("post title already exists")
)

// Input carries the editable fields of a post. Id, publish date and author
// are stamped on create and never rewritten.
type Input struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

type Store interface {
	// Create stamps the publish date with the current date and the author
	// from the identity on ctx.
	Create(ctx context.Context, in Input) (*models.BlogPost, error)
	ByID(id uint) (*models.BlogPost, error)
	All() ([]models.BlogPost, error)
	Update(id uint, in Input) (*models.BlogPost, error)
	// Delete removes the post and its comments.
	Delete(id uint) error
}
