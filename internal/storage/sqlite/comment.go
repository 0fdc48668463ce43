package sqlite

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"bloghub/internal/auth"
	"bloghub/internal/comment"
	"bloghub/models"
)

type CommentSqliteStorage struct{}

func NewCommentSqliteStorage() *CommentSqliteStorage {
	return &CommentSqliteStorage{}
}

func (s *CommentSqliteStorage) Create(ctx context.Context, postID uint, text string) (*models.Comment, error) {
	u, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user from context: %w", err)
	}

	var p models.BlogPost
	err = DB.First(&p, postID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, comment.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	c := &models.Comment{
		Text:     text,
		AuthorID: u.ID,
		PostID:   p.ID,
	}

	if err := DB.Create(c).Error; err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return c, nil
}

func (s *CommentSqliteStorage) ByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := DB.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	return comments, nil
}
