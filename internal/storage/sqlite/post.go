package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"bloghub/internal/auth"
	"bloghub/internal/post"
	"bloghub/models"
)

// publish dates are stored as display strings, e.g. "April 04, 2024"
const dateFormat = "January 02, 2006"

type PostSqliteStorage struct{}

func NewPostSqliteStorage() *PostSqliteStorage {
	return &PostSqliteStorage{}
}

func (s *PostSqliteStorage) Create(ctx context.Context, in post.Input) (*models.BlogPost, error) {
	u, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user from context: %w", err)
	}

	var existing models.BlogPost
	if err := DB.Where("title = ?", in.Title).First(&existing).Error; err == nil {
		return nil, post.ErrDuplicateTitle
	}

	p := &models.BlogPost{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
		Date:     time.Now().Format(dateFormat),
		Author:   u.Name,
		AuthorID: u.ID,
	}

	if err := DB.Create(p).Error; err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return p, nil
}

func (s *PostSqliteStorage) ByID(id uint) (*models.BlogPost, error) {
	var p models.BlogPost
	err := DB.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return &p, nil
}

func (s *PostSqliteStorage) All() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := DB.Order("id").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not list posts: %w", err)
	}

	return posts, nil
}

func (s *PostSqliteStorage) Update(id uint, in post.Input) (*models.BlogPost, error) {
	p, err := s.ByID(id)
	if err != nil {
		return nil, err
	}

	var existing models.BlogPost
	err = DB.Where("title = ? AND id <> ?", in.Title, id).First(&existing).Error
	if err == nil {
		return nil, post.ErrDuplicateTitle
	}

	// id, date and author stay as they were created
	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Body = in.Body
	p.ImgURL = in.ImgURL

	if err := DB.Save(p).Error; err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return p, nil
}

func (s *PostSqliteStorage) Delete(id uint) error {
	p, err := s.ByID(id)
	if err != nil {
		return err
	}

	// hard delete: a soft-deleted row would keep holding the title
	// against the unique index
	if err := DB.Unscoped().Where("post_id = ?", id).Delete(models.Comment{}).Error; err != nil {
		return fmt.Errorf("could not delete comments of post: %w", err)
	}

	if err := DB.Unscoped().Delete(p).Error; err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}
