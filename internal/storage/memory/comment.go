package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bloghub/internal/auth"
	"bloghub/models"
)

type CommentMemoryStorage struct {
	mu       sync.Mutex
	comments map[uint]*models.Comment
	nextID   uint
}

func NewCommentMemoryStorage() *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
	}
}

// Create stamps the author from ctx. Post existence is the caller's
// concern; handlers load the post before accepting a comment on it.
func (s *CommentMemoryStorage) Create(ctx context.Context, postID uint, text string) (*models.Comment, error) {
	u, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user from context: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Comment{
		Text:     text,
		AuthorID: u.ID,
		PostID:   postID,
	}
	c.ID = s.nextID
	s.nextID++

	s.comments[c.ID] = c
	return c, nil
}

func (s *CommentMemoryStorage) ByPost(postID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })

	return comments, nil
}

func (s *CommentMemoryStorage) deleteByPost(postID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
}
