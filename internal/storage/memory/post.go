package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bloghub/internal/auth"
	"bloghub/internal/post"
	"bloghub/models"
)

const dateFormat = "January 02, 2006"

type PostMemoryStorage struct {
	mu       sync.Mutex
	posts    map[uint]*models.BlogPost
	nextID   uint
	comments *CommentMemoryStorage
}

// NewPostMemoryStorage wires the comment store in so that deleting a post
// drops its comments as well.
func NewPostMemoryStorage(comments *CommentMemoryStorage) *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:    make(map[uint]*models.BlogPost),
		nextID:   1,
		comments: comments,
	}
}

func (s *PostMemoryStorage) Create(ctx context.Context, in post.Input) (*models.BlogPost, error) {
	u, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get user from context: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.Title == in.Title {
			return nil, post.ErrDuplicateTitle
		}
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
	p.ID = s.nextID
	s.nextID++

	s.posts[p.ID] = p
	return p, nil
}

func (s *PostMemoryStorage) ByID(id uint) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.ErrNotFound
	}

	return p, nil
}

func (s *PostMemoryStorage) All() ([]models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, *p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return posts, nil
}

func (s *PostMemoryStorage) Update(id uint, in post.Input) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.ErrNotFound
	}

	for _, other := range s.posts {
		if other.ID != id && other.Title == in.Title {
			return nil, post.ErrDuplicateTitle
		}
	}

	// id, date and author stay as they were created
	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Body = in.Body
	p.ImgURL = in.ImgURL

	return p, nil
}

func (s *PostMemoryStorage) Delete(id uint) error {
	s.mu.Lock()
	if _, exists := s.posts[id]; !exists {
		s.mu.Unlock()
		return post.ErrNotFound
	}
	delete(s.posts, id)
	s.mu.Unlock()

	s.comments.deleteByPost(id)
	return nil
}
