package memory

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/user"
	"bloghub/models"
)

type UserMemoryStorage struct {
	mu      sync.Mutex
	users   map[uint]*models.User
	byEmail map[string]uint
	nextID  uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:   make(map[uint]*models.User),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

func (s *UserMemoryStorage) Register(email, password, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, user.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		IsAdmin:  len(s.users) == 0,
	}
	u.ID = s.nextID
	s.nextID++

	s.users[u.ID] = u
	s.byEmail[email] = u.ID

	return u, nil
}

func (s *UserMemoryStorage) Authenticate(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.byEmail[email]
	if !exists {
		return nil, user.ErrInvalidCredentials
	}
	u := s.users[id]

	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return u, nil
}

func (s *UserMemoryStorage) ByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, user.ErrNotFound
	}

	return u, nil
}
