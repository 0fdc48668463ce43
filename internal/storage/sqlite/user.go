package sqlite

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/user"
	"bloghub/models"
)

type UserSqliteStorage struct{}

func NewUserSqliteStorage() *UserSqliteStorage {
	return &UserSqliteStorage{}
}

func (s *UserSqliteStorage) Register(email, password, name string) (*models.User, error) {
	var existing models.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, user.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The first account ever registered is the admin.
	var count int
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	u := &models.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		IsAdmin:  count == 0,
	}

	if err := DB.Create(u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *UserSqliteStorage) Authenticate(email, password string) (*models.User, error) {
	var u models.User
	err := DB.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return &u, nil
}

func (s *UserSqliteStorage) ByID(id uint) (*models.User, error) {
	var u models.User
	err := DB.First(&u, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return &u, nil
}
