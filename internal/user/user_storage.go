package user

import (
	"errors"

	"bloghub/models"
)

var (
	// ErrEmailTaken is returned by Register when the email already belongs to an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and password mismatch,
	// so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

type Store interface {
	// Register creates the account with a bcrypt password hash. The first
	// account ever registered becomes the admin.
	Register(email, password, name string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	ByID(id uint) (*models.User, error)
}
