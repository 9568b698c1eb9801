package repository

import "github.com/designershaven/marketplace-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// Username and UserCode are write-once: Update never touches them.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}
