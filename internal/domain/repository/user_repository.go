package repository

import (
	"context"
	"errors"

	"github.com/minimarket/user-service/internal/domain/entity"
)

// Store outcomes, typed so the handler can pick a status code instead of
// guessing from a boolean.
var (
	// ErrNotFound means no record matched the given identifier or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate means the store rejected an insert with a duplicate key.
	ErrDuplicate = errors.New("user already exists")
	// ErrUnavailable wraps connectivity, timeout and serialization failures.
	ErrUnavailable = errors.New("store unavailable")
)

// UserRepository defines user-record operations over a single collection.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	// Update replaces the whole document; callers supply the full desired state.
	Update(ctx context.Context, id string, u *entity.User) error
	Delete(ctx context.Context, id string) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByOwnerID returns the records whose ownerId field matches ownerID.
	GetByOwnerID(ctx context.Context, ownerID string) ([]entity.User, error)
}
