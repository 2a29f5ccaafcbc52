package repository

import (
	"context"
	"errors"

	"github.com/resumehub/resume-ai/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no account matches the lookup key.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when an insert collides with the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
)

// AccountRepository defines the persistence operations the auth service
// needs. Emails passed in are expected to be normalized already.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, a *entity.Account) error
}
