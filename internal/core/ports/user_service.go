package ports

import (
	"context"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user. The validate
// tags are the create-time rule set; rule order within a tag is the priority
// used when reporting the first violated rule per field.
type CreateUserInput struct {
	Name                 string `validate:"required,max=100"`
	LastName             string `validate:"omitempty,max=100"`
	Email                string `validate:"required,email,max=100"`
	Password             string `validate:"required,eqfield=PasswordConfirmation,min=8"`
	PasswordConfirmation string
	Role                 string `validate:"required"`
}

// UpdateUserInput mirrors CreateUserInput except that the password is
// optional: when empty the stored hash is preserved.
type UpdateUserInput struct {
	Name                 string `validate:"required,max=100"`
	LastName             string `validate:"omitempty,max=100"`
	Email                string `validate:"required,email,max=100"`
	Password             string `validate:"omitempty,eqfield=PasswordConfirmation,min=8"`
	PasswordConfirmation string
	Role                 string `validate:"required"`
}

// UserService orchestrates validation, hashing, persistence, and role
// assignment for the user lifecycle.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	// Get returns (nil, nil) when the id does not exist: read endpoints
	// respond 200 with a null user rather than 404.
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) error
	Update(ctx context.Context, id string, in UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
