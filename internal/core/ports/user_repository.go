package ports

import (
	"context"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user records. The role
// is stored embedded in the user record, so every read returns it explicitly;
// there is no lazy loading.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
