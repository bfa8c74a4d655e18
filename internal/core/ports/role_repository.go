package ports

import (
	"context"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

// RoleRepository reads the seeded role catalog from storage.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
}

// RoleCatalog is the in-memory view of the fixed role set, read-only after
// seeding and safe for concurrent reads.
type RoleCatalog interface {
	FindByName(name string) (*domain.Role, error)
	List() []domain.Role
}
