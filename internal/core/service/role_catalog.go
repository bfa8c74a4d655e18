package service

import (
	"context"
	"fmt"

	"github.com/backoffice/user-management-api/internal/core/domain"
	"github.com/backoffice/user-management-api/internal/core/ports"
)

// RoleCatalog holds the fixed role set in memory. Load runs once at startup,
// after seeding; afterwards the snapshot is read-only and safe for concurrent
// use without locking.
type RoleCatalog struct {
	repo   ports.RoleRepository
	roles  []domain.Role
	byName map[string]domain.Role
}

func NewRoleCatalog(repo ports.RoleRepository) *RoleCatalog {
	return &RoleCatalog{repo: repo, byName: make(map[string]domain.Role)}
}

// Load reads the seeded roles from storage and builds the in-memory snapshot.
func (c *RoleCatalog) Load(ctx context.Context) error {
	roles, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load role catalog: %w", err)
	}
	if len(roles) == 0 {
		return fmt.Errorf("load role catalog: no roles seeded")
	}

	c.roles = roles
	c.byName = make(map[string]domain.Role, len(roles))
	for _, role := range roles {
		c.byName[role.Name] = role
	}
	return nil
}

// FindByName returns the role with the given name, or ErrRoleNotFound.
func (c *RoleCatalog) FindByName(name string) (*domain.Role, error) {
	role, ok := c.byName[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	return &role, nil
}

// List returns the catalog in seed order. Only id and name are carried; the
// shape stays minimal and stable for role-selection clients.
func (c *RoleCatalog) List() []domain.Role {
	out := make([]domain.Role, len(c.roles))
	copy(out, c.roles)
	return out
}
