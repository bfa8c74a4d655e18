package service

import (
	"context"
	"errors"
	"testing"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

type stubRoleRepo struct {
	roles []domain.Role
	err   error
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.roles, nil
}

func loadedCatalog(t *testing.T) *RoleCatalog {
	t.Helper()
	catalog := NewRoleCatalog(&stubRoleRepo{roles: []domain.Role{
		{ID: "role-1", Name: "admin"},
		{ID: "role-2", Name: "reviewer"},
	}})
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return catalog
}

func TestRoleCatalog_FindByName(t *testing.T) {
	catalog := loadedCatalog(t)

	role, err := catalog.FindByName("reviewer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.ID != "role-2" || role.Name != "reviewer" {
		t.Fatalf("unexpected role: %+v", role)
	}
}

func TestRoleCatalog_FindByName_Unknown(t *testing.T) {
	catalog := loadedCatalog(t)

	if _, err := catalog.FindByName("superuser"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleCatalog_List_PreservesSeedOrder(t *testing.T) {
	catalog := loadedCatalog(t)

	roles := catalog.List()
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0].Name != "admin" || roles[1].Name != "reviewer" {
		t.Fatalf("unexpected order: %+v", roles)
	}
}

func TestRoleCatalog_List_ReturnsCopy(t *testing.T) {
	catalog := loadedCatalog(t)

	roles := catalog.List()
	roles[0].Name = "mutated"

	again := catalog.List()
	if again[0].Name != "admin" {
		t.Fatal("List must not expose the internal snapshot")
	}
}

func TestRoleCatalog_Load_EmptyCatalog(t *testing.T) {
	catalog := NewRoleCatalog(&stubRoleRepo{})
	if err := catalog.Load(context.Background()); err == nil {
		t.Fatal("expected error when no roles are seeded")
	}
}

func TestRoleCatalog_Load_RepoError(t *testing.T) {
	catalog := NewRoleCatalog(&stubRoleRepo{err: errors.New("db unavailable")})
	if err := catalog.Load(context.Background()); err == nil {
		t.Fatal("expected error when repo fails")
	}
}
