package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/user-management-api/internal/core/domain"
)

type stubCatalog struct {
	roles []domain.Role
}

func (c *stubCatalog) FindByName(name string) (*domain.Role, error) {
	for _, role := range c.roles {
		if role.Name == name {
			return &role, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (c *stubCatalog) List() []domain.Role {
	return c.roles
}

func TestRoleHandler_GetRoles(t *testing.T) {
	e := echo.New()
	handler := NewRoleHandler(&stubCatalog{roles: []domain.Role{
		{ID: "role-1", Name: "admin"},
		{ID: "role-2", Name: "reviewer"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/get-roles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetRoles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var roles []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &roles); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0]["name"] != "admin" || roles[1]["name"] != "reviewer" {
		t.Fatalf("unexpected roles: %+v", roles)
	}
	// The payload stays minimal: only id and name.
	for _, role := range roles {
		if len(role) != 2 {
			t.Fatalf("role payload must carry only id and name, got %+v", role)
		}
	}
}
