package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/user-management-api/internal/core/ports"
)

// RoleHandler exposes the fixed role catalog for role-selection clients.
type RoleHandler struct {
	catalog ports.RoleCatalog
}

func NewRoleHandler(catalog ports.RoleCatalog) *RoleHandler {
	return &RoleHandler{catalog: catalog}
}

// GetRoles handles GET /get-roles. Any authenticated caller may list roles;
// the payload carries only id and name.
//
// @Summary      List available roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Role
// @Failure      401  {object}  map[string]string
// @Router       /get-roles [get]
func (h *RoleHandler) GetRoles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.List())
}
