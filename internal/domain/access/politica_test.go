package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

func principal(roles ...string) *entity.Empleado {
	p := &entity.Empleado{ID: 7, Username: "aperez", Nombre: "Ana"}
	for i, r := range roles {
		p.Roles = append(p.Roles, entity.Rol{ID: int64(i + 1), Nombre: r})
	}
	return p
}

func TestCanAccess_VendedorNoAbreProductos(t *testing.T) {
	vendedor := principal(entity.RoleVendedor)
	assert.False(t, access.CanAccess(vendedor, access.RouteProductos))
	assert.False(t, access.CanAccess(vendedor, access.RouteEmpleados))
	assert.False(t, access.CanAccess(vendedor, access.RouteCategorias))
	assert.True(t, access.CanAccess(vendedor, access.RouteInicio))
	assert.True(t, access.CanAccess(vendedor, access.RouteVentas))
}

func TestCanAccess_AdminAbreTodo(t *testing.T) {
	admin := principal(entity.RoleAdmin)
	for _, r := range access.Routes {
		assert.True(t, access.CanAccess(admin, r.ID), "ruta %s", r.ID)
	}
}

func TestCanAccess_SinPrincipalORutaDesconocida(t *testing.T) {
	assert.False(t, access.CanAccess(nil, access.RouteInicio))
	assert.False(t, access.CanAccess(principal(entity.RoleAdmin), access.RouteID("reportes")))
}

func TestEffectiveRole_PrecedenciaNoDependeDelOrden(t *testing.T) {
	assert.Equal(t, entity.RoleAdmin, access.EffectiveRole(principal(entity.RoleVendedor, entity.RoleAdmin)))
	assert.Equal(t, entity.RoleAdmin, access.EffectiveRole(principal("admin")))
	assert.Equal(t, entity.RoleVendedor, access.EffectiveRole(principal("CAJERO", entity.RoleVendedor)))
	assert.Equal(t, "CAJERO", access.EffectiveRole(principal("CAJERO")))
	assert.Equal(t, "", access.EffectiveRole(principal()))
	assert.False(t, access.IsPrivileged(principal("CAJERO")))
}

func TestVisibleRoutes_CoincideConCanAccess(t *testing.T) {
	for _, p := range []*entity.Empleado{principal(entity.RoleAdmin), principal(entity.RoleVendedor), principal("OTRO")} {
		visibles := access.VisibleRoutes(p)
		ids := map[access.RouteID]bool{}
		for _, r := range visibles {
			ids[r.ID] = true
		}
		for _, r := range access.Routes {
			assert.Equal(t, access.CanAccess(p, r.ID), ids[r.ID], "ruta %s", r.ID)
		}
	}
	assert.Len(t, access.VisibleRoutes(principal(entity.RoleVendedor)), 2)
	assert.Len(t, access.VisibleRoutes(principal(entity.RoleAdmin)), len(access.Routes))
}
