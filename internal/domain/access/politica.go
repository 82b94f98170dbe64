// Package access define qué vistas puede abrir cada principal. El menú de navegación,
// las tarjetas de inicio y el router consultan el mismo predicado CanAccess.
package access

import (
	"strings"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// RouteID identificador estable de una vista.
type RouteID string

const (
	RouteInicio     RouteID = "inicio"
	RouteVentas     RouteID = "ventas"
	RouteProductos  RouteID = "productos"
	RouteEmpleados  RouteID = "empleados"
	RouteCategorias RouteID = "categorias"
)

// Route entrada del catálogo de vistas.
type Route struct {
	ID          RouteID
	Path        string
	Label       string
	Descripcion string
	Icon        string
	Privileged  bool // solo ADMIN
}

// HomePath destino de la raíz y de cualquier ruta desconocida o denegada.
const HomePath = "/inicio"

// Routes catálogo en el orden del menú.
var Routes = []Route{
	{ID: RouteInicio, Path: "/inicio", Label: "Inicio", Icon: "bi-house"},
	{ID: RouteProductos, Path: "/productos", Label: "Productos", Icon: "bi-box-seam", Privileged: true,
		Descripcion: "En este apartado puedes ingresar, modificar o eliminar los productos disponibles."},
	{ID: RouteVentas, Path: "/ventas", Label: "Venta", Icon: "bi-basket",
		Descripcion: "En este apartado puedes registrar, modificar o eliminar las ventas realizadas."},
	{ID: RouteEmpleados, Path: "/empleados", Label: "Empleado", Icon: "bi-people", Privileged: true,
		Descripcion: "En este apartado puedes ingresar, modificar o eliminar los empleados de la bodega."},
	{ID: RouteCategorias, Path: "/categorias", Label: "Categoria", Icon: "bi-tag", Privileged: true,
		Descripcion: "En este apartado puedes ingresar, modificar o eliminar las categorías de los productos de la bodega."},
}

// Lookup busca una ruta por id.
func Lookup(id RouteID) (Route, bool) {
	for _, r := range Routes {
		if r.ID == id {
			return r, true
		}
	}
	return Route{}, false
}

// precedencia de roles: el mayor presente es el efectivo. Roles desconocidos valen 0.
var precedencia = map[string]int{
	entity.RoleAdmin:    2,
	entity.RoleVendedor: 1,
}

// EffectiveRole rol que decide la visibilidad. No depende del orden de la lista:
// si el principal tiene ADMIN en cualquier posición, es ADMIN.
func EffectiveRole(p *entity.Empleado) string {
	if p == nil {
		return ""
	}
	best, bestRank := "", -1
	for _, r := range p.Roles {
		name := strings.ToUpper(strings.TrimSpace(r.Nombre))
		rank := precedencia[name]
		if rank > bestRank {
			best, bestRank = name, rank
		}
	}
	return best
}

// IsPrivileged solo ADMIN es privilegiado; cualquier otro rol es restringido.
func IsPrivileged(p *entity.Empleado) bool {
	return EffectiveRole(p) == entity.RoleAdmin
}

// CanAccess predicado único de autorización de vistas.
func CanAccess(p *entity.Empleado, id RouteID) bool {
	if p == nil {
		return false
	}
	r, ok := Lookup(id)
	if !ok {
		return false
	}
	if r.Privileged {
		return IsPrivileged(p)
	}
	return true
}

// VisibleRoutes rutas que el principal puede abrir, en orden de menú.
func VisibleRoutes(p *entity.Empleado) []Route {
	out := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if CanAccess(p, r.ID) {
			out = append(out, r)
		}
	}
	return out
}
