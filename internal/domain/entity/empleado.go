package entity

import "strings"

// Nombres de rol reconocidos por la consola. Cualquier otro nombre se trata como restringido.
const (
	RoleAdmin    = "ADMIN"
	RoleVendedor = "VENDEDOR"
)

// IDs de rol en el backend; la consola asigna VENDEDOR cuando no se elige ninguno.
const (
	RoleAdminID    int64 = 1
	RoleVendedorID int64 = 2
)

// Rol etiqueta de rol, siempre embebida en un Empleado.
type Rol struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// Empleado es el principal autenticado y también el registro gestionado desde la consola.
// Password solo se envía al backend; Token solo existe en el principal de la sesión.
type Empleado struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Token     string `json:"token,omitempty"`
	Roles     []Rol  `json:"roles,omitempty"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Genero    string `json:"genero"`
	Edad      int    `json:"edad"`
	Telefono  int64  `json:"telefono"`
	Turno     string `json:"turno"`
	Correo    string `json:"correo"`
	Direccion string `json:"direccion"`
}

// NombreCompleto nombre y apellido para listados.
func (e Empleado) NombreCompleto() string {
	return strings.TrimSpace(e.Nombre + " " + e.Apellido)
}

// HasRole indica si el empleado tiene asignado el rol indicado.
func (e Empleado) HasRole(nombre string) bool {
	for _, r := range e.Roles {
		if strings.EqualFold(r.Nombre, nombre) {
			return true
		}
	}
	return false
}

// RolID id de rol a preseleccionar en el formulario de edición.
func (e Empleado) RolID() int64 {
	if e.HasRole(RoleAdmin) {
		return RoleAdminID
	}
	return RoleVendedorID
}
