package backend

import (
	"context"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

var _ ports.EmpleadoService = (*EmpleadoService)(nil)

// empleadoPayload forma que espera el backend: roles como lista de referencias por id.
// Password se omite cuando está vacío para no sobrescribir la credencial guardada.
type empleadoPayload struct {
	Username  string       `json:"username"`
	Password  string       `json:"password,omitempty"`
	Nombre    string       `json:"nombre"`
	Apellido  string       `json:"apellido"`
	Correo    string       `json:"correo"`
	Telefono  int64        `json:"telefono"`
	Direccion string       `json:"direccion"`
	Turno     string       `json:"turno"`
	Genero    string       `json:"genero"`
	Edad      int          `json:"edad"`
	Roles     []entity.Rol `json:"roles"`
}

func toEmpleadoPayload(in ports.EmpleadoInput) empleadoPayload {
	rolID := in.RolID
	if rolID <= 0 {
		rolID = entity.RoleVendedorID
	}
	return empleadoPayload{
		Username:  in.Username,
		Password:  in.Password,
		Nombre:    in.Nombre,
		Apellido:  in.Apellido,
		Correo:    in.Correo,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		Turno:     in.Turno,
		Genero:    in.Genero,
		Edad:      in.Edad,
		Roles:     []entity.Rol{{ID: rolID}},
	}
}

// EmpleadoService CRUD de empleados.
type EmpleadoService struct{ crud[entity.Empleado] }

func NewEmpleadoService(c *Client) *EmpleadoService {
	return &EmpleadoService{crud[entity.Empleado]{c: c, path: pathEmpleados}}
}

// Create POST /api/empleados.
func (s *EmpleadoService) Create(ctx context.Context, in ports.EmpleadoInput) (*entity.Empleado, error) {
	return s.create(ctx, toEmpleadoPayload(in))
}

// Update PUT /api/empleados/{id}; sin password si el formulario lo dejó vacío.
func (s *EmpleadoService) Update(ctx context.Context, id int64, in ports.EmpleadoInput) (*entity.Empleado, error) {
	return s.update(ctx, id, toEmpleadoPayload(in))
}
