package ports

import (
	"context"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// Authenticator intercambia credenciales por token + empleado en el backend.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (token string, empleado *entity.Empleado, err error)
}

// CategoriaService CRUD de /api/categorias.
type CategoriaService interface {
	List(ctx context.Context) ([]entity.Categoria, error)
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	Create(ctx context.Context, c entity.Categoria) (*entity.Categoria, error)
	Update(ctx context.Context, id int64, c entity.Categoria) (*entity.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

// EmpleadoInput datos del formulario de empleado; RolID es el rol elegido en la vista.
type EmpleadoInput struct {
	entity.Empleado
	RolID int64
}

// EmpleadoService CRUD de /api/empleados.
type EmpleadoService interface {
	List(ctx context.Context) ([]entity.Empleado, error)
	GetByID(ctx context.Context, id int64) (*entity.Empleado, error)
	Create(ctx context.Context, in EmpleadoInput) (*entity.Empleado, error)
	Update(ctx context.Context, id int64, in EmpleadoInput) (*entity.Empleado, error)
	Delete(ctx context.Context, id int64) error
}

// RolService lectura de /api/roles.
type RolService interface {
	List(ctx context.Context) ([]entity.Rol, error)
	GetByID(ctx context.Context, id int64) (*entity.Rol, error)
}

// ProductoService CRUD de /api/productos.
type ProductoService interface {
	List(ctx context.Context) ([]entity.Producto, error)
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	Create(ctx context.Context, p entity.Producto) (*entity.Producto, error)
	Update(ctx context.Context, id int64, p entity.Producto) (*entity.Producto, error)
	Delete(ctx context.Context, id int64) error
}

// VentaService CRUD de /api/ventas.
type VentaService interface {
	List(ctx context.Context) ([]entity.Venta, error)
	GetByID(ctx context.Context, id int64) (*entity.Venta, error)
	Create(ctx context.Context, v entity.Venta) (*entity.Venta, error)
	Update(ctx context.Context, id int64, v entity.Venta) (*entity.Venta, error)
	Delete(ctx context.Context, id int64) error
}

// Services conjunto de servicios de entidad ligados al token de una sesión.
type Services struct {
	Categorias CategoriaService
	Empleados  EmpleadoService
	Roles      RolService
	Productos  ProductoService
	Ventas     VentaService
}

// ServiceFactory construye los servicios con la configuración de petición de una sesión.
// Reemplaza la cabecera Authorization global: cada sesión recibe sus propios servicios.
type ServiceFactory interface {
	ForToken(token string) Services
}
