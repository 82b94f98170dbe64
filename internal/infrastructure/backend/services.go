package backend

import (
	"context"
	"encoding/json"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

var (
	_ ports.CategoriaService = (*CategoriaService)(nil)
	_ ports.ProductoService  = (*ProductoService)(nil)
	_ ports.VentaService     = (*VentaService)(nil)
	_ ports.RolService       = (*RolService)(nil)
)

// CategoriaService CRUD de categorías.
type CategoriaService struct{ crud[entity.Categoria] }

// NewCategoriaService construye el servicio sobre un cliente (normalmente con token).
func NewCategoriaService(c *Client) *CategoriaService {
	return &CategoriaService{crud[entity.Categoria]{c: c, path: pathCategorias}}
}

func (s *CategoriaService) Create(ctx context.Context, in entity.Categoria) (*entity.Categoria, error) {
	return s.create(ctx, in)
}

func (s *CategoriaService) Update(ctx context.Context, id int64, in entity.Categoria) (*entity.Categoria, error) {
	return s.update(ctx, id, in)
}

// ProductoService CRUD de productos.
type ProductoService struct{ crud[entity.Producto] }

func NewProductoService(c *Client) *ProductoService {
	return &ProductoService{crud[entity.Producto]{c: c, path: pathProductos}}
}

func (s *ProductoService) Create(ctx context.Context, in entity.Producto) (*entity.Producto, error) {
	return s.create(ctx, newProductoPayload(in))
}

func (s *ProductoService) Update(ctx context.Context, id int64, in entity.Producto) (*entity.Producto, error) {
	return s.update(ctx, id, newProductoPayload(in))
}

// VentaService CRUD de ventas.
type VentaService struct{ crud[entity.Venta] }

func NewVentaService(c *Client) *VentaService {
	return &VentaService{crud[entity.Venta]{c: c, path: pathVentas}}
}

func (s *VentaService) Create(ctx context.Context, in entity.Venta) (*entity.Venta, error) {
	return s.create(ctx, newVentaPayload(in))
}

func (s *VentaService) Update(ctx context.Context, id int64, in entity.Venta) (*entity.Venta, error) {
	return s.update(ctx, id, newVentaPayload(in))
}

// RolService solo lectura de roles.
type RolService struct{ crud[entity.Rol] }

func NewRolService(c *Client) *RolService {
	return &RolService{crud[entity.Rol]{c: c, path: pathRoles}}
}

// productoPayload producto con los precios como números JSON, como los espera el backend.
// Los campos externos tapan a los de entity.Producto con el mismo nombre JSON.
type productoPayload struct {
	entity.Producto
	PrecioDia   json.Number `json:"precio_dia"`
	PrecioNoche json.Number `json:"precio_noche"`
}

func newProductoPayload(p entity.Producto) productoPayload {
	return productoPayload{
		Producto:    p,
		PrecioDia:   json.Number(p.PrecioDia.String()),
		PrecioNoche: json.Number(p.PrecioNoche.String()),
	}
}

// ventaPayload venta con total y precios del producto como números JSON.
type ventaPayload struct {
	entity.Venta
	Producto productoPayload `json:"producto"`
	Total    json.Number     `json:"total"`
}

func newVentaPayload(v entity.Venta) ventaPayload {
	return ventaPayload{
		Venta:    v,
		Producto: newProductoPayload(v.Producto),
		Total:    json.Number(v.Total.String()),
	}
}
