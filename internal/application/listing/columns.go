package listing

import (
	"cmp"
	"strconv"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

func byID[T any](id func(T) int64) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(id(a), id(b)) }
}

// CategoriaColumns columnas de la tabla de categorías.
var CategoriaColumns = []Column[entity.Categoria]{
	{Key: "id", Label: "ID", Text: func(c entity.Categoria) string { return strconv.FormatInt(c.ID, 10) },
		Cmp: byID(func(c entity.Categoria) int64 { return c.ID })},
	{Key: "nombre", Label: "Nombre", Text: func(c entity.Categoria) string { return c.Nombre }},
}

// EmpleadoColumns columnas de la tabla de empleados.
var EmpleadoColumns = []Column[entity.Empleado]{
	{Key: "id", Label: "ID", Text: func(e entity.Empleado) string { return strconv.FormatInt(e.ID, 10) },
		Cmp: byID(func(e entity.Empleado) int64 { return e.ID })},
	{Key: "nombre", Label: "Nombre", Text: func(e entity.Empleado) string { return e.NombreCompleto() }},
	{Key: "username", Label: "Usuario", Text: func(e entity.Empleado) string { return e.Username }},
	{Key: "correo", Label: "Correo", Text: func(e entity.Empleado) string { return e.Correo }},
	{Key: "telefono", Label: "Teléfono", Text: func(e entity.Empleado) string { return strconv.FormatInt(e.Telefono, 10) }},
	{Key: "turno", Label: "Turno", Text: func(e entity.Empleado) string { return e.Turno }},
	{Key: "edad", Label: "Edad", Text: func(e entity.Empleado) string { return strconv.Itoa(e.Edad) },
		Cmp: func(a, b entity.Empleado) int { return cmp.Compare(a.Edad, b.Edad) }},
}

// ProductoColumns columnas de la tabla de productos.
var ProductoColumns = []Column[entity.Producto]{
	{Key: "id", Label: "ID", Text: func(p entity.Producto) string { return strconv.FormatInt(p.ID, 10) },
		Cmp: byID(func(p entity.Producto) int64 { return p.ID })},
	{Key: "nombre", Label: "Nombre", Text: func(p entity.Producto) string { return p.Nombre }},
	{Key: "categoria", Label: "Categoría", Text: func(p entity.Producto) string { return p.Categoria.Nombre }},
	{Key: "proveedor", Label: "Proveedor", Text: func(p entity.Producto) string { return p.Proveedor }},
	{Key: "cantidad", Label: "Stock", Text: func(p entity.Producto) string { return strconv.Itoa(p.Cantidad) },
		Cmp: func(a, b entity.Producto) int { return cmp.Compare(a.Cantidad, b.Cantidad) }},
	{Key: "precio_dia", Label: "Precio día", Text: func(p entity.Producto) string { return p.PrecioDia.StringFixed(2) },
		Cmp: func(a, b entity.Producto) int { return a.PrecioDia.Cmp(b.PrecioDia) }},
	{Key: "precio_noche", Label: "Precio noche", Text: func(p entity.Producto) string { return p.PrecioNoche.StringFixed(2) },
		Cmp: func(a, b entity.Producto) int { return a.PrecioNoche.Cmp(b.PrecioNoche) }},
	{Key: "fecha_ingreso", Label: "Ingreso", Text: func(p entity.Producto) string { return p.FechaIngreso }},
}

// VentaColumns columnas de la tabla de ventas.
var VentaColumns = []Column[entity.Venta]{
	{Key: "id", Label: "ID", Text: func(v entity.Venta) string { return strconv.FormatInt(v.ID, 10) },
		Cmp: byID(func(v entity.Venta) int64 { return v.ID })},
	{Key: "fecha", Label: "Fecha", Text: func(v entity.Venta) string { return v.FechaVenta }},
	{Key: "cliente", Label: "Cliente", Text: func(v entity.Venta) string { return v.NombreCliente }},
	{Key: "producto", Label: "Producto", Text: func(v entity.Venta) string { return v.Producto.Nombre }},
	{Key: "vendedor", Label: "Vendedor", Text: func(v entity.Venta) string { return v.Empleado.NombreCompleto() }},
	{Key: "cantidad", Label: "Cantidad", Text: func(v entity.Venta) string { return strconv.Itoa(v.Cantidad) },
		Cmp: func(a, b entity.Venta) int { return cmp.Compare(a.Cantidad, b.Cantidad) }},
	{Key: "total", Label: "Total", Text: func(v entity.Venta) string { return v.Total.StringFixed(2) },
		Cmp: func(a, b entity.Venta) int { return a.Total.Cmp(b.Total) }},
	{Key: "metodo_pago", Label: "Pago", Text: func(v entity.Venta) string { return v.MetodoPago }},
}
