package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/domain/pricing"
)

// VentaForm campos del formulario de venta. El total no se recibe: se calcula al guardar.
type VentaForm struct {
	EmpleadoID    string `form:"empleado"`
	NombreCliente string `form:"nombre_cliente" validate:"min=3,letras"`
	ProductoID    string `form:"producto" validate:"entero_min=1"`
	Cantidad      string `form:"cantidad" validate:"entero_min=1"`
	MetodoPago    string `form:"metodo_pago" validate:"oneof=efectivo tarjeta transferencia"`
}

var mensajesVenta = map[string]string{
	"empleado":       "Seleccione un vendedor.",
	"nombre_cliente": "El nombre debe tener al menos 3 caracteres y solo contener letras.",
	"producto":       "Seleccione un producto.",
	"cantidad":       "La cantidad debe ser mayor que cero y tampoco debe de sobrepasar el stock disponible.",
	"total":          "El total debe ser mayor que cero.",
	"metodo_pago":    "Seleccione un método de pago.",
}

// VentaFormFrom formulario precargado para editar.
func VentaFormFrom(v entity.Venta) VentaForm {
	return VentaForm{
		EmpleadoID:    strconv.FormatInt(v.Empleado.ID, 10),
		NombreCliente: v.NombreCliente,
		ProductoID:    strconv.FormatInt(v.Producto.ID, 10),
		Cantidad:      strconv.Itoa(v.Cantidad),
		MetodoPago:    v.MetodoPago,
	}
}

// VentaOptions contexto de la venta: catálogo, vendedores elegibles y vendedor por defecto.
type VentaOptions struct {
	Productos []entity.Producto
	Empleados []entity.Empleado
	Vendedor  *entity.Empleado // principal de la sesión
	Ahora     time.Time
	Zona      *time.Location
}

// Venta valida y arma la venta con el total recalculado en este instante.
// Si la cantidad supera el stock el error también cumple errors.Is(err, domain.ErrInsufficientStock).
func (fv *Validator) Venta(f VentaForm, opt VentaOptions) (entity.Venta, error) {
	f.NombreCliente = strings.TrimSpace(f.NombreCliente)
	errs := fv.check(f, mensajesVenta)

	var producto *entity.Producto
	if _, bad := errs["producto"]; !bad {
		id := atoi64(f.ProductoID)
		for i := range opt.Productos {
			if opt.Productos[i].ID == id {
				producto = &opt.Productos[i]
				break
			}
		}
		if producto == nil {
			errs["producto"] = mensajesVenta["producto"]
		}
	}

	cantidad := atoi(f.Cantidad)
	sinStock := false
	if producto != nil && cantidad > producto.Cantidad {
		errs["cantidad"] = mensajesVenta["cantidad"]
		sinStock = true
	}

	vendedor, ok := resolverVendedor(f.EmpleadoID, opt)
	if !ok {
		errs["empleado"] = mensajesVenta["empleado"]
	}

	ahora := opt.Ahora
	if ahora.IsZero() {
		ahora = fv.now()
	}
	zona := opt.Zona
	if zona == nil {
		zona = fv.loc
	}

	var cot pricing.Cotizacion
	if producto != nil {
		cot = pricing.Cotizar(ahora, zona, *producto, cantidad)
		if _, bad := errs["cantidad"]; !bad && !cot.Total.IsPositive() {
			errs["total"] = mensajesVenta["total"]
		}
	}

	if err := result(errs); err != nil {
		if sinStock {
			return entity.Venta{}, fmt.Errorf("%w: %w", domain.ErrInsufficientStock, err)
		}
		return entity.Venta{}, err
	}

	return entity.Venta{
		FechaVenta:    ahora.In(zona).Format(time.RFC3339),
		Empleado:      vendedor,
		NombreCliente: f.NombreCliente,
		Producto:      *producto,
		Cantidad:      cantidad,
		Total:         cot.Total.Round(2),
		MetodoPago:    f.MetodoPago,
	}, nil
}

// resolverVendedor empleado elegido, o el principal si no se eligió ninguno.
// La copia nunca lleva token ni contraseña.
func resolverVendedor(idStr string, opt VentaOptions) (entity.Empleado, bool) {
	id := atoi64(idStr)
	if id == 0 || (opt.Vendedor != nil && opt.Vendedor.ID == id) {
		if opt.Vendedor == nil {
			return entity.Empleado{}, false
		}
		return snapshot(*opt.Vendedor), true
	}
	for _, e := range opt.Empleados {
		if e.ID == id {
			return snapshot(e), true
		}
	}
	return entity.Empleado{}, false
}

func snapshot(e entity.Empleado) entity.Empleado {
	e.Token = ""
	e.Password = ""
	return e
}
