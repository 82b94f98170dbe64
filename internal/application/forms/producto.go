package forms

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// PrecioMinimo precio unitario mínimo aceptado (día y noche).
const PrecioMinimo = "0.20"

// ProductoForm campos del formulario de producto. PrecioNoche solo cuenta si ConPrecioNoche.
type ProductoForm struct {
	Nombre         string `form:"nombre" validate:"min=3"`
	Proveedor      string `form:"proveedor" validate:"min=3"`
	Descripcion    string `form:"descripcion" validate:"min=3"`
	Cantidad       string `form:"cantidad" validate:"entero_min=1"`
	PrecioDia      string `form:"precio_dia" validate:"decimal_min=0.20"`
	ConPrecioNoche bool   `form:"con_precio_noche"`
	PrecioNoche    string `form:"precio_noche"`
	FechaIngreso   string `form:"fecha_ingreso" validate:"fecha_reciente"`
	CategoriaID    string `form:"categoria" validate:"entero_min=1"`
}

var mensajesProducto = map[string]string{
	"nombre":        "El nombre debe tener al menos 3 caracteres.",
	"proveedor":     "El proveedor debe tener al menos 3 caracteres.",
	"descripcion":   "La descripción debe tener al menos 3 caracteres.",
	"cantidad":      "La cantidad minima es 1.",
	"precio_dia":    "El precio de día debe ser mayor o igual a 0.20",
	"precio_noche":  "El precio de noche debe ser mayor o igual a 0.20",
	"fecha_ingreso": "La fecha de ingreso debe estar dentro de los últimos 7 días y no puede ser futura.",
	"categoria":     "Seleccione una categoría.",
}

// NewProductoForm formulario vacío con la fecha de hoy.
func (fv *Validator) NewProductoForm() ProductoForm {
	return ProductoForm{FechaIngreso: fv.Hoy()}
}

// ProductoFormFrom formulario precargado para editar.
func ProductoFormFrom(p entity.Producto) ProductoForm {
	f := ProductoForm{
		Nombre:         p.Nombre,
		Proveedor:      p.Proveedor,
		Descripcion:    p.Descripcion,
		Cantidad:       strconv.Itoa(p.Cantidad),
		PrecioDia:      p.PrecioDia.StringFixed(2),
		ConPrecioNoche: p.TienePrecioNoche(),
		FechaIngreso:   p.FechaIngreso,
		CategoriaID:    strconv.FormatInt(p.Categoria.ID, 10),
	}
	if f.ConPrecioNoche {
		f.PrecioNoche = p.PrecioNoche.StringFixed(2)
	}
	return f
}

// Producto valida el formulario; la categoría elegida debe estar en categorias.
// Sin precio de noche, el precio de noche es igual al de día.
func (fv *Validator) Producto(f ProductoForm, categorias []entity.Categoria) (entity.Producto, error) {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Proveedor = strings.TrimSpace(f.Proveedor)
	f.Descripcion = strings.TrimSpace(f.Descripcion)

	errs := fv.check(f, mensajesProducto)
	precioDia := toDecimal(f.PrecioDia)
	precioNoche := precioDia
	if f.ConPrecioNoche {
		pn, err := decimal.NewFromString(strings.TrimSpace(f.PrecioNoche))
		if err != nil || pn.LessThan(decimal.RequireFromString(PrecioMinimo)) {
			errs["precio_noche"] = mensajesProducto["precio_noche"]
		}
		precioNoche = pn
	}

	var categoria *entity.Categoria
	if _, bad := errs["categoria"]; !bad {
		id := atoi64(f.CategoriaID)
		for i := range categorias {
			if categorias[i].ID == id {
				categoria = &categorias[i]
				break
			}
		}
		if categoria == nil {
			errs["categoria"] = mensajesProducto["categoria"]
		}
	}

	if err := result(errs); err != nil {
		return entity.Producto{}, err
	}
	return entity.Producto{
		Nombre:       f.Nombre,
		Proveedor:    f.Proveedor,
		FechaIngreso: strings.TrimSpace(f.FechaIngreso),
		Categoria:    *categoria,
		Cantidad:     atoi(f.Cantidad),
		Descripcion:  f.Descripcion,
		PrecioDia:    precioDia.Round(2),
		PrecioNoche:  precioNoche.Round(2),
	}, nil
}
