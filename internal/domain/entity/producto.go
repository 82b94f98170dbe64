package entity

import "github.com/shopspring/decimal"

// Producto producto del catálogo. Categoria es una copia tomada al momento de leerlo.
// PrecioNoche igual a PrecioDia significa que no hay tarifa diferenciada.
type Producto struct {
	ID           int64           `json:"id,omitempty"`
	Nombre       string          `json:"nombre"`
	Proveedor    string          `json:"proveedor"`
	FechaIngreso string          `json:"fecha_ingreso"` // YYYY-MM-DD
	Categoria    Categoria       `json:"categoria"`
	Cantidad     int             `json:"cantidad"`
	Descripcion  string          `json:"descripcion"`
	PrecioDia    decimal.Decimal `json:"precio_dia"`
	PrecioNoche  decimal.Decimal `json:"precio_noche"`
}

// TienePrecioNoche indica si el producto usa una tarifa nocturna distinta.
func (p Producto) TienePrecioNoche() bool {
	return !p.PrecioNoche.Equal(p.PrecioDia)
}
