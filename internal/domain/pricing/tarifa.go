// Package pricing contiene la regla de tarifa día/noche de las ventas (servicio de dominio puro).
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// Tarifa precio unitario aplicable según la hora.
type Tarifa string

const (
	TarifaDia   Tarifa = "dia"
	TarifaNoche Tarifa = "noche"
)

// Límites del horario nocturno: [22:00, 24:00) ∪ [00:00, 05:00).
const (
	InicioNoche = 22
	FinNoche    = 5
)

// IsNight indica si la hora h (0..23) cae en horario nocturno.
func IsNight(h int) bool {
	return h >= InicioNoche || h < FinNoche
}

// TarifaAt tarifa vigente en el instante t, usando la hora local de loc.
func TarifaAt(t time.Time, loc *time.Location) Tarifa {
	if loc != nil {
		t = t.In(loc)
	}
	if IsNight(t.Hour()) {
		return TarifaNoche
	}
	return TarifaDia
}

// PrecioUnitario precio del producto para la tarifa indicada.
func PrecioUnitario(tarifa Tarifa, p entity.Producto) decimal.Decimal {
	if tarifa == TarifaNoche {
		return p.PrecioNoche
	}
	return p.PrecioDia
}

// Total = cantidad × precio unitario de la tarifa.
func Total(tarifa Tarifa, p entity.Producto, cantidad int) decimal.Decimal {
	return PrecioUnitario(tarifa, p).Mul(decimal.NewFromInt(int64(cantidad)))
}

// Cotizacion resultado de aplicar la regla en un instante concreto.
type Cotizacion struct {
	Tarifa         Tarifa          `json:"tarifa"`
	Hora           int             `json:"hora"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	CalculadaEn    time.Time       `json:"calculada_en"`
}

// Cotizar evalúa la regla para el instante now. Se llama en cada cambio de producto o
// cantidad y otra vez al guardar la venta; nunca se reutiliza un resultado anterior.
func Cotizar(now time.Time, loc *time.Location, p entity.Producto, cantidad int) Cotizacion {
	if loc != nil {
		now = now.In(loc)
	}
	tarifa := TarifaAt(now, nil)
	return Cotizacion{
		Tarifa:         tarifa,
		Hora:           now.Hour(),
		PrecioUnitario: PrecioUnitario(tarifa, p),
		Total:          Total(tarifa, p, cantidad),
		CalculadaEn:    now,
	}
}
