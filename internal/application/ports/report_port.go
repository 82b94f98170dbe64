package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// ResumenPago total acumulado por método de pago.
type ResumenPago struct {
	MetodoPago string
	Ventas     int
	Total      decimal.Decimal
}

// ReporteVentas datos ya agregados del reporte de ventas.
type ReporteVentas struct {
	Tienda      string
	GeneradoPor string
	GeneradoEn  time.Time
	Ventas      []entity.Venta
	PorPago     []ResumenPago
	Unidades    int
	Total       decimal.Decimal
}

// VentasReportGenerator renderiza el reporte de ventas (PDF).
type VentasReportGenerator interface {
	GenerateVentasReport(ctx context.Context, r ReporteVentas) ([]byte, error)
}
