// Package reporting arma el reporte de ventas a partir de la lista traída del backend.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

// ReportUseCase agrega las ventas y delega el renderizado.
type ReportUseCase struct {
	generator ports.VentasReportGenerator
	tienda    string
	loc       *time.Location
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(generator ports.VentasReportGenerator, tienda string, loc *time.Location) *ReportUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{generator: generator, tienda: tienda, loc: loc, now: time.Now}
}

// Resumir totales por método de pago (en el orden de entity.MetodosPago) y total general.
func (uc *ReportUseCase) Resumir(ventas []entity.Venta, generadoPor string) ports.ReporteVentas {
	r := ports.ReporteVentas{
		Tienda:      uc.tienda,
		GeneradoPor: generadoPor,
		GeneradoEn:  uc.now().In(uc.loc),
		Ventas:      ventas,
		Total:       decimal.Zero,
	}
	porPago := make(map[string]*ports.ResumenPago, len(entity.MetodosPago))
	orden := append([]string(nil), entity.MetodosPago...)
	for _, m := range orden {
		porPago[m] = &ports.ResumenPago{MetodoPago: m, Total: decimal.Zero}
	}
	for _, v := range ventas {
		r.Unidades += v.Cantidad
		r.Total = r.Total.Add(v.Total)
		rp, ok := porPago[v.MetodoPago]
		if !ok {
			rp = &ports.ResumenPago{MetodoPago: v.MetodoPago, Total: decimal.Zero}
			porPago[v.MetodoPago] = rp
			orden = append(orden, v.MetodoPago)
		}
		rp.Ventas++
		rp.Total = rp.Total.Add(v.Total)
	}
	for _, m := range orden {
		r.PorPago = append(r.PorPago, *porPago[m])
	}
	return r
}

// GenerarPDF resume y renderiza el reporte.
func (uc *ReportUseCase) GenerarPDF(ctx context.Context, ventas []entity.Venta, generadoPor string) ([]byte, error) {
	doc, err := uc.generator.GenerateVentasReport(ctx, uc.Resumir(ventas, generadoPor))
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return doc, nil
}
