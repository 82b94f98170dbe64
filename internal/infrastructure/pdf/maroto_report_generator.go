// Package pdf genera el reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + título    │  Fecha de emisión + usuario    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Cliente | Producto | Vendedor | Cant | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total por método de pago / TOTAL GENERAL           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 33, Green: 37, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.VentasReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.VentasReportGenerator con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateVentasReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateVentasReport(_ context.Context, r ports.ReporteVentas) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(r.Tienda, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(r.Ventas) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No hay ventas registradas.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(tableDetailRows(r.Ventas)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resumenRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r ports.ReporteVentas) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(r.Tienda, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("REPORTE DE VENTAS", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Emitido: "+r.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Por: "+nonEmpty(r.GeneradoPor, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Cliente", 2, align.Left),
		h("Producto", 2, align.Left),
		h("Vendedor", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Pago", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

func tableDetailRows(ventas []entity.Venta) []core.Row {
	result := make([]core.Row, 0, len(ventas))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	for _, v := range ventas {
		result = append(result, row.New(7).Add(
			cell(formatFecha(v.FechaVenta), 2, align.Left),
			cell(v.NombreCliente, 2, align.Left),
			cell(v.Producto.Nombre, 2, align.Left),
			cell(v.Empleado.NombreCompleto(), 2, align.Left),
			cell(strconv.Itoa(v.Cantidad), 1, align.Center),
			cell(v.MetodoPago, 1, align.Center),
			cell("S/ "+v.Total.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

func resumenRows(r ports.ReporteVentas) []core.Row {
	rows := make([]core.Row, 0, len(r.PorPago)+2)
	for _, p := range r.PorPago {
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(fmt.Sprintf("%s (%d):", p.MetodoPago, p.Ventas), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			})),
			col.New(3).Add(text.New("S/ "+p.Total.StringFixed(2), props.Text{Size: 9, Align: align.Right, Right: 1})),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Unidades vendidas: %d", r.Unidades), props.Text{
			Size: 8, Top: 2, Color: colorGray,
		})),
		col.New(3).Add(text.New("TOTAL GENERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("S/ "+r.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 2,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatFecha RFC 3339 -> dd/mm/aaaa hh:mm; cualquier otro formato se muestra tal cual.
func formatFecha(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006 15:04")
}
