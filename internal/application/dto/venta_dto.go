package dto

import (
	"encoding/json"
	"time"
)

// CotizacionRequest producto y cantidad a cotizar.
type CotizacionRequest struct {
	ProductoID int64 `query:"producto"`
	Cantidad   int   `query:"cantidad"`
}

// CotizacionResponse total de la venta con la tarifa vigente en el momento de la consulta.
type CotizacionResponse struct {
	Tarifa         string      `json:"tarifa"`
	Hora           int         `json:"hora"`
	PrecioUnitario json.Number `json:"precio_unitario" swaggertype:"number"`
	Total          json.Number `json:"total" swaggertype:"number"`
	Stock          int         `json:"stock"`
	CalculadaEn    time.Time   `json:"calculada_en"`
}
