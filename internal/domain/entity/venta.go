package entity

import "github.com/shopspring/decimal"

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
)

// MetodosPago en el orden en que se muestran.
var MetodosPago = []string{PagoEfectivo, PagoTarjeta, PagoTransferencia}

// Venta transacción de punto de venta. Empleado y Producto son copias al momento de la venta;
// ediciones posteriores de esos registros no la modifican.
type Venta struct {
	ID            int64           `json:"id,omitempty"`
	FechaVenta    string          `json:"fechaVenta"` // RFC 3339
	Empleado      Empleado        `json:"empleado"`
	NombreCliente string          `json:"nombreCliente"`
	Producto      Producto        `json:"producto"`
	Cantidad      int             `json:"cantidad"`
	Total         decimal.Decimal `json:"total"`
	MetodoPago    string          `json:"metodoPago"`
}
