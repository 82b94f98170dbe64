package entity

// Categoria categoría de productos.
type Categoria struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}
