package dto

// SugerenciaRequest estado actual del formulario de empleado.
type SugerenciaRequest struct {
	Nombre   string `query:"nombre"`
	Apellido string `query:"apellido"`
	Username string `query:"username"`
	Manual   bool   `query:"manual"`
}

// SugerenciaResponse valor del campo username tras aplicar la sugerencia.
type SugerenciaResponse struct {
	Value  string `json:"value"`
	Manual bool   `json:"manual"`
}
