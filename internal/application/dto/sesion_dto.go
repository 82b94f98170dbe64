package dto

// RutaResponse vista habilitada para el principal.
type RutaResponse struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

// SesionResponse principal de la sesión actual, sin token ni contraseña.
type SesionResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Nombre   string         `json:"nombre"`
	Rol      string         `json:"rol"`
	Rutas    []RutaResponse `json:"rutas"`
}
