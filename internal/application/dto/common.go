package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest credenciales del formulario de ingreso.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
