package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
	"github.com/bodega-titos/consola/pkg/jwt"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	*console
}

// Login intercambia las credenciales del formulario por una sesión nueva.
// Cada login genera un id de sesión nuevo; la sesión anterior del navegador se descarta.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginError(c, fiber.StatusBadRequest, "", msgSolicitud)
	}

	sid := uuid.NewString()
	if _, err := h.auth.Login(c.UserContext(), sid, in.Username, in.Password); err != nil {
		var ae *domain.AuthenticationError
		var rf *domain.RequestFailed
		switch {
		case errors.As(err, &rf) && rf.Status == 0:
			h.log.Warn().Err(err).Msg("login: backend inaccesible")
			return h.loginError(c, fiber.StatusBadGateway, in.Username, "No se pudo conectar con el servidor. Intente nuevamente.")
		case errors.As(err, &ae):
			return h.loginError(c, fiber.StatusUnauthorized, in.Username, "Usuario o contraseña incorrectos.")
		default:
			h.log.Error().Err(err).Msg("login")
			return h.loginError(c, fiber.StatusInternalServerError, in.Username, "No se pudo iniciar sesión.")
		}
	}

	if old := GetSessionID(c); old != "" {
		_ = h.auth.Logout(c.UserContext(), old)
		h.snapshots.Forget(old)
	}

	token, err := jwt.Generate(h.session.Secret, sid, h.session.Issuer, h.session.TTL)
	if err != nil {
		h.log.Error().Err(err).Msg("firmar cookie de sesión")
		_ = h.auth.Logout(c.UserContext(), sid)
		return h.loginError(c, fiber.StatusInternalServerError, in.Username, "No se pudo iniciar sesión.")
	}
	h.setSessionCookie(c, token)
	return c.Redirect(access.HomePath, fiber.StatusSeeOther)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, status int, username, msg string) error {
	return h.render(c, status, views.LoginPage(h.tienda, csrfToken(c), username, msg))
}

// LimitReached respuesta del limitador de intentos de login.
func (h *AuthHandler) LimitReached(c *fiber.Ctx) error {
	return h.loginError(c, fiber.StatusTooManyRequests, "", "Demasiados intentos. Espere un minuto e intente nuevamente.")
}

// Logout borra la sesión y vuelve al login. Sin sesión no hace nada más que redirigir.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := GetSessionID(c); sid != "" {
		if err := h.auth.Logout(c.UserContext(), sid); err != nil {
			h.log.Warn().Err(err).Msg("logout")
		}
		h.snapshots.Forget(sid)
	}
	h.clearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Sesion godoc
// @Summary      Principal de la sesión actual
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SesionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sesion [get]
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	rutas := make([]dto.RutaResponse, 0, len(access.Routes))
	for _, r := range access.VisibleRoutes(p) {
		rutas = append(rutas, dto.RutaResponse{ID: string(r.ID), Path: r.Path, Label: r.Label})
	}
	return c.JSON(dto.SesionResponse{
		ID:       p.ID,
		Username: p.Username,
		Nombre:   p.NombreCompleto(),
		Rol:      access.EffectiveRole(p),
		Rutas:    rutas,
	})
}

// Home tarjetas de las vistas que el principal puede abrir.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, views.HomePage(h.page(c, access.RouteInicio)))
}
