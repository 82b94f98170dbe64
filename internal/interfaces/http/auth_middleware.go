package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bodega-titos/consola/internal/application/auth"
	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
	"github.com/bodega-titos/consola/pkg/jwt"
	"github.com/bodega-titos/consola/pkg/logger"
)

// LocalSesion key de c.Locals con la entity.Sesion de la petición.
const LocalSesion = "sesion"

// SessionCookie nombre de la cookie con el JWT de sesión.
const SessionCookie = "bodega_sesion"

// SessionConfig firma y atributos de la cookie de sesión.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Secure bool // solo HTTPS (producción)
}

// SessionMiddleware lee la cookie de sesión, valida el JWT y carga la sesión en c.Locals.
// Sin cookie, con firma inválida o sin principal la petición sigue anónima. Si la cookie es
// válida pero el almacén ya no tiene principal, se descartan las listas guardadas de ese sid.
func SessionMiddleware(uc *auth.AuthUseCase, cfg SessionConfig, snapshots *listing.Snapshots, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("session")
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookie)
		if raw == "" {
			return c.Next()
		}
		sid, err := jwt.Parse(cfg.Secret, raw)
		if err != nil {
			log.Debug().Err(err).Msg("cookie de sesión inválida")
			return c.Next()
		}
		principal, err := uc.Current(c.UserContext(), sid)
		if err != nil {
			log.Error().Err(err).Msg("cargar sesión")
			c.Locals(LocalSesion, entity.Sesion{ID: sid})
			return c.Next()
		}
		if principal == nil && snapshots != nil {
			snapshots.Forget(sid)
		}
		c.Locals(LocalSesion, entity.Sesion{ID: sid, Empleado: principal})
		return c.Next()
	}
}

// RequireAuth corta las peticiones anónimas: los GET muestran el login, /api responde 401
// y cualquier otro método redirige a la raíz.
func RequireAuth(tienda string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSesion(c).Autenticada() {
			return c.Next()
		}
		if isAPI(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "inicie sesión"})
		}
		if c.Method() != fiber.MethodGet {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		msg := ""
		if c.Query("expirada") != "" {
			msg = "Su sesión expiró. Ingrese nuevamente."
		}
		c.Type("html", "utf-8")
		return views.LoginPage(tienda, csrfToken(c), "", msg).Render(c)
	}
}

// RequireRoute deja pasar solo si access.CanAccess(principal, id); si no, redirige al inicio.
func RequireRoute(id access.RouteID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.CanAccess(GetPrincipal(c), id) {
			if isAPI(c) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
			}
			return c.Redirect(access.HomePath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequirePrivileged solo el rol efectivo ADMIN.
func RequirePrivileged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.IsPrivileged(GetPrincipal(c)) {
			return c.Redirect(access.HomePath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetSesion devuelve la sesión de la petición; vacía si no hubo cookie válida.
func GetSesion(c *fiber.Ctx) entity.Sesion {
	s, _ := c.Locals(LocalSesion).(entity.Sesion)
	return s
}

// GetSessionID devuelve el id de sesión de la cookie (después de SessionMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	return GetSesion(c).ID
}

// GetPrincipal devuelve el principal autenticado o nil.
func GetPrincipal(c *fiber.Ctx) *entity.Empleado {
	return GetSesion(c).Empleado
}

func (k *console) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(k.session.TTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   k.session.Secure,
	})
}

func (k *console) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   k.session.Secure,
	})
}
