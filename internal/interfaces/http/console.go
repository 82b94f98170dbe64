package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gomponents "maragu.dev/gomponents"

	"github.com/bodega-titos/consola/internal/application/auth"
	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/application/reporting"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
	"github.com/bodega-titos/consola/pkg/logger"
)

const (
	flashCookie    = "bodega_flash"
	csrfContextKey = "csrf"

	msgEnvioEnCurso = "Ya hay un envío en curso para este formulario. Espere a que termine."
	msgSolicitud    = "Solicitud inválida."
)

// console dependencias compartidas por todos los handlers de la consola.
type console struct {
	tienda    string
	auth      *auth.AuthUseCase
	factory   ports.ServiceFactory
	report    *reporting.ReportUseCase
	forms     *forms.Validator
	snapshots *listing.Snapshots
	guard     *forms.Guard
	loc       *time.Location
	now       func() time.Time
	session   SessionConfig
	log       *logger.Logger
}

func newConsole(deps RouterDeps) *console {
	k := &console{
		tienda:    deps.Tienda,
		auth:      deps.AuthUC,
		factory:   deps.Services,
		report:    deps.ReportUC,
		forms:     deps.Forms,
		snapshots: deps.Snapshots,
		guard:     deps.Guard,
		loc:       deps.Location,
		now:       deps.Now,
		session:   deps.Session,
		log:       deps.Log,
	}
	if k.snapshots == nil {
		k.snapshots = listing.NewSnapshots(deps.Session.TTL)
	}
	if k.guard == nil {
		k.guard = forms.NewGuard()
	}
	if k.loc == nil {
		k.loc = time.Local
	}
	if k.now == nil {
		k.now = time.Now
	}
	if k.forms == nil {
		k.forms = forms.NewValidator(k.loc).WithClock(k.now)
	}
	if k.log == nil {
		k.log = logger.Nop()
	}
	k.log = k.log.Component("http")
	return k
}

// services servicios de entidad ligados al token del principal de esta petición.
func (k *console) services(c *fiber.Ctx) ports.Services {
	token := ""
	if p := GetPrincipal(c); p != nil {
		token = p.Token
	}
	return k.factory.ForToken(token)
}

func (k *console) page(c *fiber.Ctx, activa access.RouteID) views.Page {
	return views.Page{
		Tienda:    k.tienda,
		Principal: GetPrincipal(c),
		CSRF:      csrfToken(c),
		Activa:    activa,
		Flash:     k.popFlash(c),
	}
}

func (k *console) render(c *fiber.Ctx, status int, node gomponents.Node) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return node.Render(c)
}

func csrfToken(c *fiber.Ctx) string {
	s, _ := c.Locals(csrfContextKey).(string)
	return s
}

// setFlash mensaje de éxito que se muestra una sola vez tras la redirección.
func (k *console) setFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   k.session.Secure,
	})
}

func (k *console) popFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{Name: flashCookie, Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// expire cierre de sesión implícito: el backend rechazó el token de la sesión.
func (k *console) expire(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	if sid != "" {
		if err := k.auth.Logout(c.UserContext(), sid); err != nil {
			k.log.Warn().Err(err).Msg("limpiar sesión expirada")
		}
		k.snapshots.Forget(sid)
	}
	k.clearSessionCookie(c)
	k.log.Info().Str("path", c.Path()).Msg("token rechazado por el backend, sesión cerrada")
	if isAPI(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró"})
	}
	return c.Redirect("/?expirada=1", fiber.StatusSeeOther)
}

// failed resuelve un error del backend: 401 cierra la sesión, el resto se muestra con retry.
func (k *console) failed(c *fiber.Ctx, err error, retry func(msg string) error) error {
	if domain.IsSessionExpired(err) {
		return k.expire(c)
	}
	if rf := asRequestFailed(err); rf != nil {
		k.log.Warn().Str("method", rf.Method).Str("path", rf.Path).Int("status", rf.Status).Err(rf.Err).Msg("petición al backend fallida")
	} else {
		k.log.Error().Err(err).Msg("operación fallida")
	}
	return retry(mensajeError(err))
}

func asRequestFailed(err error) *domain.RequestFailed {
	var rf *domain.RequestFailed
	if errors.As(err, &rf) {
		return rf
	}
	return nil
}

func mensajeError(err error) string {
	rf := asRequestFailed(err)
	switch {
	case rf == nil:
		return "Ocurrió un error inesperado."
	case rf.Status == 0:
		return "No se pudo conectar con el servidor."
	case errors.Is(err, domain.ErrNotFound):
		return "El registro no existe."
	case errors.Is(err, domain.ErrForbidden):
		return "No tiene permiso para esta operación."
	case errors.Is(err, domain.ErrDuplicate):
		return "El registro ya existe."
	case errors.Is(err, domain.ErrInvalidInput):
		return "El servidor rechazó los datos enviados."
	default:
		return fmt.Sprintf("El servidor respondió con un error (HTTP %d).", rf.Status)
	}
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// paramID id de la ruta; 0 si falta o no es un número positivo.
func paramID(c *fiber.Ctx) int64 {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0
	}
	return int64(id)
}

// listado aplica filtro y orden de la query sobre una copia de las filas.
func listado[T any](c *fiber.Ctx, res listing.Result[T], cols []listing.Column[T], id func(T) int64) views.Listado[T] {
	var q listing.Query
	_ = c.QueryParser(&q)
	l := views.Listado[T]{
		Rows:     listing.Apply(res.Rows, cols, q),
		Total:    len(res.Rows),
		Stale:    res.Stale,
		Query:    q,
		Columns:  cols,
		ID:       id,
		Editable: true,
	}
	if res.Err != nil {
		l.LoadErr = mensajeError(res.Err)
	}
	return l
}
