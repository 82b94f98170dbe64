package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/bodega-titos/consola/internal/application/auth"
	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/application/reporting"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
	"github.com/bodega-titos/consola/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Tienda    string
	AuthUC    *auth.AuthUseCase
	Services  ports.ServiceFactory
	ReportUC  *reporting.ReportUseCase
	Forms     *forms.Validator
	Snapshots *listing.Snapshots
	Guard     *forms.Guard
	Location  *time.Location   // zona horaria de la tienda
	Now       func() time.Time // por defecto time.Now
	Session   SessionConfig
	CSRF      bool
	LoginMax  int // intentos de login por minuto e IP; 0 usa 10
	Log       *logger.Logger
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	k := newConsole(deps)

	if deps.CSRF {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:" + views.CSRFField,
			CookieName:     "bodega_csrf",
			CookieSameSite: "Lax",
			CookieHTTPOnly: true,
			CookieSecure:   deps.Session.Secure,
			Expiration:     deps.Session.TTL,
			ContextKey:     csrfContextKey,
		}))
	}
	app.Use(SessionMiddleware(deps.AuthUC, deps.Session, k.snapshots, deps.Log))

	// Públicas
	authHandler := &AuthHandler{console: k}
	loginMax := deps.LoginMax
	if loginMax <= 0 {
		loginMax = 10
	}
	app.Post("/login", limiter.New(limiter.Config{
		Max:          loginMax,
		Expiration:   time.Minute,
		LimitReached: authHandler.LimitReached,
	}), authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Desde aquí requieren sesión; sin sesión cualquier GET muestra el login.
	app.Use(RequireAuth(k.tienda))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	})
	app.Get(access.HomePath, RequireRoute(access.RouteInicio), authHandler.Home)

	// Categorías (ADMIN)
	categorias := app.Group("/categorias", RequireRoute(access.RouteCategorias))
	categoriaHandler := &CategoriaHandler{console: k}
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", categoriaHandler.Save)
	categorias.Get("/:id/editar", categoriaHandler.Edit)
	categorias.Get("/:id/eliminar", categoriaHandler.ConfirmDelete)
	categorias.Post("/:id/eliminar", categoriaHandler.Delete)
	categorias.Post("/:id", categoriaHandler.Save)

	// Empleados (ADMIN)
	empleados := app.Group("/empleados", RequireRoute(access.RouteEmpleados))
	empleadoHandler := &EmpleadoHandler{console: k}
	empleados.Get("/", empleadoHandler.List)
	empleados.Post("/", empleadoHandler.Save)
	empleados.Get("/:id/editar", empleadoHandler.Edit)
	empleados.Get("/:id/eliminar", empleadoHandler.ConfirmDelete)
	empleados.Post("/:id/eliminar", empleadoHandler.Delete)
	empleados.Post("/:id", empleadoHandler.Save)

	// Productos (ADMIN)
	productos := app.Group("/productos", RequireRoute(access.RouteProductos))
	productoHandler := &ProductoHandler{console: k}
	productos.Get("/", productoHandler.List)
	productos.Post("/", productoHandler.Save)
	productos.Get("/:id/editar", productoHandler.Edit)
	productos.Get("/:id/eliminar", productoHandler.ConfirmDelete)
	productos.Post("/:id/eliminar", productoHandler.Delete)
	productos.Post("/:id", productoHandler.Save)

	// Ventas (todos los roles; el reporte solo ADMIN)
	ventas := app.Group("/ventas", RequireRoute(access.RouteVentas))
	ventaHandler := &VentaHandler{console: k}
	ventas.Get("/", ventaHandler.List)
	ventas.Post("/", ventaHandler.Save)
	ventas.Get("/reporte.pdf", RequirePrivileged(), ventaHandler.Reporte)
	ventas.Get("/:id/editar", ventaHandler.Edit)
	ventas.Get("/:id/eliminar", ventaHandler.ConfirmDelete)
	ventas.Post("/:id/eliminar", ventaHandler.Delete)
	ventas.Post("/:id", ventaHandler.Save)

	// JSON para los scripts de los formularios
	api := app.Group("/api")
	api.Get("/sesion", authHandler.Sesion)
	api.Get("/ventas/cotizacion", RequireRoute(access.RouteVentas), ventaHandler.Cotizacion)
	api.Get("/empleados/sugerencia", RequireRoute(access.RouteEmpleados), empleadoHandler.Sugerencia)

	// Cualquier otra ruta vuelve al inicio.
	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect(access.HomePath, fiber.StatusSeeOther)
	})
}
