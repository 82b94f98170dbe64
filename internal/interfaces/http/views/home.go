package views

import (
	"github.com/bodega-titos/consola/internal/domain/access"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage tarjetas de acceso; usa el mismo predicado que el menú.
func HomePage(p Page) Node {
	tiles := []Node{}
	for _, r := range access.VisibleRoutes(p.Principal) {
		if r.ID == access.RouteInicio {
			continue
		}
		tiles = append(tiles, Div(Class("col-md-6 col-lg-3"),
			Div(Class("card h-100"),
				Div(Class("card-body"),
					H2(Class("h5 card-title"), I(Class("bi "+r.Icon+" me-2")), Text(r.Label)),
					P(Class("card-text"), Text(r.Descripcion)),
					A(Class("btn btn-primary"), Href(r.Path), Text("Ir a "+r.Label)),
				),
			),
		))
	}
	return Layout("Inicio", p,
		H1(Class("h3 mb-4"), Text("Panel de gestión")),
		Div(Class("row g-3"), Group(tiles)),
	)
}
