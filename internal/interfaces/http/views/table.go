package views

import (
	"fmt"
	"net/url"

	"github.com/bodega-titos/consola/internal/application/listing"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Listado filas ya filtradas y ordenadas más el estado del último refresco.
type Listado[T any] struct {
	Rows     []T
	Total    int
	Stale    bool
	LoadErr  string
	Query    listing.Query
	Columns  []listing.Column[T]
	ID       func(T) int64
	Editable bool
}

func sortHref(base string, q listing.Query, key string) string {
	dir := "asc"
	if q.Orden == key && !q.Desc() {
		dir = "desc"
	}
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	v.Set("orden", key)
	v.Set("dir", dir)
	return base + "?" + v.Encode()
}

func sortIcon(q listing.Query, key string) Node {
	if q.Orden != key {
		return nil
	}
	if q.Desc() {
		return I(Class("bi bi-caret-down-fill ms-1"))
	}
	return I(Class("bi bi-caret-up-fill ms-1"))
}

// tabla buscador + tabla con cabeceras ordenables y acciones editar/eliminar.
func tabla[T any](base string, l Listado[T]) Node {
	headers := make([]Node, 0, len(l.Columns)+1)
	for _, c := range l.Columns {
		headers = append(headers, Th(A(Class("link-dark text-decoration-none"), Href(sortHref(base, l.Query, c.Key)),
			Text(c.Label), sortIcon(l.Query, c.Key))))
	}
	if l.Editable {
		headers = append(headers, Th(Text("Acciones")))
	}

	body := make([]Node, 0, len(l.Rows))
	for _, r := range l.Rows {
		cells := make([]Node, 0, len(l.Columns)+1)
		for _, c := range l.Columns {
			cells = append(cells, Td(Text(c.Text(r))))
		}
		if l.Editable {
			id := l.ID(r)
			cells = append(cells, Td(Class("text-nowrap"),
				A(Class("btn btn-sm btn-warning me-1"), Href(fmt.Sprintf("%s/%d/editar", base, id)), Text("Editar")),
				A(Class("btn btn-sm btn-danger"), Href(fmt.Sprintf("%s/%d/eliminar", base, id)), Text("Eliminar")),
			))
		}
		body = append(body, Tr(cells...))
	}
	if len(l.Rows) == 0 {
		body = append(body, Tr(Td(ColSpan(fmt.Sprint(len(headers))), Class("text-center text-muted"), Text("Sin registros."))))
	}

	return Div(Class("card"),
		Div(Class("card-body"),
			If(l.Stale, Div(Class("alert alert-warning"), Role("alert"),
				Text("No se pudo actualizar la lista; se muestran los últimos datos cargados. "+l.LoadErr))),
			If(!l.Stale && l.LoadErr != "", Div(Class("alert alert-danger"), Role("alert"),
				Text("No se pudo cargar la lista. "+l.LoadErr))),
			Form(Method("get"), Action(base), Class("row g-2 mb-3"),
				Div(Class("col-md-6"),
					Input(Type("search"), Name("q"), Class("form-control"), Placeholder("Buscar..."), Value(l.Query.Q)),
				),
				If(l.Query.Orden != "", Input(Type("hidden"), Name("orden"), Value(l.Query.Orden))),
				If(l.Query.Dir != "", Input(Type("hidden"), Name("dir"), Value(l.Query.Dir))),
				Div(Class("col-auto"), Button(Type("submit"), Class("btn btn-outline-secondary"), Text("Buscar"))),
				Div(Class("col-auto align-self-center text-muted small"),
					Text(fmt.Sprintf("%d de %d registros", len(l.Rows), l.Total))),
			),
			Div(Class("table-responsive"),
				Table(Class("table table-striped table-hover align-middle"),
					THead(Tr(headers...)),
					TBody(body...),
				),
			),
		),
	)
}

// ConfirmDelete pide confirmación antes de eliminar un registro.
func ConfirmDelete(p Page, title, descripcion, action, cancelHref string) Node {
	return Layout(title, p,
		Div(Class("card border-danger"),
			Div(Class("card-body"),
				H1(Class("h4 card-title"), Text(title)),
				P(Text(descripcion)),
				Form(Method("post"), Action(action),
					csrfInput(p.CSRF),
					Button(Type("submit"), Class("btn btn-danger me-2"), Text("Sí, eliminar")),
					A(Class("btn btn-secondary"), Href(cancelHref), Text("Cancelar")),
				),
			),
		),
	)
}
