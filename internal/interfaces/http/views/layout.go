// Package views renderiza las páginas HTML de la consola con gomponents.
package views

import (
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CSRFField nombre del campo oculto con el token CSRF.
const CSRFField = "_csrf"

// Page datos comunes a todas las páginas autenticadas.
type Page struct {
	Tienda    string
	Principal *entity.Empleado
	CSRF      string
	Activa    access.RouteID
	Flash     string
	Error     string
}

func head(title, tienda string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | "+tienda)),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css")),
		Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css")),
	)
}

func csrfInput(token string) Node {
	if token == "" {
		return nil
	}
	return Input(Type("hidden"), Name(CSRFField), Value(token))
}

// navbar menú construido con access.VisibleRoutes: lo que se ve es lo que se puede abrir.
func navbar(p Page) Node {
	items := make([]Node, 0, len(access.Routes))
	for _, r := range access.VisibleRoutes(p.Principal) {
		className := "nav-link"
		if r.ID == p.Activa {
			className += " active"
		}
		items = append(items, Li(Class("nav-item"),
			A(Class(className), Href(r.Path), I(Class("bi "+r.Icon+" me-1")), Text(r.Label)),
		))
	}

	nombre := ""
	if p.Principal != nil {
		nombre = p.Principal.Nombre
	}

	return Nav(Class("navbar navbar-expand-lg navbar-dark bg-dark mb-4"),
		Div(Class("container-fluid"),
			A(Class("navbar-brand"), Href(access.HomePath), Text(p.Tienda)),
			Ul(Class("navbar-nav me-auto"), Group(items)),
			Span(Class("navbar-text me-3"), Text("Bienvenido, "+nombre)),
			Form(Method("post"), Action("/logout"), Class("d-flex"),
				csrfInput(p.CSRF),
				Button(Type("submit"), Class("btn btn-outline-light btn-sm"), Text("Cerrar sesión")),
			),
		),
	)
}

// Layout página autenticada con menú, avisos y contenido.
func Layout(title string, p Page, body ...Node) Node {
	return Doctype(HTML(
		Lang("es"),
		head(title, p.Tienda),
		Body(
			navbar(p),
			Main(Class("container"),
				If(p.Flash != "", Div(Class("alert alert-success"), Role("alert"), Text(p.Flash))),
				If(p.Error != "", Div(Class("alert alert-danger"), Role("alert"), Text(p.Error))),
				Group(body),
			),
		),
	))
}

// ErrorPage página mínima para errores fuera del layout.
func ErrorPage(tienda, title, message string) Node {
	return Doctype(HTML(
		Lang("es"),
		head(title, tienda),
		Body(Main(Class("container py-5"),
			H1(Class("h3"), Text(title)),
			P(Text(message)),
			P(A(Href(access.HomePath), Text("Volver al inicio"))),
		)),
	))
}

// fieldError mensaje de validación bajo un campo.
func fieldError(ve *domain.ValidationError, name string) Node {
	msg := ve.Field(name)
	if msg == "" {
		return nil
	}
	return Div(Class("invalid-feedback d-block"), Text(msg))
}

func inputClass(ve *domain.ValidationError, name string) string {
	if ve.Field(name) != "" {
		return "form-control is-invalid"
	}
	return "form-control"
}

func textField(ve *domain.ValidationError, label, name, typ, value string, extra ...Node) Node {
	return Div(Class("col-md-4"),
		Label(Class("form-label"), For(name), Text(label)),
		Input(append([]Node{ID(name), Name(name), Type(typ), Class(inputClass(ve, name)), Value(value)}, extra...)...),
		fieldError(ve, name),
	)
}

type option struct {
	Value string
	Label string
	Attrs []Node
}

func selectField(ve *domain.ValidationError, label, name, selected string, opts []option, extra ...Node) Node {
	nodes := []Node{Option(Value(""), Text("Seleccione..."))}
	for _, o := range opts {
		attrs := append([]Node{Value(o.Value)}, o.Attrs...)
		if o.Value == selected {
			attrs = append(attrs, Selected())
		}
		attrs = append(attrs, Text(o.Label))
		nodes = append(nodes, Option(attrs...))
	}
	className := "form-select"
	if ve.Field(name) != "" {
		className += " is-invalid"
	}
	return Div(Class("col-md-4"),
		Label(Class("form-label"), For(name), Text(label)),
		Select(append([]Node{ID(name), Name(name), Class(className)}, append(extra, nodes...)...)...),
		fieldError(ve, name),
	)
}

func stringOptions(values []string) []option {
	out := make([]option, 0, len(values))
	for _, v := range values {
		out = append(out, option{Value: v, Label: v})
	}
	return out
}

// formCard formulario de alta/edición con su título y botones.
func formCard(title, action, csrf string, editando bool, cancelHref string, fields ...Node) Node {
	label := "Guardar"
	if editando {
		label = "Actualizar"
	}
	return Div(Class("card mb-4"),
		Div(Class("card-body"),
			H2(Class("h4 mb-3"), Text(title)),
			Form(Method("post"), Action(action), Class("row g-3"), Attr("data-submit-once", ""),
				csrfInput(csrf),
				Group(fields),
				Div(Class("col-12"),
					Button(Type("submit"), Class("btn btn-primary"), Text(label)),
					If(editando, A(Class("btn btn-link"), Href(cancelHref), Text("Cancelar"))),
				),
			),
		),
	)
}

// submitOnceScript deshabilita el botón mientras el envío está en curso.
func submitOnceScript() Node {
	return Script(Raw(`document.querySelectorAll('form[data-submit-once]').forEach(function(f){f.addEventListener('submit',function(){var b=f.querySelector('button[type=submit]');if(b){b.disabled=true;}});});`))
}
