package views

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoginPage formulario de ingreso; se muestra para cualquier GET sin sesión.
func LoginPage(tienda, csrf, username, errMsg string) Node {
	return Doctype(HTML(
		Lang("es"),
		head("Iniciar sesión", tienda),
		Body(Class("bg-light"),
			Main(Class("container"), Style("max-width: 420px; margin-top: 10vh"),
				Div(Class("card shadow-sm"),
					Div(Class("card-body p-4"),
						H1(Class("h4 mb-3 text-center"), Text(tienda)),
						If(errMsg != "", Div(Class("alert alert-danger"), Role("alert"), Text(errMsg))),
						Form(Method("post"), Action("/login"),
							csrfInput(csrf),
							Div(Class("mb-3"),
								Label(Class("form-label"), For("username"), Text("Usuario")),
								Input(ID("username"), Name("username"), Type("text"), Class("form-control"),
									Value(username), Required(), AutoFocus()),
							),
							Div(Class("mb-3"),
								Label(Class("form-label"), For("password"), Text("Contraseña")),
								Input(ID("password"), Name("password"), Type("password"), Class("form-control"), Required()),
							),
							Button(Type("submit"), Class("btn btn-primary w-100"), Text("Ingresar")),
						),
					),
				),
			),
		),
	))
}
