package views

import (
	"fmt"
	"strconv"

	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// EmpleadosView datos de la página de empleados.
type EmpleadosView struct {
	Listado Listado[entity.Empleado]
	Form    forms.EmpleadoForm
	Errores *domain.ValidationError
	Roles   []entity.Rol
	EditID  int64
}

func rolOptions(roles []entity.Rol) []option {
	if len(roles) == 0 {
		roles = []entity.Rol{{ID: entity.RoleAdminID, Nombre: entity.RoleAdmin}, {ID: entity.RoleVendedorID, Nombre: entity.RoleVendedor}}
	}
	out := make([]option, 0, len(roles))
	for _, r := range roles {
		out = append(out, option{Value: strconv.FormatInt(r.ID, 10), Label: r.Nombre})
	}
	return out
}

// EmpleadosPage lista + formulario de empleados con sugerencia de username.
func EmpleadosPage(p Page, v EmpleadosView) Node {
	editando := v.EditID > 0
	action, title := "/empleados", "Agregar Empleado"
	passwordHelp := "Mínimo 8 caracteres con número, minúscula, mayúscula y uno de @#$%^&/+="
	if editando {
		action, title = fmt.Sprintf("/empleados/%d", v.EditID), "Editar Empleado"
		passwordHelp = "Déjela vacía para conservar la contraseña actual."
	}
	f := v.Form

	return Layout("Empleados", p,
		formCard(title, action, p.CSRF, editando, "/empleados",
			textField(v.Errores, "Nombre", "nombre", "text", f.Nombre, Required()),
			textField(v.Errores, "Apellido", "apellido", "text", f.Apellido, Required()),
			selectField(v.Errores, "Género", "genero", f.Genero, stringOptions(forms.Generos)),
			textField(v.Errores, "Edad", "edad", "number", f.Edad, Min("18"), Max("100")),
			textField(v.Errores, "Teléfono", "telefono", "tel", f.Telefono, Placeholder("9XXXXXXXX")),
			selectField(v.Errores, "Turno", "turno", f.Turno, stringOptions(forms.Turnos)),
			textField(v.Errores, "Correo", "correo", "email", f.Correo, Required()),
			textField(v.Errores, "Dirección", "direccion", "text", f.Direccion),
			selectField(v.Errores, "Rol", "rol", f.RolID, rolOptions(v.Roles)),
			textField(v.Errores, "Usuario", "username", "text", f.Username, AutoComplete("off")),
			Input(Type("hidden"), ID("username_manual"), Name("username_manual"), Value(strconv.FormatBool(f.UsernameManual))),
			Div(Class("col-md-4"),
				Label(Class("form-label"), For("password"), Text("Contraseña")),
				Input(ID("password"), Name("password"), Type("password"), Class(inputClass(v.Errores, "password")), AutoComplete("new-password")),
				Div(Class("form-text"), Text(passwordHelp)),
				fieldError(v.Errores, "password"),
			),
		),
		tabla("/empleados", v.Listado),
		usernameScript(),
		submitOnceScript(),
	)
}

// usernameScript pide la sugerencia al servidor al cambiar nombre o apellido y deja de
// hacerlo en cuanto el usuario edita el campo a mano.
func usernameScript() Node {
	return Script(Raw(`(function(){
var n=document.getElementById('nombre'),a=document.getElementById('apellido'),u=document.getElementById('username'),m=document.getElementById('username_manual');
if(!n||!a||!u||!m){return;}
u.addEventListener('input',function(){m.value='true';});
function sugerir(){
if(m.value==='true'){return;}
var q=new URLSearchParams({nombre:n.value,apellido:a.value,username:u.value,manual:m.value});
fetch('/api/empleados/sugerencia?'+q.toString(),{credentials:'same-origin'}).then(function(r){return r.ok?r.json():null;}).then(function(s){if(s&&!s.manual){u.value=s.value;}});
}
n.addEventListener('input',sugerir);a.addEventListener('input',sugerir);
})();`))
}
