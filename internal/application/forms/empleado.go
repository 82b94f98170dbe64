package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

// EmpleadoForm campos del formulario de empleado. Los numéricos llegan como texto.
type EmpleadoForm struct {
	Nombre         string `form:"nombre" validate:"min=3,letras"`
	Apellido       string `form:"apellido" validate:"min=3,letras"`
	Genero         string `form:"genero" validate:"oneof=masculino femenino"`
	Edad           string `form:"edad" validate:"entero_min=18,entero_max=100"`
	Telefono       string `form:"telefono" validate:"telefono"`
	Turno          string `form:"turno" validate:"oneof=mañana tarde noche"`
	Correo         string `form:"correo" validate:"required,email"`
	Direccion      string `form:"direccion" validate:"min=3"`
	Username       string `form:"username" validate:"required,min=3"`
	UsernameManual bool   `form:"username_manual"`
	Password       string `form:"password" validate:"omitempty,password_fuerte"`
	RolID          string `form:"rol" validate:"omitempty,oneof=1 2"`
}

var mensajesEmpleado = map[string]string{
	"nombre":    "El nombre debe tener al menos 3 caracteres y solo contener letras.",
	"apellido":  "El apellido debe tener al menos 3 caracteres y solo contener letras.",
	"genero":    "Seleccione un género válido.",
	"edad":      "Por favor, introduce una edad válida mayor de 18 años y menor de 100 años.",
	"telefono":  "El teléfono debe tener 9 dígitos y empezar con el número 9.",
	"turno":     "Seleccione un turno válido.",
	"correo":    "Introduce un correo válido.",
	"direccion": "La dirección debe tener al menos 3 caracteres.",
	"username":  "El nombre de usuario debe tener al menos 3 caracteres.",
	"password":  "La contraseña debe tener al menos 8 caracteres, un número, una letra minúscula, una letra mayúscula y un carácter especial.",
	"rol":       "Seleccione un rol válido.",
}

// Turnos y Generos opciones de los selects.
var (
	Turnos  = []string{"mañana", "tarde", "noche"}
	Generos = []string{"masculino", "femenino"}
)

// NewEmpleadoForm formulario vacío con los valores por defecto de la vista.
func NewEmpleadoForm() EmpleadoForm {
	return EmpleadoForm{Genero: "masculino", Turno: "mañana", RolID: strconv.FormatInt(entity.RoleVendedorID, 10)}
}

// EmpleadoFormFrom formulario precargado para editar; la contraseña queda vacía.
func EmpleadoFormFrom(e entity.Empleado) EmpleadoForm {
	return EmpleadoForm{
		Nombre:         e.Nombre,
		Apellido:       e.Apellido,
		Genero:         e.Genero,
		Edad:           strconv.Itoa(e.Edad),
		Telefono:       strconv.FormatInt(e.Telefono, 10),
		Turno:          e.Turno,
		Correo:         e.Correo,
		Direccion:      e.Direccion,
		Username:       e.Username,
		UsernameManual: true,
		RolID:          strconv.FormatInt(e.RolID(), 10),
	}
}

// UsernameState estado de la sugerencia según el formulario recibido.
func (f EmpleadoForm) UsernameState() UsernameState {
	return UsernameState{Value: f.Username, Manual: f.UsernameManual}
}

// EmpleadoOptions contexto de validación. Existentes se usa para detectar duplicados al crear.
type EmpleadoOptions struct {
	Crear      bool
	Existentes []entity.Empleado
	Intn       func(int) int
}

// Empleado valida el formulario completo. Al crear, la contraseña es obligatoria y no se
// aceptan correo ni username repetidos; el error de username propone dos alternativas.
func (fv *Validator) Empleado(f EmpleadoForm, opt EmpleadoOptions) (ports.EmpleadoInput, error) {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.Apellido = strings.TrimSpace(f.Apellido)
	f.Correo = strings.TrimSpace(f.Correo)
	f.Username = strings.TrimSpace(f.Username)
	f.Direccion = strings.TrimSpace(f.Direccion)
	if !f.UsernameManual && f.Username == "" {
		f.Username = SugerirUsername(f.Nombre, f.Apellido)
	}

	errs := fv.check(f, mensajesEmpleado)
	if opt.Crear && f.Password == "" {
		errs["password"] = mensajesEmpleado["password"]
	}
	if opt.Crear {
		for _, e := range opt.Existentes {
			if f.Correo != "" && strings.EqualFold(e.Correo, f.Correo) {
				errs["correo"] = "El correo ya está registrado"
			}
			if f.Username != "" && e.Username == f.Username {
				base := SugerirUsername(f.Nombre, f.Apellido)
				if base == "" {
					base = f.Username
				}
				alt1, alt2 := Alternativas(base, opt.Intn)
				errs["username"] = fmt.Sprintf("El nombre de usuario ya está registrado. Por favor elija otro, como por ejemplo: %s o %s.", alt1, alt2)
			}
		}
	}
	if err := result(errs); err != nil {
		return ports.EmpleadoInput{}, err
	}

	rolID := atoi64(f.RolID)
	if rolID == 0 {
		rolID = entity.RoleVendedorID
	}
	return ports.EmpleadoInput{
		Empleado: entity.Empleado{
			Username:  f.Username,
			Password:  f.Password,
			Nombre:    f.Nombre,
			Apellido:  f.Apellido,
			Genero:    f.Genero,
			Edad:      atoi(f.Edad),
			Telefono:  atoi64(f.Telefono),
			Turno:     f.Turno,
			Correo:    f.Correo,
			Direccion: f.Direccion,
		},
		RolID: rolID,
	}, nil
}
