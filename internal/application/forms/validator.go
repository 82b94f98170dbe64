// Package forms valida los formularios de la consola y los convierte en entidades.
// Todos los campos se validan juntos; los mensajes se devuelven por campo.
package forms

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bodega-titos/consola/internal/domain"
)

const layoutFecha = "2006-01-02"

// DiasIngresoPermitidos antigüedad máxima de fecha_ingreso de un producto.
const DiasIngresoPermitidos = 7

var (
	reLetras   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	reTelefono = regexp.MustCompile(`^9\d{8}$`)
	reDigito   = regexp.MustCompile(`[0-9]`)
	reMinus    = regexp.MustCompile(`[a-z]`)
	reMayus    = regexp.MustCompile(`[A-Z]`)
	reEspecial = regexp.MustCompile(`[@#$%^&/+=]`)
)

// Validator envuelve validator.Validate con las reglas propias de la bodega.
type Validator struct {
	v   *validator.Validate
	loc *time.Location
	now func() time.Time
}

// NewValidator registra las etiquetas personalizadas. loc es la zona horaria de la tienda.
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.Local
	}
	fv := &Validator{v: validator.New(), loc: loc, now: time.Now}

	fv.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(fv.v.RegisterValidation("letras", func(fl validator.FieldLevel) bool {
		return reLetras.MatchString(fl.Field().String())
	}))
	must(fv.v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return reTelefono.MatchString(fl.Field().String())
	}))
	must(fv.v.RegisterValidation("password_fuerte", func(fl validator.FieldLevel) bool {
		return PasswordFuerte(fl.Field().String())
	}))
	must(fv.v.RegisterValidation("entero_min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		lim, perr := strconv.Atoi(fl.Param())
		return err == nil && perr == nil && n >= lim
	}))
	must(fv.v.RegisterValidation("entero_max", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		lim, perr := strconv.Atoi(fl.Param())
		return err == nil && perr == nil && n <= lim
	}))
	must(fv.v.RegisterValidation("decimal_min", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		lim, perr := decimal.NewFromString(fl.Param())
		return err == nil && perr == nil && d.GreaterThanOrEqual(lim)
	}))
	must(fv.v.RegisterValidation("fecha_reciente", func(fl validator.FieldLevel) bool {
		return fv.fechaReciente(fl.Field().String())
	}))

	return fv
}

// WithClock reemplaza el reloj usado para "hoy" y para cotizar ventas sin hora explícita.
func (fv *Validator) WithClock(now func() time.Time) *Validator {
	fv.now = now
	return fv
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// PasswordFuerte al menos 8 caracteres con dígito, minúscula, mayúscula y uno de @#$%^&/+=.
func PasswordFuerte(p string) bool {
	return len(p) >= 8 &&
		reDigito.MatchString(p) &&
		reMinus.MatchString(p) &&
		reMayus.MatchString(p) &&
		reEspecial.MatchString(p)
}

// fechaReciente YYYY-MM-DD entre hoy-7 y hoy, en la zona de la tienda.
func (fv *Validator) fechaReciente(s string) bool {
	d, err := time.ParseInLocation(layoutFecha, strings.TrimSpace(s), fv.loc)
	if err != nil {
		return false
	}
	hoy := fv.hoy()
	return !d.After(hoy) && !d.Before(hoy.AddDate(0, 0, -DiasIngresoPermitidos))
}

func (fv *Validator) hoy() time.Time {
	n := fv.now().In(fv.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, fv.loc)
}

// Hoy fecha actual de la tienda en formato YYYY-MM-DD (valor por defecto del formulario).
func (fv *Validator) Hoy() string {
	return fv.hoy().Format(layoutFecha)
}

// check aplica las etiquetas de s y traduce cada campo inválido a su mensaje fijo.
func (fv *Validator) check(s interface{}, mensajes map[string]string) map[string]string {
	errs := map[string]string{}
	err := fv.v.Struct(s)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		if _, dup := errs[fe.Field()]; dup {
			continue
		}
		if msg, ok := mensajes[fe.Field()]; ok {
			errs[fe.Field()] = msg
		} else {
			errs[fe.Field()] = "Valor inválido."
		}
	}
	return errs
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atoi64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func toDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func result(errs map[string]string) error {
	return domain.NewValidationError(errs)
}
