package forms

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.Spanish)
	title = cases.Title(language.Spanish)
)

// SugerirUsername inicial del nombre en minúscula + primer apellido capitalizado.
// "Juan", "perez garcia" -> "jPerez".
func SugerirUsername(nombre, apellido string) string {
	nombre = strings.TrimSpace(nombre)
	partes := strings.Fields(apellido)
	if nombre == "" || len(partes) == 0 {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(nombre)
	return lower.String(string(r)) + title.String(partes[0])
}

// UsernameState valor del campo username y si el usuario ya lo editó a mano.
// Una vez Manual, los cambios de nombre o apellido no lo sobrescriben.
type UsernameState struct {
	Value  string `json:"value"`
	Manual bool   `json:"manual"`
}

// OnNombreChange recalcula la sugerencia salvo que el campo haya sido editado.
func (s UsernameState) OnNombreChange(nombre, apellido string) UsernameState {
	if s.Manual {
		return s
	}
	return UsernameState{Value: SugerirUsername(nombre, apellido)}
}

// OnEdit registra una edición manual del campo.
func (s UsernameState) OnEdit(value string) UsernameState {
	return UsernameState{Value: value, Manual: true}
}

// Alternativas dos propuestas <base><0..99> para un username ya registrado.
func Alternativas(base string, intn func(int) int) (string, string) {
	if intn == nil {
		intn = rand.IntN
	}
	return fmt.Sprintf("%s%d", base, intn(100)), fmt.Sprintf("%s%d", base, intn(100))
}
