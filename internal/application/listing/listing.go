// Package listing filtra y ordena las filas de las tablas sobre copias de los datos recibidos.
package listing

import (
	"cmp"
	"slices"
	"strings"
)

// Column columna de una tabla: texto visible y comparador para ordenar.
type Column[T any] struct {
	Key   string
	Label string
	Text  func(T) string
	Cmp   func(a, b T) int // nil ordena por Text
}

// Query filtro de texto y orden pedidos por la vista.
type Query struct {
	Q     string `query:"q"`
	Orden string `query:"orden"`
	Dir   string `query:"dir"`
}

// Desc indica orden descendente.
func (q Query) Desc() bool {
	return strings.EqualFold(q.Dir, "desc")
}

// Apply devuelve una nueva lista filtrada y ordenada; rows no se modifica.
func Apply[T any](rows []T, cols []Column[T], q Query) []T {
	out := Filter(rows, cols, q.Q)
	for _, c := range cols {
		if c.Key == q.Orden {
			SortInPlace(out, c, q.Desc())
			break
		}
	}
	return out
}

// Filter filas cuyo texto en alguna columna contiene q (sin distinguir mayúsculas).
// Siempre devuelve una copia.
func Filter[T any](rows []T, cols []Column[T], q string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if q == "" || matches(r, cols, q) {
			out = append(out, r)
		}
	}
	return out
}

func matches[T any](r T, cols []Column[T], q string) bool {
	for _, c := range cols {
		if c.Text != nil && strings.Contains(strings.ToLower(c.Text(r)), q) {
			return true
		}
	}
	return false
}

// SortInPlace ordena establemente; solo se usa sobre copias.
func SortInPlace[T any](rows []T, c Column[T], desc bool) {
	less := c.Cmp
	if less == nil {
		less = func(a, b T) int {
			return cmp.Compare(strings.ToLower(c.Text(a)), strings.ToLower(c.Text(b)))
		}
	}
	slices.SortStableFunc(rows, func(a, b T) int {
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}
