package forms

import (
	"strings"

	"github.com/bodega-titos/consola/internal/domain/entity"
)

// CategoriaForm campos del formulario de categoría.
type CategoriaForm struct {
	Nombre string `form:"nombre" validate:"min=3,letras"`
}

var mensajesCategoria = map[string]string{
	"nombre": "El nombre debe tener al menos 3 caracteres y solo contener letras.",
}

// CategoriaFormFrom formulario precargado para editar.
func CategoriaFormFrom(c entity.Categoria) CategoriaForm {
	return CategoriaForm{Nombre: c.Nombre}
}

// Categoria valida y devuelve la entidad a enviar; error *domain.ValidationError si falla.
func (fv *Validator) Categoria(f CategoriaForm) (entity.Categoria, error) {
	f.Nombre = strings.TrimSpace(f.Nombre)
	if err := result(fv.check(f, mensajesCategoria)); err != nil {
		return entity.Categoria{}, err
	}
	return entity.Categoria{Nombre: f.Nombre}, nil
}
