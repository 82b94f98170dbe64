package views

import (
	"fmt"

	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CategoriasView datos de la página de categorías.
type CategoriasView struct {
	Listado Listado[entity.Categoria]
	Form    forms.CategoriaForm
	Errores *domain.ValidationError
	EditID  int64
}

// CategoriasPage lista + formulario de categorías.
func CategoriasPage(p Page, v CategoriasView) Node {
	action, title := "/categorias", "Agregar Categoría"
	if v.EditID > 0 {
		action, title = fmt.Sprintf("/categorias/%d", v.EditID), "Editar Categoría"
	}
	return Layout("Categorías", p,
		formCard(title, action, p.CSRF, v.EditID > 0, "/categorias",
			textField(v.Errores, "Nombre", "nombre", "text", v.Form.Nombre, Required()),
		),
		tabla("/categorias", v.Listado),
		submitOnceScript(),
	)
}
