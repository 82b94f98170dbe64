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

// ProductosView datos de la página de productos.
type ProductosView struct {
	Listado    Listado[entity.Producto]
	Form       forms.ProductoForm
	Errores    *domain.ValidationError
	Categorias []entity.Categoria
	EditID     int64
}

func categoriaOptions(cats []entity.Categoria) []option {
	out := make([]option, 0, len(cats))
	for _, c := range cats {
		out = append(out, option{Value: strconv.FormatInt(c.ID, 10), Label: c.Nombre})
	}
	return out
}

// ProductosPage lista + formulario de productos.
func ProductosPage(p Page, v ProductosView) Node {
	editando := v.EditID > 0
	action, title := "/productos", "Agregar Producto"
	if editando {
		action, title = fmt.Sprintf("/productos/%d", v.EditID), "Editar Producto"
	}
	f := v.Form
	nocheAttrs := []Node{ID("con_precio_noche"), Name("con_precio_noche"), Type("checkbox"), Class("form-check-input"), Value("true")}
	if f.ConPrecioNoche {
		nocheAttrs = append(nocheAttrs, Checked())
	}

	return Layout("Productos", p,
		formCard(title, action, p.CSRF, editando, "/productos",
			textField(v.Errores, "Nombre", "nombre", "text", f.Nombre, Required()),
			textField(v.Errores, "Proveedor", "proveedor", "text", f.Proveedor),
			textField(v.Errores, "Descripción", "descripcion", "text", f.Descripcion),
			filterableSelect(v.Errores, "Categoría", "categoria", f.CategoriaID, categoriaOptions(v.Categorias)),
			textField(v.Errores, "Cantidad", "cantidad", "number", f.Cantidad, Min("1")),
			textField(v.Errores, "Fecha de ingreso", "fecha_ingreso", "date", f.FechaIngreso),
			textField(v.Errores, "Precio día", "precio_dia", "number", f.PrecioDia, Step("0.01"), Min(forms.PrecioMinimo)),
			Div(Class("col-md-4 d-flex align-items-end"),
				Div(Class("form-check"),
					Input(nocheAttrs...),
					Label(Class("form-check-label"), For("con_precio_noche"), Text("Precio de noche diferente")),
				),
			),
			textField(v.Errores, "Precio noche", "precio_noche", "number", f.PrecioNoche, Step("0.01"), Min(forms.PrecioMinimo)),
		),
		tabla("/productos", v.Listado),
		Script(Raw(`(function(){var c=document.getElementById('con_precio_noche'),p=document.getElementById('precio_noche');if(!c||!p){return;}function t(){p.disabled=!c.checked;}c.addEventListener('change',t);t();})();`)),
		filterScript(),
		submitOnceScript(),
	)
}

// filterableSelect select con un buscador que oculta las opciones que no coinciden.
func filterableSelect(ve *domain.ValidationError, label, name, selected string, opts []option) Node {
	return Div(Class("col-md-4"),
		Input(Type("search"), Class("form-control form-control-sm mb-1"), Placeholder("Buscar "+label),
			Attr("data-filter-for", name)),
		selectField(ve, label, name, selected, opts),
	)
}

func filterScript() Node {
	return Script(Raw(`document.querySelectorAll('[data-filter-for]').forEach(function(i){var s=document.getElementById(i.getAttribute('data-filter-for'));if(!s){return;}i.addEventListener('input',function(){var q=i.value.toLowerCase();Array.prototype.forEach.call(s.options,function(o){if(!o.value){return;}o.hidden=q!==''&&o.text.toLowerCase().indexOf(q)<0;});});});`))
}
