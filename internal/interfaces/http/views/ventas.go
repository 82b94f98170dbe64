package views

import (
	"fmt"
	"strconv"

	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/domain/pricing"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// VentasView datos de la página de ventas.
type VentasView struct {
	Listado   Listado[entity.Venta]
	Form      forms.VentaForm
	Errores   *domain.ValidationError
	Productos []entity.Producto
	Empleados []entity.Empleado
	Tarifa    pricing.Tarifa
	EditID    int64
}

func productoOptions(ps []entity.Producto) []option {
	out := make([]option, 0, len(ps))
	for _, p := range ps {
		out = append(out, option{
			Value: strconv.FormatInt(p.ID, 10),
			Label: fmt.Sprintf("%s (stock %d)", p.Nombre, p.Cantidad),
			Attrs: []Node{Attr("data-stock", strconv.Itoa(p.Cantidad))},
		})
	}
	return out
}

func empleadoOptions(es []entity.Empleado) []option {
	out := make([]option, 0, len(es))
	for _, e := range es {
		out = append(out, option{Value: strconv.FormatInt(e.ID, 10), Label: e.NombreCompleto()})
	}
	return out
}

// VentasPage lista + formulario de ventas. El total mostrado es informativo; se recalcula al guardar.
func VentasPage(p Page, v VentasView) Node {
	editando := v.EditID > 0
	action, title := "/ventas", "Agregar Venta"
	if editando {
		action, title = fmt.Sprintf("/ventas/%d", v.EditID), "Editar Venta"
	}
	f := v.Form
	tarifa := "Tarifa de día"
	if v.Tarifa == pricing.TarifaNoche {
		tarifa = "Tarifa de noche"
	}

	return Layout("Ventas", p,
		formCard(title, action, p.CSRF, editando, "/ventas",
			selectField(v.Errores, "Vendedor", "empleado", f.EmpleadoID, empleadoOptions(v.Empleados)),
			textField(v.Errores, "Cliente", "nombre_cliente", "text", f.NombreCliente, Required()),
			filterableSelect(v.Errores, "Producto", "producto", f.ProductoID, productoOptions(v.Productos)),
			textField(v.Errores, "Cantidad", "cantidad", "number", f.Cantidad, Min("1")),
			selectField(v.Errores, "Método de pago", "metodo_pago", f.MetodoPago, stringOptions(entity.MetodosPago)),
			Div(Class("col-md-4"),
				Label(Class("form-label"), For("total"), Text("Total")),
				Input(ID("total"), Type("text"), Class("form-control"), ReadOnly(), Value("")),
				Div(ID("tarifa"), Class("form-text"), Text(tarifa)),
				fieldError(v.Errores, "total"),
			),
		),
		If(access.IsPrivileged(p.Principal), Div(Class("mb-3 text-end"),
			A(Class("btn btn-outline-secondary"), Href("/ventas/reporte.pdf"), I(Class("bi bi-file-earmark-pdf me-1")), Text("Reporte PDF")),
		)),
		tabla("/ventas", v.Listado),
		cotizacionScript(),
		filterScript(),
		submitOnceScript(),
	)
}

// cotizacionScript recalcula el total al cambiar producto o cantidad y cada minuto,
// para que la tarifa cambie si el formulario queda abierto al pasar las 22:00 o las 05:00.
func cotizacionScript() Node {
	return Script(Raw(`(function(){
var p=document.getElementById('producto'),c=document.getElementById('cantidad'),t=document.getElementById('total'),l=document.getElementById('tarifa');
if(!p||!c||!t){return;}
function cotizar(){
if(!p.value||!c.value){t.value='';return;}
var q=new URLSearchParams({producto:p.value,cantidad:c.value});
fetch('/api/ventas/cotizacion?'+q.toString(),{credentials:'same-origin'}).then(function(r){return r.ok?r.json():null;}).then(function(r){
if(!r){return;}t.value=Number(r.total).toFixed(2);if(l){l.textContent=r.tarifa==='noche'?'Tarifa de noche':'Tarifa de día';}
});
}
p.addEventListener('change',cotizar);c.addEventListener('input',cotizar);
setInterval(cotizar,60000);cotizar();
})();`))
}
