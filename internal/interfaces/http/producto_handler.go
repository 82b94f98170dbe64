package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
)

const recursoProductos = "productos"

// ProductoHandler lista, formulario y borrado de productos.
type ProductoHandler struct {
	*console
}

func productoID(p entity.Producto) int64 { return p.ID }

func (h *ProductoHandler) categorias(c *fiber.Ctx) listing.Result[entity.Categoria] {
	return listing.Refresh(c.UserContext(), h.snapshots, GetSessionID(c), recursoCategorias, h.services(c).Categorias.List)
}

func (h *ProductoHandler) show(c *fiber.Ctx, status int, v views.ProductosView, errMsg string) error {
	res := listing.Refresh(c.UserContext(), h.snapshots, GetSessionID(c), recursoProductos, h.services(c).Productos.List)
	if domain.IsSessionExpired(res.Err) {
		return h.expire(c)
	}
	cats := h.categorias(c)
	if domain.IsSessionExpired(cats.Err) {
		return h.expire(c)
	}
	v.Categorias = cats.Rows
	v.Listado = listado(c, res, listing.ProductoColumns, productoID)
	p := h.page(c, access.RouteProductos)
	p.Error = errMsg
	return h.render(c, status, views.ProductosPage(p, v))
}

// List GET /productos; la fecha de ingreso arranca en hoy.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	return h.show(c, fiber.StatusOK, views.ProductosView{Form: h.forms.NewProductoForm()}, "")
}

// Edit GET /productos/:id/editar.
func (h *ProductoHandler) Edit(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Redirect("/productos", fiber.StatusSeeOther)
	}
	prod, err := h.services(c).Productos.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.ProductosView{Form: h.forms.NewProductoForm()}, msg)
		})
	}
	return h.show(c, fiber.StatusOK, views.ProductosView{Form: forms.ProductoFormFrom(*prod), EditID: id}, "")
}

// Save POST /productos y POST /productos/:id.
func (h *ProductoHandler) Save(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoProductos)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.ProductosView{Form: h.forms.NewProductoForm(), EditID: id}, msgEnvioEnCurso)
	}
	defer release()

	var f forms.ProductoForm
	if err := c.BodyParser(&f); err != nil {
		return h.show(c, fiber.StatusBadRequest, views.ProductosView{Form: h.forms.NewProductoForm(), EditID: id}, msgSolicitud)
	}
	cats := h.categorias(c)
	if domain.IsSessionExpired(cats.Err) {
		return h.expire(c)
	}
	prod, err := h.forms.Producto(f, cats.Rows)
	if ve := domain.AsValidation(err); ve != nil {
		return h.show(c, fiber.StatusUnprocessableEntity, views.ProductosView{Form: f, Errores: ve, EditID: id}, "")
	}

	svc := h.services(c).Productos
	if id > 0 {
		prod.ID = id
		_, err = svc.Update(c.UserContext(), id, prod)
	} else {
		_, err = svc.Create(c.UserContext(), prod)
	}
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.ProductosView{Form: f, EditID: id}, "No se pudo guardar el producto. "+msg)
		})
	}
	h.setFlash(c, "Producto guardado correctamente.")
	return c.Redirect("/productos", fiber.StatusSeeOther)
}

// ConfirmDelete GET /productos/:id/eliminar.
func (h *ProductoHandler) ConfirmDelete(c *fiber.Ctx) error {
	id := paramID(c)
	prod, err := h.services(c).Productos.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.ProductosView{Form: h.forms.NewProductoForm()}, msg)
		})
	}
	return h.render(c, fiber.StatusOK, views.ConfirmDelete(h.page(c, access.RouteProductos),
		"Eliminar producto",
		fmt.Sprintf("¿Está seguro de eliminar el producto %q? Esta acción no se puede deshacer.", prod.Nombre),
		fmt.Sprintf("/productos/%d/eliminar", id), "/productos"))
}

// Delete POST /productos/:id/eliminar.
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoProductos)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.ProductosView{Form: h.forms.NewProductoForm()}, msgEnvioEnCurso)
	}
	defer release()

	if err := h.services(c).Productos.Delete(c.UserContext(), id); err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.ProductosView{Form: h.forms.NewProductoForm()}, "No se pudo eliminar el producto. "+msg)
		})
	}
	h.setFlash(c, "Producto eliminado correctamente.")
	return c.Redirect("/productos", fiber.StatusSeeOther)
}
