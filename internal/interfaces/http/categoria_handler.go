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

const recursoCategorias = "categorias"

// CategoriaHandler lista, formulario y borrado de categorías.
type CategoriaHandler struct {
	*console
}

func categoriaID(c entity.Categoria) int64 { return c.ID }

func (h *CategoriaHandler) show(c *fiber.Ctx, status int, v views.CategoriasView, errMsg string) error {
	res := listing.Refresh(c.UserContext(), h.snapshots, GetSessionID(c), recursoCategorias, h.services(c).Categorias.List)
	if domain.IsSessionExpired(res.Err) {
		return h.expire(c)
	}
	v.Listado = listado(c, res, listing.CategoriaColumns, categoriaID)
	p := h.page(c, access.RouteCategorias)
	p.Error = errMsg
	return h.render(c, status, views.CategoriasPage(p, v))
}

// List GET /categorias.
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	return h.show(c, fiber.StatusOK, views.CategoriasView{}, "")
}

// Edit GET /categorias/:id/editar precarga el formulario.
func (h *CategoriaHandler) Edit(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Redirect("/categorias", fiber.StatusSeeOther)
	}
	cat, err := h.services(c).Categorias.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.CategoriasView{}, msg)
		})
	}
	return h.show(c, fiber.StatusOK, views.CategoriasView{Form: forms.CategoriaFormFrom(*cat), EditID: id}, "")
}

// Save POST /categorias (alta) y POST /categorias/:id (edición).
func (h *CategoriaHandler) Save(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoCategorias)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.CategoriasView{EditID: id}, msgEnvioEnCurso)
	}
	defer release()

	var f forms.CategoriaForm
	if err := c.BodyParser(&f); err != nil {
		return h.show(c, fiber.StatusBadRequest, views.CategoriasView{EditID: id}, msgSolicitud)
	}
	cat, err := h.forms.Categoria(f)
	if ve := domain.AsValidation(err); ve != nil {
		return h.show(c, fiber.StatusUnprocessableEntity, views.CategoriasView{Form: f, Errores: ve, EditID: id}, "")
	}

	svc := h.services(c).Categorias
	if id > 0 {
		cat.ID = id
		_, err = svc.Update(c.UserContext(), id, cat)
	} else {
		_, err = svc.Create(c.UserContext(), cat)
	}
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.CategoriasView{Form: f, EditID: id}, "No se pudo guardar la categoría. "+msg)
		})
	}
	h.setFlash(c, "Categoría guardada correctamente.")
	return c.Redirect("/categorias", fiber.StatusSeeOther)
}

// ConfirmDelete GET /categorias/:id/eliminar.
func (h *CategoriaHandler) ConfirmDelete(c *fiber.Ctx) error {
	id := paramID(c)
	cat, err := h.services(c).Categorias.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.CategoriasView{}, msg)
		})
	}
	return h.render(c, fiber.StatusOK, views.ConfirmDelete(h.page(c, access.RouteCategorias),
		"Eliminar categoría",
		fmt.Sprintf("¿Está seguro de eliminar la categoría %q? Esta acción no se puede deshacer.", cat.Nombre),
		fmt.Sprintf("/categorias/%d/eliminar", id), "/categorias"))
}

// Delete POST /categorias/:id/eliminar.
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoCategorias)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.CategoriasView{}, msgEnvioEnCurso)
	}
	defer release()

	if err := h.services(c).Categorias.Delete(c.UserContext(), id); err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.CategoriasView{}, "No se pudo eliminar la categoría. "+msg)
		})
	}
	h.setFlash(c, "Categoría eliminada correctamente.")
	return c.Redirect("/categorias", fiber.StatusSeeOther)
}
