package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
)

const recursoEmpleados = "empleados"

// EmpleadoHandler lista, formulario, borrado y sugerencia de username de empleados.
type EmpleadoHandler struct {
	*console
}

func empleadoID(e entity.Empleado) int64 { return e.ID }

func (h *EmpleadoHandler) empleados(c *fiber.Ctx) listing.Result[entity.Empleado] {
	return listing.Refresh(c.UserContext(), h.snapshots, GetSessionID(c), recursoEmpleados, h.services(c).Empleados.List)
}

func (h *EmpleadoHandler) show(c *fiber.Ctx, status int, v views.EmpleadosView, errMsg string) error {
	res := h.empleados(c)
	if domain.IsSessionExpired(res.Err) {
		return h.expire(c)
	}
	roles, err := h.services(c).Roles.List(c.UserContext())
	if domain.IsSessionExpired(err) {
		return h.expire(c)
	}
	if err != nil {
		h.log.Warn().Err(err).Msg("listar roles")
	}
	v.Roles = roles
	v.Listado = listado(c, res, listing.EmpleadoColumns, empleadoID)
	p := h.page(c, access.RouteEmpleados)
	p.Error = errMsg
	return h.render(c, status, views.EmpleadosPage(p, v))
}

// List GET /empleados.
func (h *EmpleadoHandler) List(c *fiber.Ctx) error {
	return h.show(c, fiber.StatusOK, views.EmpleadosView{Form: forms.NewEmpleadoForm()}, "")
}

// Edit GET /empleados/:id/editar; la contraseña nunca se precarga.
func (h *EmpleadoHandler) Edit(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Redirect("/empleados", fiber.StatusSeeOther)
	}
	e, err := h.services(c).Empleados.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.EmpleadosView{Form: forms.NewEmpleadoForm()}, msg)
		})
	}
	return h.show(c, fiber.StatusOK, views.EmpleadosView{Form: forms.EmpleadoFormFrom(*e), EditID: id}, "")
}

// Save POST /empleados (alta) y POST /empleados/:id (edición). Al crear se rechazan correo
// y username repetidos comparando con la última lista conocida.
func (h *EmpleadoHandler) Save(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoEmpleados)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.EmpleadosView{Form: forms.NewEmpleadoForm(), EditID: id}, msgEnvioEnCurso)
	}
	defer release()

	var f forms.EmpleadoForm
	if err := c.BodyParser(&f); err != nil {
		return h.show(c, fiber.StatusBadRequest, views.EmpleadosView{Form: forms.NewEmpleadoForm(), EditID: id}, msgSolicitud)
	}

	opt := forms.EmpleadoOptions{Crear: id == 0}
	if opt.Crear {
		res := h.empleados(c)
		if domain.IsSessionExpired(res.Err) {
			return h.expire(c)
		}
		opt.Existentes = res.Rows
	}
	in, err := h.forms.Empleado(f, opt)
	if ve := domain.AsValidation(err); ve != nil {
		f.Password = ""
		return h.show(c, fiber.StatusUnprocessableEntity, views.EmpleadosView{Form: f, Errores: ve, EditID: id}, "")
	}

	svc := h.services(c).Empleados
	if id > 0 {
		in.ID = id
		_, err = svc.Update(c.UserContext(), id, in)
	} else {
		_, err = svc.Create(c.UserContext(), in)
	}
	if err != nil {
		f.Password = ""
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.EmpleadosView{Form: f, EditID: id}, "No se pudo guardar el empleado. "+msg)
		})
	}
	h.setFlash(c, "Empleado guardado correctamente.")
	return c.Redirect("/empleados", fiber.StatusSeeOther)
}

// ConfirmDelete GET /empleados/:id/eliminar.
func (h *EmpleadoHandler) ConfirmDelete(c *fiber.Ctx) error {
	id := paramID(c)
	e, err := h.services(c).Empleados.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.EmpleadosView{Form: forms.NewEmpleadoForm()}, msg)
		})
	}
	return h.render(c, fiber.StatusOK, views.ConfirmDelete(h.page(c, access.RouteEmpleados),
		"Eliminar empleado",
		fmt.Sprintf("¿Está seguro de eliminar al empleado %q (%s)? Esta acción no se puede deshacer.", e.NombreCompleto(), e.Username),
		fmt.Sprintf("/empleados/%d/eliminar", id), "/empleados"))
}

// Delete POST /empleados/:id/eliminar.
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoEmpleados)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.EmpleadosView{Form: forms.NewEmpleadoForm()}, msgEnvioEnCurso)
	}
	defer release()

	if err := h.services(c).Empleados.Delete(c.UserContext(), id); err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.EmpleadosView{Form: forms.NewEmpleadoForm()}, "No se pudo eliminar el empleado. "+msg)
		})
	}
	h.setFlash(c, "Empleado eliminado correctamente.")
	return c.Redirect("/empleados", fiber.StatusSeeOther)
}

// Sugerencia godoc
// @Summary      Sugerir nombre de usuario
// @Description  Inicial del nombre en minúscula + primer apellido capitalizado. Si el campo ya fue editado a mano se devuelve sin cambios.
// @Tags         empleados
// @Produce      json
// @Param        nombre    query  string  false  "Nombre"
// @Param        apellido  query  string  false  "Apellido"
// @Param        username  query  string  false  "Valor actual del campo"
// @Param        manual    query  bool    false  "El campo fue editado a mano"
// @Success      200  {object}  dto.SugerenciaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/empleados/sugerencia [get]
func (h *EmpleadoHandler) Sugerencia(c *fiber.Ctx) error {
	var in dto.SugerenciaRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	st := forms.UsernameState{Value: in.Username}
	if in.Manual {
		st = st.OnEdit(in.Username)
	}
	st = st.OnNombreChange(in.Nombre, in.Apellido)
	return c.JSON(dto.SugerenciaResponse{Value: st.Value, Manual: st.Manual})
}
