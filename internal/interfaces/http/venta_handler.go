package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/application/forms"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/access"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/domain/pricing"
	"github.com/bodega-titos/consola/internal/interfaces/http/views"
)

const recursoVentas = "ventas"

// VentaHandler registro de ventas, cotización y reporte PDF.
type VentaHandler struct {
	*console
}

func ventaID(v entity.Venta) int64 { return v.ID }

// catalogo productos y vendedores elegibles. Un VENDEDOR sin permiso para listar empleados
// solo puede elegirse a sí mismo. err solo es no-nil con un 401; cualquier otro fallo queda
// en prods.Err y prods.Rows puede ser la última lista guardada.
func (h *VentaHandler) catalogo(c *fiber.Ctx) (prods listing.Result[entity.Producto], empleados []entity.Empleado, err error) {
	sid := GetSessionID(c)
	svc := h.services(c)
	prods = listing.Refresh(c.UserContext(), h.snapshots, sid, recursoProductos, svc.Productos.List)
	if domain.IsSessionExpired(prods.Err) {
		return prods, nil, prods.Err
	}
	emps := listing.Refresh(c.UserContext(), h.snapshots, sid, recursoEmpleados, svc.Empleados.List)
	if domain.IsSessionExpired(emps.Err) {
		return prods, nil, emps.Err
	}
	empleados = emps.Rows
	if len(empleados) == 0 {
		if p := GetPrincipal(c); p != nil {
			empleados = []entity.Empleado{*p}
		}
	}
	return prods, empleados, nil
}

func (h *VentaHandler) nuevaVenta(c *fiber.Ctx) forms.VentaForm {
	f := forms.VentaForm{MetodoPago: entity.PagoEfectivo}
	if p := GetPrincipal(c); p != nil {
		f.EmpleadoID = strconv.FormatInt(p.ID, 10)
	}
	return f
}

func (h *VentaHandler) show(c *fiber.Ctx, status int, v views.VentasView, errMsg string) error {
	res := listing.Refresh(c.UserContext(), h.snapshots, GetSessionID(c), recursoVentas, h.services(c).Ventas.List)
	if domain.IsSessionExpired(res.Err) {
		return h.expire(c)
	}
	prods, empleados, err := h.catalogo(c)
	if err != nil {
		return h.expire(c)
	}
	v.Productos = prods.Rows
	v.Empleados = empleados
	v.Tarifa = pricing.TarifaAt(h.now(), h.loc)
	v.Listado = listado(c, res, listing.VentaColumns, ventaID)
	p := h.page(c, access.RouteVentas)
	p.Error = errMsg
	return h.render(c, status, views.VentasPage(p, v))
}

// List GET /ventas; el vendedor por defecto es el principal.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	return h.show(c, fiber.StatusOK, views.VentasView{Form: h.nuevaVenta(c)}, "")
}

// Edit GET /ventas/:id/editar.
func (h *VentaHandler) Edit(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return c.Redirect("/ventas", fiber.StatusSeeOther)
	}
	venta, err := h.services(c).Ventas.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: h.nuevaVenta(c)}, msg)
		})
	}
	return h.show(c, fiber.StatusOK, views.VentasView{Form: forms.VentaFormFrom(*venta), EditID: id}, "")
}

// Save POST /ventas y POST /ventas/:id. El total se recalcula aquí con la hora actual;
// lo que mostraba el formulario es solo informativo.
func (h *VentaHandler) Save(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoVentas)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.VentasView{Form: h.nuevaVenta(c), EditID: id}, msgEnvioEnCurso)
	}
	defer release()

	var f forms.VentaForm
	if err := c.BodyParser(&f); err != nil {
		return h.show(c, fiber.StatusBadRequest, views.VentasView{Form: h.nuevaVenta(c), EditID: id}, msgSolicitud)
	}
	prods, empleados, err := h.catalogo(c)
	if err != nil {
		return h.expire(c)
	}
	// El stock se valida solo contra la lista recién leída; la guardada sirve para mostrar.
	if prods.Err != nil {
		return h.failed(c, prods.Err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: f, EditID: id}, "No se pudo verificar el stock actual. "+msg)
		})
	}
	venta, err := h.forms.Venta(f, forms.VentaOptions{
		Productos: prods.Rows,
		Empleados: empleados,
		Vendedor:  GetPrincipal(c),
		Ahora:     h.now(),
		Zona:      h.loc,
	})
	if ve := domain.AsValidation(err); ve != nil {
		return h.show(c, fiber.StatusUnprocessableEntity, views.VentasView{Form: f, Errores: ve, EditID: id}, "")
	}

	svc := h.services(c).Ventas
	if id > 0 {
		venta.ID = id
		_, err = svc.Update(c.UserContext(), id, venta)
	} else {
		_, err = svc.Create(c.UserContext(), venta)
	}
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: f, EditID: id}, "No se pudo guardar la venta. "+msg)
		})
	}
	h.log.Info().Int64("producto", venta.Producto.ID).Int("cantidad", venta.Cantidad).
		Str("total", venta.Total.StringFixed(2)).Msg("venta registrada")
	h.setFlash(c, "Venta guardada correctamente.")
	return c.Redirect("/ventas", fiber.StatusSeeOther)
}

// ConfirmDelete GET /ventas/:id/eliminar.
func (h *VentaHandler) ConfirmDelete(c *fiber.Ctx) error {
	id := paramID(c)
	venta, err := h.services(c).Ventas.GetByID(c.UserContext(), id)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: h.nuevaVenta(c)}, msg)
		})
	}
	return h.render(c, fiber.StatusOK, views.ConfirmDelete(h.page(c, access.RouteVentas),
		"Eliminar venta",
		fmt.Sprintf("¿Está seguro de eliminar la venta #%d de %q por S/ %s? Esta acción no se puede deshacer.",
			venta.ID, venta.NombreCliente, venta.Total.StringFixed(2)),
		fmt.Sprintf("/ventas/%d/eliminar", id), "/ventas"))
}

// Delete POST /ventas/:id/eliminar.
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	release, err := h.guard.Acquire(GetSessionID(c), recursoVentas)
	if err != nil {
		return h.show(c, fiber.StatusConflict, views.VentasView{Form: h.nuevaVenta(c)}, msgEnvioEnCurso)
	}
	defer release()

	if err := h.services(c).Ventas.Delete(c.UserContext(), id); err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: h.nuevaVenta(c)}, "No se pudo eliminar la venta. "+msg)
		})
	}
	h.setFlash(c, "Venta eliminada correctamente.")
	return c.Redirect("/ventas", fiber.StatusSeeOther)
}

// Cotizacion godoc
// @Summary      Cotizar una venta
// @Description  Aplica la tarifa día/noche vigente en este instante (noche de 22:00 a 05:00, hora de la tienda).
// @Tags         ventas
// @Produce      json
// @Param        producto  query  int  true  "ID del producto"
// @Param        cantidad  query  int  true  "Cantidad"
// @Success      200  {object}  dto.CotizacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/cotizacion [get]
func (h *VentaHandler) Cotizacion(c *fiber.Ctx) error {
	var in dto.CotizacionRequest
	if err := c.QueryParser(&in); err != nil || in.ProductoID <= 0 || in.Cantidad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto y cantidad deben ser mayores que cero"})
	}
	prod, err := h.services(c).Productos.GetByID(c.UserContext(), in.ProductoID)
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			status := fiber.StatusBadGateway
			if errors.Is(err, domain.ErrNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: msg})
		})
	}
	cot := pricing.Cotizar(h.now(), h.loc, *prod, in.Cantidad)
	return c.JSON(dto.CotizacionResponse{
		Tarifa:         string(cot.Tarifa),
		Hora:           cot.Hora,
		PrecioUnitario: json.Number(cot.PrecioUnitario.StringFixed(2)),
		Total:          json.Number(cot.Total.StringFixed(2)),
		Stock:          prod.Cantidad,
		CalculadaEn:    cot.CalculadaEn,
	})
}

// Reporte GET /ventas/reporte.pdf (solo ADMIN).
func (h *VentaHandler) Reporte(c *fiber.Ctx) error {
	ventas, err := h.services(c).Ventas.List(c.UserContext())
	if err != nil {
		return h.failed(c, err, func(msg string) error {
			return h.show(c, fiber.StatusBadGateway, views.VentasView{Form: h.nuevaVenta(c)}, "No se pudo generar el reporte. "+msg)
		})
	}
	generadoPor := ""
	if p := GetPrincipal(c); p != nil {
		generadoPor = p.NombreCompleto()
	}
	pdf, err := h.report.GenerarPDF(c.UserContext(), ventas, generadoPor)
	if err != nil {
		h.log.Error().Err(err).Msg("generar reporte de ventas")
		return h.show(c, fiber.StatusInternalServerError, views.VentasView{Form: h.nuevaVenta(c)}, "No se pudo generar el reporte.")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="reporte-ventas-%s.pdf"`, h.now().In(h.loc).Format("20060102")))
	return c.Send(pdf)
}
