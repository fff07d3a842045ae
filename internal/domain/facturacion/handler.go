package facturacion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	facturas *FacturaService
	pagos    *PagoService
}

func NewHandler(facturas *FacturaService, pagos *PagoService) *Handler {
	return &Handler{facturas: facturas, pagos: pagos}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/facturas", h.ListFacturas)
	admin.GET("/facturas/:id", h.GetFactura)
	admin.POST("/facturas", h.CreateFactura)
	admin.PUT("/facturas/:id", h.UpdateFactura)
	admin.DELETE("/facturas/:id", h.DeleteFactura)

	admin.GET("/pagos", h.ListPagos)
	admin.GET("/pagos/:id", h.GetPago)
	admin.POST("/pagos", h.CreatePago)
	admin.PUT("/pagos/:id", h.UpdatePago)
	admin.DELETE("/pagos/:id", h.DeletePago)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func bindPayload(c echo.Context) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la solicitud inválido")
	}
	return payload, nil
}

func fail(c echo.Context, err error, notFound string) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, verrs)
	}
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"message": notFound})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) ListFacturas(c echo.Context) error {
	items, err := h.facturas.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetFactura(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Factura no encontrada"})
	}
	f, err := h.facturas.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Factura no encontrada")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) CreateFactura(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	f, err := h.facturas.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Factura no encontrada")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) UpdateFactura(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Factura no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	f, err := h.facturas.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Factura no encontrada")
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFactura(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Factura no encontrada"})
	}
	if err := h.facturas.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Factura no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Factura eliminada"})
}

func (h *Handler) ListPagos(c echo.Context) error {
	items, err := h.pagos.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetPago(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Pago no encontrado"})
	}
	p, err := h.pagos.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Pago no encontrado")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePago(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	p, err := h.pagos.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Pago no encontrado")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePago(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Pago no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	p, err := h.pagos.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Pago no encontrado")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePago(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Pago no encontrado"})
	}
	if err := h.pagos.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Pago no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Pago eliminado"})
}
