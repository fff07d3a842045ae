package laboratorio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	laboratorios *LaboratorioService
	examenes     *ExamenMedicoService
	ordenes      *OrdenExamenService
}

func NewHandler(laboratorios *LaboratorioService, examenes *ExamenMedicoService, ordenes *OrdenExamenService) *Handler {
	return &Handler{laboratorios: laboratorios, examenes: examenes, ordenes: ordenes}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/laboratorios", h.ListLaboratorios)
	admin.GET("/laboratorios/:id", h.GetLaboratorio)
	admin.POST("/laboratorios", h.CreateLaboratorio)
	admin.PUT("/laboratorios/:id", h.UpdateLaboratorio)
	admin.DELETE("/laboratorios/:id", h.DeleteLaboratorio)

	// historical wire name kept for client compatibility
	admin.GET("/examenes-Medico", h.ListExamenes)
	admin.GET("/examenes-Medico/:id", h.GetExamen)
	admin.POST("/examenes-Medico", h.CreateExamen)
	admin.PUT("/examenes-Medico/:id", h.UpdateExamen)
	admin.DELETE("/examenes-Medico/:id", h.DeleteExamen)

	admin.GET("/ordenes-examenes", h.ListOrdenes)
	admin.GET("/ordenes-examenes/:id", h.GetOrden)
	admin.POST("/ordenes-examenes", h.CreateOrden)
	admin.PUT("/ordenes-examenes/:id", h.UpdateOrden)
	admin.DELETE("/ordenes-examenes/:id", h.DeleteOrden)
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

func (h *Handler) ListLaboratorios(c echo.Context) error {
	items, err := h.laboratorios.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetLaboratorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Laboratorio no encontrado"})
	}
	l, err := h.laboratorios.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Laboratorio no encontrado")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) CreateLaboratorio(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	l, err := h.laboratorios.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Laboratorio no encontrado")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) UpdateLaboratorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Laboratorio no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	l, err := h.laboratorios.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Laboratorio no encontrado")
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteLaboratorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Laboratorio no encontrado"})
	}
	if err := h.laboratorios.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Laboratorio no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Laboratorio eliminado"})
}

func (h *Handler) ListExamenes(c echo.Context) error {
	items, err := h.examenes.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetExamen(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Examen médico no encontrado"})
	}
	e, err := h.examenes.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Examen médico no encontrado")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) CreateExamen(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	e, err := h.examenes.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Examen médico no encontrado")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) UpdateExamen(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Examen médico no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	e, err := h.examenes.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Examen médico no encontrado")
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteExamen(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Examen médico no encontrado"})
	}
	if err := h.examenes.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Examen médico no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Examen médico eliminado"})
}

func (h *Handler) ListOrdenes(c echo.Context) error {
	items, err := h.ordenes.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetOrden(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Orden de examen no encontrada"})
	}
	o, err := h.ordenes.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Orden de examen no encontrada")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) CreateOrden(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	o, err := h.ordenes.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Orden de examen no encontrada")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrden(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Orden de examen no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	o, err := h.ordenes.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Orden de examen no encontrada")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) DeleteOrden(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Orden de examen no encontrada"})
	}
	if err := h.ordenes.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Orden de examen no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Orden de examen eliminada"})
}
