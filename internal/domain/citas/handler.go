package citas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	citas     *CitaService
	consultas *ConsultaMedicaService
}

func NewHandler(citas *CitaService, consultas *ConsultaMedicaService) *Handler {
	return &Handler{citas: citas, consultas: consultas}
}

// Cita reads sit on the user group so patients can see appointments; writes
// and consultas stay admin-only.
func (h *Handler) RegisterRoutes(user, admin *echo.Group) {
	user.GET("/citas", h.ListCitas)
	user.GET("/citas/:id", h.GetCita)
	admin.POST("/citas", h.CreateCita)
	admin.PUT("/citas/:id", h.UpdateCita)
	admin.DELETE("/citas/:id", h.DeleteCita)

	admin.GET("/consultas-medicas", h.ListConsultas)
	admin.GET("/consultas-medicas/:id", h.GetConsulta)
	admin.POST("/consultas-medicas", h.CreateConsulta)
	admin.PUT("/consultas-medicas/:id", h.UpdateConsulta)
	admin.DELETE("/consultas-medicas/:id", h.DeleteConsulta)
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

func (h *Handler) ListCitas(c echo.Context) error {
	items, err := h.citas.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCita(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Cita no encontrada"})
	}
	cita, err := h.citas.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) CreateCita(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	cita, err := h.citas.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) UpdateCita(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Cita no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	cita, err := h.citas.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, cita)
}

func (h *Handler) DeleteCita(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Cita no encontrada"})
	}
	if err := h.citas.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Cita no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Cita eliminada"})
}

func (h *Handler) ListConsultas(c echo.Context) error {
	items, err := h.consultas.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetConsulta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consulta médica no encontrada"})
	}
	con, err := h.consultas.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Consulta médica no encontrada")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) CreateConsulta(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	con, err := h.consultas.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Consulta médica no encontrada")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) UpdateConsulta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consulta médica no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	con, err := h.consultas.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Consulta médica no encontrada")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) DeleteConsulta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consulta médica no encontrada"})
	}
	if err := h.consultas.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Consulta médica no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Consulta médica eliminada"})
}
