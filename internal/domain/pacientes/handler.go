package pacientes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	pacientes *PacienteService
	historias *HistoriaClinicaService
}

func NewHandler(pacientes *PacienteService, historias *HistoriaClinicaService) *Handler {
	return &Handler{pacientes: pacientes, historias: historias}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/pacientes", h.ListPacientes)
	admin.GET("/pacientes/:id", h.GetPaciente)
	admin.POST("/pacientes", h.CreatePaciente)
	admin.PUT("/pacientes/:id", h.UpdatePaciente)
	admin.DELETE("/pacientes/:id", h.DeletePaciente)

	admin.GET("/historias-clinicas", h.ListHistorias)
	admin.GET("/historias-clinicas/:id", h.GetHistoria)
	admin.POST("/historias-clinicas", h.CreateHistoria)
	admin.PUT("/historias-clinicas/:id", h.UpdateHistoria)
	admin.DELETE("/historias-clinicas/:id", h.DeleteHistoria)
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

func (h *Handler) ListPacientes(c echo.Context) error {
	items, err := h.pacientes.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetPaciente(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	pac, err := h.pacientes.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Paciente no encontrado")
	}
	return c.JSON(http.StatusOK, pac)
}

func (h *Handler) CreatePaciente(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	pac, err := h.pacientes.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Paciente no encontrado")
	}
	return c.JSON(http.StatusOK, pac)
}

func (h *Handler) UpdatePaciente(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	pac, err := h.pacientes.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Paciente no encontrado")
	}
	return c.JSON(http.StatusOK, pac)
}

func (h *Handler) DeletePaciente(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	if err := h.pacientes.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Paciente no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Paciente eliminado"})
}

func (h *Handler) ListHistorias(c echo.Context) error {
	items, err := h.historias.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetHistoria(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Historia clínica no encontrada"})
	}
	his, err := h.historias.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Historia clínica no encontrada")
	}
	return c.JSON(http.StatusOK, his)
}

func (h *Handler) CreateHistoria(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	his, err := h.historias.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Historia clínica no encontrada")
	}
	return c.JSON(http.StatusOK, his)
}

func (h *Handler) UpdateHistoria(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Historia clínica no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	his, err := h.historias.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Historia clínica no encontrada")
	}
	return c.JSON(http.StatusOK, his)
}

func (h *Handler) DeleteHistoria(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Historia clínica no encontrada"})
	}
	if err := h.historias.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Historia clínica no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Historia clínica eliminada"})
}
