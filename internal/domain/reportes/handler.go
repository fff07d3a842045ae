package reportes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler serves the read-only compositions. There is no service layer
// here: the queries have no validation or write path, so the handler
// talks to the repository directly.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(user *echo.Group) {
	user.GET("/reportes/citas/:pacienteId", h.CitasPorPaciente)
	user.GET("/reportes/historial/:pacienteId", h.HistorialPaciente)
	user.GET("/reportes/recetas/:consultaId", h.RecetasPorConsulta)
	user.GET("/reportes/pagos/:pacienteId", h.PagosPorPaciente)
	user.GET("/reportes/aseguradora/:aseguradoraId/pacientes", h.PacientesPorAseguradora)
}

func pathParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func (h *Handler) CitasPorPaciente(c echo.Context) error {
	id, err := pathParam(c, "pacienteId")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	items, err := h.repo.CitasPorPaciente(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) HistorialPaciente(c echo.Context) error {
	id, err := pathParam(c, "pacienteId")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	hist, err := h.repo.HistorialPaciente(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hist)
}

func (h *Handler) RecetasPorConsulta(c echo.Context) error {
	id, err := pathParam(c, "consultaId")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consulta médica no encontrada"})
	}
	items, err := h.repo.RecetasPorConsulta(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PagosPorPaciente(c echo.Context) error {
	id, err := pathParam(c, "pacienteId")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Paciente no encontrado"})
	}
	items, err := h.repo.PagosPorPaciente(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PacientesPorAseguradora(c echo.Context) error {
	id, err := pathParam(c, "aseguradoraId")
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Aseguradora no encontrada"})
	}
	a, err := h.repo.PacientesPorAseguradora(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Aseguradora no encontrada"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
