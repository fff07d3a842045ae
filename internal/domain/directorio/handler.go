package directorio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	medicos      *MedicoService
	consultorios *ConsultorioService
	horarios     *HorarioService
}

func NewHandler(medicos *MedicoService, consultorios *ConsultorioService, horarios *HorarioService) *Handler {
	return &Handler{medicos: medicos, consultorios: consultorios, horarios: horarios}
}

// The singular "medico" path is the historical wire name and is kept as-is.
func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/medico", h.ListMedicos)
	admin.GET("/medico/:id", h.GetMedico)
	admin.POST("/medico", h.CreateMedico)
	admin.PUT("/medico/:id", h.UpdateMedico)
	admin.DELETE("/medico/:id", h.DeleteMedico)

	admin.GET("/consultorios", h.ListConsultorios)
	admin.GET("/consultorios/:id", h.GetConsultorio)
	admin.POST("/consultorios", h.CreateConsultorio)
	admin.PUT("/consultorios/:id", h.UpdateConsultorio)
	admin.DELETE("/consultorios/:id", h.DeleteConsultorio)

	admin.GET("/horarios", h.ListHorarios)
	admin.GET("/horarios/:id", h.GetHorario)
	admin.POST("/horarios", h.CreateHorario)
	admin.PUT("/horarios/:id", h.UpdateHorario)
	admin.DELETE("/horarios/:id", h.DeleteHorario)
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

func (h *Handler) ListMedicos(c echo.Context) error {
	items, err := h.medicos.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMedico(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Médico no encontrado"})
	}
	m, err := h.medicos.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Médico no encontrado")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateMedico(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	m, err := h.medicos.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Médico no encontrado")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMedico(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Médico no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	m, err := h.medicos.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Médico no encontrado")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedico(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Médico no encontrado"})
	}
	if err := h.medicos.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Médico no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Médico eliminado"})
}

func (h *Handler) ListConsultorios(c echo.Context) error {
	items, err := h.consultorios.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetConsultorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consultorio no encontrado"})
	}
	con, err := h.consultorios.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Consultorio no encontrado")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) CreateConsultorio(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	con, err := h.consultorios.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Consultorio no encontrado")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) UpdateConsultorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consultorio no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	con, err := h.consultorios.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Consultorio no encontrado")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) DeleteConsultorio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Consultorio no encontrado"})
	}
	if err := h.consultorios.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Consultorio no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Consultorio eliminado"})
}

func (h *Handler) ListHorarios(c echo.Context) error {
	items, err := h.horarios.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetHorario(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Horario no encontrado"})
	}
	hor, err := h.horarios.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Horario no encontrado")
	}
	return c.JSON(http.StatusOK, hor)
}

func (h *Handler) CreateHorario(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	hor, err := h.horarios.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Horario no encontrado")
	}
	return c.JSON(http.StatusOK, hor)
}

func (h *Handler) UpdateHorario(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Horario no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	hor, err := h.horarios.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Horario no encontrado")
	}
	return c.JSON(http.StatusOK, hor)
}

func (h *Handler) DeleteHorario(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Horario no encontrado"})
	}
	if err := h.horarios.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Horario no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Horario eliminado"})
}
