package catalogo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	ciudades       *CiudadService
	especialidades *EspecialidadService
}

func NewHandler(ciudades *CiudadService, especialidades *EspecialidadService) *Handler {
	return &Handler{ciudades: ciudades, especialidades: especialidades}
}

// RegisterRoutes mounts catalog reads on the public group and writes on the
// admin group.
func (h *Handler) RegisterRoutes(public, admin *echo.Group) {
	public.GET("/ciudades", h.ListCiudades)
	public.GET("/ciudades/:id", h.GetCiudad)
	admin.POST("/ciudades", h.CreateCiudad)
	admin.PUT("/ciudades/:id", h.UpdateCiudad)
	admin.DELETE("/ciudades/:id", h.DeleteCiudad)

	public.GET("/especialidades", h.ListEspecialidades)
	public.GET("/especialidades/:id", h.GetEspecialidad)
	admin.POST("/especialidades", h.CreateEspecialidad)
	admin.PUT("/especialidades/:id", h.UpdateEspecialidad)
	admin.DELETE("/especialidades/:id", h.DeleteEspecialidad)
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

func (h *Handler) ListCiudades(c echo.Context) error {
	items, err := h.ciudades.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCiudad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Ciudad no encontrada"})
	}
	ciudad, err := h.ciudades.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Ciudad no encontrada")
	}
	return c.JSON(http.StatusOK, ciudad)
}

func (h *Handler) CreateCiudad(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	ciudad, err := h.ciudades.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Ciudad no encontrada")
	}
	return c.JSON(http.StatusOK, ciudad)
}

func (h *Handler) UpdateCiudad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Ciudad no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	ciudad, err := h.ciudades.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Ciudad no encontrada")
	}
	return c.JSON(http.StatusOK, ciudad)
}

func (h *Handler) DeleteCiudad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Ciudad no encontrada"})
	}
	if err := h.ciudades.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Ciudad no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Ciudad eliminada"})
}

func (h *Handler) ListEspecialidades(c echo.Context) error {
	items, err := h.especialidades.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetEspecialidad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Especialidad no encontrada"})
	}
	esp, err := h.especialidades.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, esp)
}

func (h *Handler) CreateEspecialidad(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	esp, err := h.especialidades.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, esp)
}

func (h *Handler) UpdateEspecialidad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Especialidad no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	esp, err := h.especialidades.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, esp)
}

func (h *Handler) DeleteEspecialidad(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Especialidad no encontrada"})
	}
	if err := h.especialidades.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrEspecialidadEnUso) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No se puede eliminar, hay citas asociadas."})
		}
		return fail(c, err, "Especialidad no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Especialidad eliminada"})
}
