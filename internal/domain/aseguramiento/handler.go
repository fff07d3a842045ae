package aseguramiento

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	aseguradoras *AseguradoraService
	afiliaciones *AfiliacionService
}

func NewHandler(aseguradoras *AseguradoraService, afiliaciones *AfiliacionService) *Handler {
	return &Handler{aseguradoras: aseguradoras, afiliaciones: afiliaciones}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/aseguradoras", h.ListAseguradoras)
	admin.GET("/aseguradoras/:id", h.GetAseguradora)
	admin.POST("/aseguradoras", h.CreateAseguradora)
	admin.PUT("/aseguradoras/:id", h.UpdateAseguradora)
	admin.DELETE("/aseguradoras/:id", h.DeleteAseguradora)

	admin.GET("/afiliaciones", h.ListAfiliaciones)
	admin.GET("/afiliaciones/:id", h.GetAfiliacion)
	admin.POST("/afiliaciones", h.CreateAfiliacion)
	admin.PUT("/afiliaciones/:id", h.UpdateAfiliacion)
	admin.DELETE("/afiliaciones/:id", h.DeleteAfiliacion)
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

func (h *Handler) ListAseguradoras(c echo.Context) error {
	items, err := h.aseguradoras.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetAseguradora(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Aseguradora no encontrada"})
	}
	a, err := h.aseguradoras.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Aseguradora no encontrada")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAseguradora(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	a, err := h.aseguradoras.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Aseguradora no encontrada")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAseguradora(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Aseguradora no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	a, err := h.aseguradoras.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Aseguradora no encontrada")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAseguradora(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Aseguradora no encontrada"})
	}
	if err := h.aseguradoras.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Aseguradora no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Aseguradora eliminada"})
}

func (h *Handler) ListAfiliaciones(c echo.Context) error {
	items, err := h.afiliaciones.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetAfiliacion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Afiliación no encontrada"})
	}
	af, err := h.afiliaciones.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Afiliación no encontrada")
	}
	return c.JSON(http.StatusOK, af)
}

func (h *Handler) CreateAfiliacion(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	af, err := h.afiliaciones.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Afiliación no encontrada")
	}
	return c.JSON(http.StatusOK, af)
}

func (h *Handler) UpdateAfiliacion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Afiliación no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	af, err := h.afiliaciones.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Afiliación no encontrada")
	}
	return c.JSON(http.StatusOK, af)
}

func (h *Handler) DeleteAfiliacion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Afiliación no encontrada"})
	}
	if err := h.afiliaciones.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Afiliación no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Afiliación eliminada"})
}
