package farmacia

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	medicamentos *MedicamentoService
	recetas      *RecetaMedicaService
}

func NewHandler(medicamentos *MedicamentoService, recetas *RecetaMedicaService) *Handler {
	return &Handler{medicamentos: medicamentos, recetas: recetas}
}

func (h *Handler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/medicamentos", h.ListMedicamentos)
	admin.GET("/medicamentos/:id", h.GetMedicamento)
	admin.POST("/medicamentos", h.CreateMedicamento)
	admin.PUT("/medicamentos/:id", h.UpdateMedicamento)
	admin.DELETE("/medicamentos/:id", h.DeleteMedicamento)

	admin.GET("/recetas-medicas", h.ListRecetas)
	admin.GET("/recetas-medicas/:id", h.GetReceta)
	admin.POST("/recetas-medicas", h.CreateReceta)
	admin.PUT("/recetas-medicas/:id", h.UpdateReceta)
	admin.DELETE("/recetas-medicas/:id", h.DeleteReceta)
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

func (h *Handler) ListMedicamentos(c echo.Context) error {
	items, err := h.medicamentos.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetMedicamento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Medicamento no encontrado"})
	}
	med, err := h.medicamentos.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Medicamento no encontrado")
	}
	return c.JSON(http.StatusOK, med)
}

func (h *Handler) CreateMedicamento(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	med, err := h.medicamentos.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Medicamento no encontrado")
	}
	return c.JSON(http.StatusOK, med)
}

func (h *Handler) UpdateMedicamento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Medicamento no encontrado"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	med, err := h.medicamentos.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Medicamento no encontrado")
	}
	return c.JSON(http.StatusOK, med)
}

func (h *Handler) DeleteMedicamento(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Medicamento no encontrado"})
	}
	if err := h.medicamentos.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Medicamento no encontrado")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Medicamento eliminado"})
}

func (h *Handler) ListRecetas(c echo.Context) error {
	items, err := h.recetas.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetReceta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Receta médica no encontrada"})
	}
	rec, err := h.recetas.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err, "Receta médica no encontrada")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) CreateReceta(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	rec, err := h.recetas.Create(c.Request().Context(), payload)
	if err != nil {
		return fail(c, err, "Receta médica no encontrada")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) UpdateReceta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Receta médica no encontrada"})
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	rec, err := h.recetas.Update(c.Request().Context(), id, payload)
	if err != nil {
		return fail(c, err, "Receta médica no encontrada")
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteReceta(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Receta médica no encontrada"})
	}
	if err := h.recetas.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err, "Receta médica no encontrada")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Receta médica eliminada"})
}
