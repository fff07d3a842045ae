package usuarios

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/auth"
	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, user, superadmin *echo.Group) {
	public.POST("/registrar", h.Registrar)
	public.POST("/login", h.Login)
	user.POST("/logout", h.Logout)
	superadmin.POST("/admin/register", h.AdminRegister)
}

func bindPayload(c echo.Context) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la solicitud inválido")
	}
	return payload, nil
}

func (h *Handler) Registrar(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Register(c.Request().Context(), payload, auth.RoleUser)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusBadRequest, verrs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Usuario creado satisfactoriamente",
		"user":    u,
		"role":    u.Role,
	})
}

func (h *Handler) AdminRegister(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Register(c.Request().Context(), payload, auth.RoleAdmin)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return c.JSON(http.StatusBadRequest, verrs)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Admin creado satisfactoriamente",
		"user":    u,
		"role":    u.Role,
	})
}

func (h *Handler) Login(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	email, _ := validation.Str(payload, "email")
	password, _ := validation.Str(payload, "password")

	u, token, err := h.svc.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, ErrCredenciales) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Credenciales incorrectas"})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login exitoso",
		"user":    u.Public(),
		"token":   token,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	jti := auth.TokenIDFromContext(c.Request().Context())
	if jti == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "No autenticado."})
	}
	if err := h.svc.Logout(c.Request().Context(), jti); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sesión cerrada"})
}
