package catalogo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

func newTestHandler() (*Handler, *mockEspecialidadRepo) {
	val := validation.NewEngine(noopChecker{})
	espRepo := newMockEspecialidadRepo()
	h := NewHandler(
		NewCiudadService(newMockCiudadRepo(), val),
		NewEspecialidadService(espRepo, val),
	)
	return h, espRepo
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHandler_CreateCiudad(t *testing.T) {
	h, _ := newTestHandler()

	rec := doJSON(t, h.CreateCiudad, http.MethodPost, "/ciudades", `{"nombre":"Bogotá"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var out Ciudad
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out.ID == 0 || out.Nombre != "Bogotá" {
		t.Errorf("unexpected body: %+v", out)
	}
}

func TestHandler_CreateCiudad_ValidationError(t *testing.T) {
	h, _ := newTestHandler()

	rec := doJSON(t, h.CreateCiudad, http.MethodPost, "/ciudades", `{}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(out["nombre"]) == 0 {
		t.Errorf("expected nombre violation, got %v", out)
	}
}

func TestHandler_GetCiudad_NotFound(t *testing.T) {
	h, _ := newTestHandler()

	rec := doJSON(t, h.GetCiudad, http.MethodGet, "/ciudades/99", "", map[string]string{"id": "99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if out["message"] != "Ciudad no encontrada" {
		t.Errorf("message: got %q", out["message"])
	}
}

func TestHandler_DeleteEspecialidad_Blocked(t *testing.T) {
	h, espRepo := newTestHandler()

	rec := doJSON(t, h.CreateEspecialidad, http.MethodPost, "/especialidades", `{"nombre":"Medicina General"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status: got %d", rec.Code)
	}
	var esp Especialidad
	_ = json.Unmarshal(rec.Body.Bytes(), &esp)
	espRepo.conCitas[esp.ID] = true

	rec = doJSON(t, h.DeleteEspecialidad, http.MethodDelete, "/especialidades/1", "", map[string]string{"id": "1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if out["error"] != "No se puede eliminar, hay citas asociadas." {
		t.Errorf("error body: got %q", out["error"])
	}
}

func TestHandler_DeleteCiudad_Message(t *testing.T) {
	h, _ := newTestHandler()

	doJSON(t, h.CreateCiudad, http.MethodPost, "/ciudades", `{"nombre":"Cali"}`, nil)
	rec := doJSON(t, h.DeleteCiudad, http.MethodDelete, "/ciudades/1", "", map[string]string{"id": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	if out["message"] != "Ciudad eliminada" {
		t.Errorf("message: got %q", out["message"])
	}
}
