package setting

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

func setupAPIRouter(h *SettingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api/v1/settings")
	api.POST("", h.Create)
	api.GET("", h.List)
	api.GET("/:name", h.Get)
	api.PUT("/:name", h.Update)
	api.DELETE("/:name", h.Delete)

	return r
}

func doJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSettingHandler_Create(t *testing.T) {
	repo := newMockRepo()
	r := setupAPIRouter(NewSettingHandler(NewSettingService(repo), 10))

	w := doJSON(r, http.MethodPost, "/api/v1/settings", `{"config_nombre":"creditos_a_completar","config_valor":"6"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if repo.values["creditos_a_completar"] != "6" {
		t.Errorf("setting not stored: %v", repo.values)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/settings", `{"config_nombre":"creditos_a_completar","config_valor":"7"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate: expected status 409, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/settings", `{"config_nombre":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing value: expected status 400, got %d", w.Code)
	}
	var resp pkg.ValidationErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if _, ok := resp.Errors["config_valor"]; !ok {
		t.Errorf("expected config_valor error, got %v", resp.Errors)
	}
}

func TestSettingHandler_List(t *testing.T) {
	r := setupAPIRouter(NewSettingHandler(NewSettingService(newMockRepo(
		"creditos_a_completar", "6",
		"numero_control_length", "9",
		"periodo_actual", "2024-1",
	)), 10))

	w := doJSON(r, http.MethodGet, "/api/v1/settings?q=2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp struct {
		Data struct {
			Items []domain.Setting `json:"items"`
			Total int              `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Items[0].Name != "periodo_actual" {
		t.Errorf("list = %+v; want periodo_actual matched by value", resp.Data)
	}
}

func TestSettingHandler_GetUpdateDelete(t *testing.T) {
	repo := newMockRepo("creditos_a_completar", "6")
	r := setupAPIRouter(NewSettingHandler(NewSettingService(repo), 10))

	if w := doJSON(r, http.MethodGet, "/api/v1/settings/creditos_a_completar", ""); w.Code != http.StatusOK {
		t.Errorf("GET: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/v1/settings/missing", ""); w.Code != http.StatusNotFound {
		t.Errorf("GET missing: expected 404, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodPut, "/api/v1/settings/creditos_a_completar", `{"config_valor":"10"}`); w.Code != http.StatusOK {
		t.Errorf("PUT: expected 200, got %d", w.Code)
	}
	if repo.values["creditos_a_completar"] != "10" {
		t.Errorf("value = %q; want 10", repo.values["creditos_a_completar"])
	}
	if w := doJSON(r, http.MethodPut, "/api/v1/settings/creditos_a_completar", `{"config_valor":""}`); w.Code != http.StatusBadRequest {
		t.Errorf("PUT empty: expected 400, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, "/api/v1/settings/creditos_a_completar", ""); w.Code != http.StatusOK {
		t.Errorf("DELETE: expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/api/v1/settings/creditos_a_completar", ""); w.Code != http.StatusNotFound {
		t.Errorf("DELETE twice: expected 404, got %d", w.Code)
	}
}

func TestSettingHandler_List_BackendDown(t *testing.T) {
	repo := newMockRepo()
	repo.listErr = domain.ErrUnavailable
	r := setupAPIRouter(NewSettingHandler(NewSettingService(repo), 10))

	if w := doJSON(r, http.MethodGet, "/api/v1/settings", ""); w.Code != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", w.Code)
	}
}
