package credit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/itl-creditos/creditos-admin/internal/domain"
)

func setupAPIRouter(h *CreditHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api/v1")
	api.POST("/credits", h.Create)
	api.GET("/credits", h.List)
	api.GET("/credits/:id", h.Get)
	api.PUT("/credits/:id", h.Update)
	api.DELETE("/credits/:id", h.Delete)
	api.GET("/students/:id/credits", h.ListByStudent)

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

type listResponse struct {
	Data struct {
		Items []domain.Credit `json:"items"`
		Total int             `json:"total"`
	} `json:"data"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestCreditHandler_List(t *testing.T) {
	r := setupAPIRouter(NewCreditHandler(NewCreditService(newMockRepo()), 10))

	w := doJSON(r, http.MethodGet, "/api/v1/credits?q=banda", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if resp := decodeList(t, w); resp.Data.Total != 2 {
		t.Errorf("q=banda: total = %d; want 2", resp.Data.Total)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/credits?q=201900002", "")
	if resp := decodeList(t, w); resp.Data.Total != 1 || resp.Data.Items[0].ID != 3 {
		t.Errorf("q=nctrl: %+v; want credit 3", resp.Data)
	}
}

func TestCreditHandler_ListByStudent(t *testing.T) {
	r := setupAPIRouter(NewCreditHandler(NewCreditService(newMockRepo()), 10))

	w := doJSON(r, http.MethodGet, "/api/v1/students/1/credits", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if resp := decodeList(t, w); resp.Data.Total != 2 {
		t.Errorf("total = %d; want 2", resp.Data.Total)
	}

	if w := doJSON(r, http.MethodGet, "/api/v1/students/x/credits", ""); w.Code != http.StatusBadRequest {
		t.Errorf("invalid id: expected 400, got %d", w.Code)
	}
}

func TestCreditHandler_CRUD(t *testing.T) {
	repo := newMockRepo()
	r := setupAPIRouter(NewCreditHandler(NewCreditService(repo), 10))

	tests := []struct {
		method, target, body string
		wantCode             int
	}{
		{http.MethodPost, "/api/v1/credits", `{"alumno_id":2,"actividad_id":3,"creditos":1}`, http.StatusCreated},
		{http.MethodPost, "/api/v1/credits", `{"alumno_id":2,"creditos":1}`, http.StatusBadRequest},
		{http.MethodGet, "/api/v1/credits/4", "", http.StatusOK},
		{http.MethodGet, "/api/v1/credits/40", "", http.StatusNotFound},
		{http.MethodPut, "/api/v1/credits/4", `{"alumno_id":2,"actividad_id":3,"creditos":2}`, http.StatusOK},
		{http.MethodPut, "/api/v1/credits/40", `{"alumno_id":2,"actividad_id":3,"creditos":2}`, http.StatusNotFound},
		{http.MethodDelete, "/api/v1/credits/4", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/credits/4", "", http.StatusNotFound},
		{http.MethodDelete, "/api/v1/credits/abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := doJSON(r, tt.method, tt.target, tt.body); w.Code != tt.wantCode {
			t.Errorf("%s %s = %d; want %d (%s)", tt.method, tt.target, w.Code, tt.wantCode, w.Body.String())
		}
	}
}
