package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func requestIDRouter(trust bool) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(trust))
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	r.GET("/ctx", func(c *gin.Context) {
		for _, a := range logger.FromContext(c.Request.Context()) {
			if a.Key == "request_id" {
				c.String(http.StatusOK, a.Value.String())
				return
			}
		}
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_Generated(t *testing.T) {
	w := doGet(requestIDRouter(false), "/id", map[string]string{RequestIDHeader: "upstream-1"})

	id := w.Body.String()
	if len(id) != 32 {
		t.Fatalf("request id = %q, want 32 hex chars", id)
	}
	if id == "upstream-1" {
		t.Error("upstream id reused without trust")
	}
	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Errorf("response header = %q, want %q", got, id)
	}
}

func TestRequestID_Upstream(t *testing.T) {
	tests := []struct {
		name     string
		upstream string
		reused   bool
	}{
		{"valid", "req-abc-123", true},
		{"boundary 64", strings.Repeat("a", 64), true},
		{"too long", strings.Repeat("a", 65), false},
		{"bad charset", "req id;drop", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(requestIDRouter(true), "/id", map[string]string{RequestIDHeader: tt.upstream})
			if got := w.Body.String() == tt.upstream; got != tt.reused {
				t.Errorf("reused = %v, want %v (id %q)", got, tt.reused, w.Body.String())
			}
		})
	}
}

func TestRequestID_InContext(t *testing.T) {
	w := doGet(requestIDRouter(true), "/ctx", map[string]string{RequestIDHeader: "ctx-456"})
	if w.Body.String() != "ctx-456" {
		t.Errorf("context request_id = %q, want %q", w.Body.String(), "ctx-456")
	}
}

func TestRequestID_Unique(t *testing.T) {
	r := requestIDRouter(false)
	seen := make(map[string]bool)
	for range 50 {
		id := doGet(r, "/id", nil).Body.String()
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetRequestID(c); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}
