package setting

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSettingModuleRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	pages := r.Group("/")

	NewModule(&SettingHandler{}, &SettingPageHandler{}).RegisterRoutes(api, pages)

	expected := []struct {
		method string
		path   string
	}{
		// API routes
		{http.MethodPost, "/api/v1/settings"},
		{http.MethodGet, "/api/v1/settings/:name"},
		{http.MethodGet, "/api/v1/settings"},
		{http.MethodPut, "/api/v1/settings/:name"},
		{http.MethodDelete, "/api/v1/settings/:name"},
		// Page routes
		{http.MethodGet, "/settings"},
		{http.MethodGet, "/settings/new"},
		{http.MethodGet, "/settings/:name/edit"},
		{http.MethodPost, "/settings"},
		{http.MethodPut, "/settings/:name"},
		{http.MethodDelete, "/settings/:name"},
	}

	registered := make(map[string]bool)
	for _, ri := range r.Routes() {
		registered[ri.Method+":"+ri.Path] = true
	}
	for _, exp := range expected {
		if !registered[exp.method+":"+exp.path] {
			t.Errorf("expected route %s %s to be registered", exp.method, exp.path)
		}
	}
}

func TestNewModule_PanicsOnNilHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil handler, got none")
		}
	}()

	_ = NewModule(nil, &SettingPageHandler{})
}

func TestNewModule_PanicsOnNilPageHandler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewModule() expected panic for nil page handler, got none")
		}
	}()

	_ = NewModule(&SettingHandler{}, nil)
}
