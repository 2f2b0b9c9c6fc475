package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/pkg"
)

// healthTimeout bounds each health check call.
const healthTimeout = 2 * time.Second

// Pinger is a dependency the health check pings.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules     []Module
	DB          *gorm.DB
	Backend     Pinger
	StaticFS    fs.FS // contents of web/static
	CacheAssets bool
	CSRFSecret  string
}

// RegisterRoutes registers static assets, /health, every module and the
// 404 fallback on r. Page routes are CSRF protected; /api/v1 is not.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}
	if strings.TrimSpace(deps.CSRFSecret) == "" {
		return errors.New("csrf secret is required")
	}
	if deps.StaticFS == nil {
		return errors.New("static filesystem is required")
	}

	r.GET("/static/*filepath", staticHandler(deps.StaticFS, deps.CacheAssets))
	r.HEAD("/static/*filepath", staticHandler(deps.StaticFS, deps.CacheAssets))
	r.GET("/health", healthHandler(deps.DB, deps.Backend))

	api := r.Group("/api/v1")
	pages := r.Group("/")
	pages.Use(middleware.CSRF(deps.CSRFSecret))

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api, pages)
	}

	r.NoRoute(noRouteHandler())
	return nil
}

// healthHandler reports the snapshot database and the backend. Either one
// failing turns the reply into a 503 "degraded".
func healthHandler(db *gorm.DB, backend Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		components := gin.H{
			"database": runCheck(c.Request.Context(), pingDB(db)),
			"backend":  runCheck(c.Request.Context(), pingBackend(backend)),
		}

		status, code := "ok", http.StatusOK
		for _, v := range components {
			if v != "ok" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{"status": status, "components": components})
	}
}

func pingDB(db *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		if db == nil {
			return errors.New("database not configured")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func pingBackend(p Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if p == nil {
			return errors.New("backend not configured")
		}
		return p.Ping(ctx)
	}
}

// runCheck runs check under healthTimeout and returns "ok" or "error".
func runCheck(parent context.Context, check func(context.Context) error) string {
	ctx, cancel := context.WithTimeout(parent, healthTimeout)
	defer cancel()
	if err := check(ctx); err != nil {
		return "error"
	}
	return "ok"
}

// noRouteHandler answers unknown /api/ paths with JSON and everything else
// through renderError.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, pkg.Response{Code: http.StatusNotFound, Message: "not found"})
			return
		}
		renderError(c, http.StatusNotFound, "not found")
	}
}

// staticHandler serves fsys under /static. With cache set, replies carry a
// one day Cache-Control.
func staticHandler(fsys fs.FS, cache bool) gin.HandlerFunc {
	files := http.StripPrefix("/static", http.FileServer(http.FS(fsys)))
	return func(c *gin.Context) {
		if cache {
			c.Header("Cache-Control", "public, max-age=86400")
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
