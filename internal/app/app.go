package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/itl-creditos/creditos-admin/internal/backend"
	"github.com/itl-creditos/creditos-admin/internal/config"
	"github.com/itl-creditos/creditos-admin/internal/domain"
	"github.com/itl-creditos/creditos-admin/internal/middleware"
	"github.com/itl-creditos/creditos-admin/internal/module/activity"
	"github.com/itl-creditos/creditos-admin/internal/module/catalog"
	"github.com/itl-creditos/creditos-admin/internal/module/credit"
	"github.com/itl-creditos/creditos-admin/internal/module/home"
	"github.com/itl-creditos/creditos-admin/internal/module/setting"
	"github.com/itl-creditos/creditos-admin/internal/module/student"
	"github.com/itl-creditos/creditos-admin/web"
)

const shutdownTimeout = 5 * time.Second

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler, writeTimeout time.Duration) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New wires logging, the snapshot database, the backend client, every
// panel module, middleware, templates and routes from cfg.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}

	success := false

	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 exposes template reload and permissive CORS")
	}

	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		closeDB(db, log.Logger)
	}()

	// The snapshot table belongs to this service alone, so it is migrated
	// in every mode.
	if err := db.AutoMigrate(&domain.ReportSnapshot{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	client := backend.New(cfg.Backend.BaseURL, cfg.BackendTimeout(),
		backend.WithToken(cfg.Backend.Token),
		backend.WithLogger(log.Logger),
	)
	modules := buildModules(client, db, log.Logger, cfg.Report.DefaultPageSize)

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	corsConfig, err := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS)
	if err != nil {
		return nil, err
	}
	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestID(false),
		middleware.AccessLog(log.Logger, "/static/", "/health"),
		middleware.CORS(corsConfig),
	)

	debug := cfg.Server.Mode == gin.DebugMode
	var fsys fs.FS = web.EmbeddedFS
	if debug {
		if fsys, err = resolveDebugWebFS(); err != nil {
			return nil, fmt.Errorf("resolve debug web fs: %w", err)
		}
	}

	renderer, err := NewTemplateRenderer(fsys, debug)
	if err != nil {
		return nil, fmt.Errorf("setup template renderer: %w", err)
	}
	engine.HTMLRender = renderer

	staticFS, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}

	csrfSecret, err := resolveCSRFSecret(cfg.Server.Mode, cfg.Server.CSRFSecret)
	if err != nil {
		return nil, err
	}
	if csrfSecret != cfg.Server.CSRFSecret {
		log.Warn("no csrf_secret configured, using a random secret that changes on restart")
	}

	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:     modules,
		DB:          db,
		Backend:     client,
		StaticFS:    staticFS,
		CacheAssets: !debug,
		CSRFSecret:  csrfSecret,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	log.Info("application configured",
		slog.String("mode", cfg.Server.Mode),
		slog.String("backend", client.BaseURL()),
		slog.Int("modules", len(modules)),
	)

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

// buildModules wires repository → service → handler for every panel.
func buildModules(client *backend.Client, db *gorm.DB, log *slog.Logger, pageSize int) []Module {
	students := backend.NewStudentRepository(client)
	settings := backend.NewSettingRepository(client)
	activities := backend.NewActivityRepository(client)
	credits := backend.NewCreditRepository(client)
	teachers := backend.NewTeacherRepository(client)
	periods := backend.NewPeriodRepository(client)
	users := backend.NewUserRepository(client)

	reportSvc := home.NewReportService(students, settings, home.NewSnapshotRepository(db), log)
	studentSvc := student.NewStudentService(students, settings)
	settingSvc := setting.NewSettingService(settings)
	activitySvc := activity.NewActivityService(activities)
	creditSvc := credit.NewCreditService(credits)

	return []Module{
		home.NewModule(
			home.NewReportHandler(reportSvc, pageSize),
			home.NewReportPageHandler(reportSvc, pageSize),
		),
		student.NewModule(
			student.NewStudentHandler(studentSvc, pageSize),
			student.NewStudentPageHandler(studentSvc, pageSize),
		),
		setting.NewModule(
			setting.NewSettingHandler(settingSvc, pageSize),
			setting.NewSettingPageHandler(settingSvc, pageSize),
		),
		activity.NewModule(
			activity.NewActivityHandler(activitySvc, pageSize),
			activity.NewActivityPageHandler(activitySvc, teachers, periods, pageSize),
		),
		credit.NewModule(
			credit.NewCreditHandler(creditSvc, pageSize),
			credit.NewCreditPageHandler(creditSvc, students, activities, pageSize),
		),
		catalog.NewModule(catalog.Teachers, teachers, pageSize),
		catalog.NewModule(catalog.Periods, periods, pageSize),
		catalog.NewModule(catalog.Users, users, pageSize),
	}
}

func closeDB(db *gorm.DB, log *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("database close error", slog.Any("error", err))
	}
}

func isPlaceholderCSRFSecret(secret string) bool {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return true
	}
	switch strings.ToLower(trimmed) {
	case "change-me-to-a-random-secret", "change-me-in-env":
		return true
	default:
		return false
	}
}

// resolveCSRFSecret returns configured, or a random secret outside release
// mode when configured is a placeholder.
func resolveCSRFSecret(mode, configured string) (string, error) {
	if !isPlaceholderCSRFSecret(configured) {
		return configured, nil
	}
	if mode == gin.ReleaseMode {
		return "", errors.New("csrf_secret must be a non-placeholder value in release mode")
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate csrf secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// resolveCORSConfig maps the server.cors section onto the middleware. An
// empty allowlist means any origin in debug and test modes and no origin in
// release mode.
func resolveCORSConfig(mode string, c config.CORSConfig) (middleware.CORSConfig, error) {
	out := middleware.CORSConfig{
		AllowOrigins:     c.AllowOrigins,
		AllowMethods:     c.AllowMethods,
		AllowHeaders:     c.AllowHeaders,
		AllowCredentials: c.AllowCredentials,
	}
	if c.MaxAge != "" {
		d, err := time.ParseDuration(c.MaxAge)
		if err != nil {
			return out, fmt.Errorf("invalid server.cors.max_age %q: %w", c.MaxAge, err)
		}
		out.MaxAge = d
	}
	if len(out.AllowOrigins) == 0 {
		if mode == gin.ReleaseMode {
			out.AllowOrigins = []string{}
		} else {
			out.AllowOrigins = []string{"*"}
		}
	}
	return out, nil
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// resolveDebugWebFS finds web/ on disk, first next to the source tree and
// then next to the executable.
func resolveDebugWebFS() (fs.FS, error) {
	if _, file, _, ok := runtime.Caller(0); ok {
		webDir := filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..", "web"))
		if stat, err := os.Stat(webDir); err == nil && stat.IsDir() {
			return os.DirFS(webDir), nil
		}
	}

	exePath, err := os.Executable()
	if err == nil {
		webDir := filepath.Join(filepath.Dir(exePath), "web")
		if stat, err := os.Stat(webDir); err == nil && stat.IsDir() {
			return os.DirFS(webDir), nil
		}
	}

	return nil, errors.New("debug web directory not found")
}

// writeTimeout returns server.timeout, or 60s when unset.
func (a *App) writeTimeout() time.Duration {
	if d, err := time.ParseDuration(a.cfg.Server.Timeout); err == nil && d > 0 {
		return d
	}
	return 60 * time.Second
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down gracefully and
// closes the database and the logger.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	log := slog.Default()
	if a.logger != nil {
		log = a.logger.Logger
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine, a.writeTimeout())

	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", slog.Any("error", err))
		}
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if a.db != nil {
		closeDB(a.db, log)
		log.Info("database connection closed")
	}

	log.Info("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}
	return runErr
}
