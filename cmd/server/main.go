package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	docapp "github.com/docforge/backend/internal/application/document"
	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/infrastructure/config"
	"github.com/docforge/backend/internal/infrastructure/logger"
	"github.com/docforge/backend/internal/infrastructure/persistence"
	"github.com/docforge/backend/internal/infrastructure/persistence/models"
	"github.com/docforge/backend/internal/infrastructure/render"
	"github.com/docforge/backend/internal/interfaces/http/handler"
	"github.com/docforge/backend/internal/interfaces/http/middleware"
	"github.com/docforge/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting DocForge Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("db_driver", cfg.Database.Driver))

	// Connect to the template store and migrate the schema
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.Migrate(&models.TemplateModel{}); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Wire the rendering pipeline and template service
	htmlRenderer, err := render.NewHTMLRenderer()
	if err != nil {
		log.Fatal("Failed to initialize HTML renderer", zap.Error(err))
	}

	repo := persistence.NewGormTemplateRepository(db.DB)
	service := docapp.NewTemplateService(
		repo,
		render.NewAssembler(log),
		htmlRenderer,
		brandingFromConfig(cfg.Branding),
		log,
	)

	// Seed the built-in template set for document types without templates
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := service.EnsureBuiltins(seedCtx); err != nil {
		cancelSeed()
		log.Fatal("Failed to seed built-in templates", zap.Error(err))
	}
	cancelSeed()

	// Set up the HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsConfig),
		middleware.Secure(),
	)

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine).
		Register(handler.DocumentRoutes(handler.NewDocumentHandler(service))).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness and template store reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// brandingFromConfig maps the configured company identity to the domain value
func brandingFromConfig(b config.BrandingConfig) document.Branding {
	return document.Branding{
		Name:           document.NewLocalizedText(b.NameEn, b.NameAr),
		Tagline:        b.Tagline,
		Address:        document.NewLocalizedText(b.AddressEn, b.AddressAr),
		Phone:          b.Phone,
		Email:          b.Email,
		Website:        b.Website,
		TaxNumber:      b.TaxNumber,
		CRNumber:       b.CRNumber,
		LogoURL:        b.LogoURL,
		PrimaryColor:   b.PrimaryColor,
		SecondaryColor: b.SecondaryColor,
		AccentColor:    b.AccentColor,
	}
}
