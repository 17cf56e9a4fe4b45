// internal/server/server.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/audit"
	"github.com/fieldstonehq/fieldstone/internal/auth"
	"github.com/fieldstonehq/fieldstone/internal/clock"
	"github.com/fieldstonehq/fieldstone/internal/config"
	"github.com/fieldstonehq/fieldstone/internal/handler"
	"github.com/fieldstonehq/fieldstone/internal/metrics"
	"github.com/fieldstonehq/fieldstone/internal/middleware"
	"github.com/fieldstonehq/fieldstone/internal/model"
	"github.com/fieldstonehq/fieldstone/internal/repository"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/fieldstonehq/fieldstone/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SetupDatabase opens the postgres connection, configures the pool, and
// verifies connectivity before returning.
func SetupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every persisted entity,
// including the two join tables gorm derives from the many2many tags.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Owner{},
		&model.Office{},
		&model.Employee{},
		&model.Report{},
	)
}

// NewRouter assembles the full HTTP surface with its middleware stack.
func NewRouter(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	userRepo := repository.NewUserRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)
	officeRepo := repository.NewOfficeRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	reportRepo := repository.NewReportRepository(db)

	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	scopeSvc := scope.NewService(ownerRepo, officeRepo, employeeRepo, reportRepo)
	auditLog := audit.NewLogger(logger)
	clk := clock.SystemClock{}

	userService := service.NewUserService(userRepo, passwordHasher, tokenManager)
	ownerService := service.NewOwnerService(ownerRepo, officeRepo, reportRepo, scopeSvc, auditLog)
	officeService := service.NewOfficeService(officeRepo, ownerRepo, employeeRepo, reportRepo, scopeSvc, auditLog)
	employeeService := service.NewEmployeeService(employeeRepo, scopeSvc, auditLog)
	reportService := service.NewReportService(reportRepo, ownerRepo, officeRepo, employeeRepo, scopeSvc, clk, auditLog)
	activityService := service.NewActivityService(scopeSvc, reportRepo, clk)

	authHandler := handler.NewAuthHandler(userService)
	ownerHandler := handler.NewOwnerHandler(ownerService, officeService, reportService)
	officeHandler := handler.NewOfficeHandler(officeService, employeeService, reportService)
	employeeHandler := handler.NewEmployeeHandler(employeeService, reportService)
	reportHandler := handler.NewReportHandler(reportService)
	activityHandler := handler.NewActivityHandler(activityService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(metrics.Middleware)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Route("/owners", func(r chi.Router) {
				r.Get("/", ownerHandler.List)
				r.Post("/", ownerHandler.Create)
				r.Get("/{id}", ownerHandler.Dashboard)
				r.Put("/{id}", ownerHandler.Update)
				r.Delete("/{id}", ownerHandler.Delete)
				r.Post("/{id}/offices", ownerHandler.CreateOffice)
				r.Post("/{id}/reports", ownerHandler.LogReport)
			})

			r.Route("/offices", func(r chi.Router) {
				r.Get("/", officeHandler.List)
				r.Get("/{id}", officeHandler.Dashboard)
				r.Put("/{id}", officeHandler.Update)
				r.Delete("/{id}", officeHandler.Delete)
				r.Post("/{id}/owners", officeHandler.AddOwner)
				r.Put("/{id}/owners", officeHandler.SetOwners)
				r.Delete("/{id}/owners/{ownerID}", officeHandler.RemoveOwner)
				r.Post("/{id}/employees", officeHandler.CreateEmployee)
				r.Post("/{id}/reports", officeHandler.LogReport)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
				r.Post("/{id}/reports", employeeHandler.LogReport)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", reportHandler.List)
				r.Get("/{id}", reportHandler.Get)
			})

			r.Get("/dashboard", activityHandler.Summary)
			r.Get("/activity", activityHandler.Matrix)
		})
	})

	return r
}

// Run starts the HTTP server and blocks until a shutdown signal or a fatal
// server error.
func Run(cfg *config.Config, logger *slog.Logger) error {
	db, err := SetupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	r := NewRouter(db, cfg, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
