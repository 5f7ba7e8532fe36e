package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crmbase/lead-manager/internal/config"
	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/infra/auth"
	"github.com/crmbase/lead-manager/internal/infra/database"
	"github.com/crmbase/lead-manager/internal/infra/http/handlers"
	appmiddleware "github.com/crmbase/lead-manager/internal/infra/http/middleware"
	"github.com/crmbase/lead-manager/internal/infra/mail"
	"github.com/crmbase/lead-manager/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)

	// Adapters
	tokenManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	var mailSender usecase.EmailServiceInterface
	if cfg.MailConfigured() {
		mailSender = mail.NewEmailSender(
			cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From,
		)
	}

	// UseCases
	authUC := usecase.NewAuthUseCase(userRepo, tokenManager, mailSender, logger)
	leadUC := usecase.NewLeadWorkflow(leadRepo, userRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUC)
	leadHandler := handlers.NewLeadHandler(leadUC)
	healthHandler := handlers.NewHealthHandler(sqlDB, cfg.MailConfigured())

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/init-admin", authHandler.HandleInitAdmin)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticate(tokenManager))
			r.With(appmiddleware.RequireRole(entity.RoleAdmin)).
				Post("/register", authHandler.HandleRegister)
			r.Put("/update-password", authHandler.HandleUpdatePassword)
		})
	})

	r.Route("/api/leads", func(r chi.Router) {
		r.Use(appmiddleware.Authenticate(tokenManager))

		r.With(appmiddleware.RequireRole(entity.RoleManager)).
			Post("/", leadHandler.HandleCreate)
		r.Get("/", leadHandler.HandleList)
		r.Get("/{id}", leadHandler.HandleGetByID)
		r.Put("/{id}", leadHandler.HandleUpdate)
		r.With(appmiddleware.RequireRole(entity.RoleManager)).
			Put("/{id}/assign", leadHandler.HandleAssign)
		r.With(appmiddleware.RequireRole(entity.RoleManager)).
			Delete("/{id}", leadHandler.HandleDelete)
	})

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
