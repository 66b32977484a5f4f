package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/config"
	"github.com/auxilium-app/auxilium/internal/handlers"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
	"github.com/auxilium-app/auxilium/internal/services"
	"github.com/auxilium-app/auxilium/pkg/sheets"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
}

// New creates and initializes a new application instance
func New(log logger.Logger, dbPath string, cfg *config.Config, sheetsClient sheets.Client) (*App, error) {
	repo, err := repository.New(dbPath)
	if err != nil {
		return nil, err
	}

	authManager := auth.New(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.JWTExpiry, cfg.JWTRefreshExpiry, cfg.SecureCookies)

	userService := services.NewUserService(log, repo, cfg.BcryptCost)
	eventService := services.NewEventService(log, repo)
	pointsService := services.NewPointsService(log, repo, sheetsClient, services.DefaultColumns())

	h := handlers.New(userService, eventService, pointsService, authManager, log)

	a := &App{
		log:      log,
		handlers: h,
		repo:     repo,
	}

	if err := a.bootstrapSuperadmin(context.Background(), userService, cfg); err != nil {
		repo.Close()
		return nil, err
	}

	return a, nil
}

// bootstrapSuperadmin seeds the first superadmin account from configured
// credentials. Runs only when no superadmin exists yet; without one,
// nobody can log in to create further accounts.
func (a *App) bootstrapSuperadmin(ctx context.Context, users *services.UserService, cfg *config.Config) error {
	count, err := users.CountWithRole(ctx, models.RoleSuperadmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.BootstrapEmail == "" || cfg.BootstrapPassword == "" {
		a.log.Warn("no superadmin exists and bootstrap credentials are not set")
		return nil
	}

	user, err := users.Create(ctx, services.CreateUserInput{
		Email:       cfg.BootstrapEmail,
		Password:    cfg.BootstrapPassword,
		FirstName:   "Superadmin",
		AdminNumber: "SUPERADMIN",
		RoleID:      models.RoleSuperadmin,
	})
	if err != nil {
		return err
	}

	a.log.Info("bootstrap superadmin created", "user_id", user.UserID, "email", cfg.BootstrapEmail)
	return nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close releases app resources
func (a *App) Close() {
	if a.repo != nil {
		a.repo.Close()
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.log.Info("server starting", "addr", addr)
	return http.ListenAndServe(addr, a.Router())
}
