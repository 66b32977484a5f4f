package handlers

import (
	"time"

	"github.com/auxilium-app/auxilium/internal/auth"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/services"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Users  services.UserServicer
	Events services.EventServicer
	Points services.PointsServicer
	Auth   *auth.Manager
	Log    logger.Logger
}

// New creates a new Handlers instance with all dependencies
func New(
	users services.UserServicer,
	events services.EventServicer,
	points services.PointsServicer,
	authManager *auth.Manager,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:  users,
		Events: events,
		Points: points,
		Auth:   authManager,
		Log:    log,
	}
}

// NewForTesting creates a Handlers instance with a fixed signing secret
func NewForTesting(
	users services.UserServicer,
	events services.EventServicer,
	points services.PointsServicer,
	log logger.Logger,
) *Handlers {
	testAuth := auth.New("test-secret", "test-refresh-secret", 15*time.Minute, time.Hour, false)
	return &Handlers{
		Users:  users,
		Events: events,
		Points: points,
		Auth:   testAuth,
		Log:    log,
	}
}
