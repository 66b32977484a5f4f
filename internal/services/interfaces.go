package services

import (
	"context"

	"github.com/auxilium-app/auxilium/internal/models"
)

// UserServicer defines the user operations handlers depend on
type UserServicer interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Create(ctx context.Context, input CreateUserInput) (*models.User, error)
	Get(ctx context.Context, userID string) (*models.User, error)
	GetWithProfile(ctx context.Context, userID string) (*UserAccount, error)
}

// EventServicer defines the event operations handlers depend on
type EventServicer interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, eventID string) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, eventID string) error
	Restore(ctx context.Context, eventID string) error
	HardDelete(ctx context.Context, eventID string) error
	Reports(ctx context.Context, eventID string) ([]models.EventReport, error)
	Report(ctx context.Context, reportID string) (*ReportDetail, error)
}

// PointsServicer defines the reconciliation operation handlers depend on
type PointsServicer interface {
	GeneratePointsSheet(ctx context.Context, eventID, userID string, docs SourceDocs) (*PointsSheet, error)
}

// Interface conformance checks
var (
	_ UserServicer   = (*UserService)(nil)
	_ EventServicer  = (*EventService)(nil)
	_ PointsServicer = (*PointsService)(nil)
)
