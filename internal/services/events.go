package services

import (
	"context"
	stderrors "errors"

	"github.com/auxilium-app/auxilium/internal/errors"
	"github.com/auxilium-app/auxilium/internal/logger"
	"github.com/auxilium-app/auxilium/internal/models"
	"github.com/auxilium-app/auxilium/internal/repository"
)

// EventServiceRepository defines the repository methods needed by EventService
type EventServiceRepository interface {
	repository.EventRepository
	repository.ReportRepository
}

// EventService handles event lifecycle business logic
type EventService struct {
	log  logger.Logger
	repo EventServiceRepository
}

// NewEventService creates a new EventService
func NewEventService(log logger.Logger, repo EventServiceRepository) *EventService {
	return &EventService{log: log, repo: repo}
}

// ReportDetail bundles a report with its participation records
type ReportDetail struct {
	Report        *models.EventReport    `json:"report"`
	Participation []models.Participation `json:"participation"`
}

// Create validates and stores a new event
func (s *EventService) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	s.log.Info("event created", "event_id", event.EventID, "name", event.Name)
	return event, nil
}

// List returns all events
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// Get returns one event by ID
func (s *EventService) Get(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("event %s not found", eventID)
		}
		return nil, err
	}
	return event, nil
}

// Update replaces the mutable fields of an event
func (s *EventService) Update(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("event %s not found", event.EventID)
		}
		return nil, err
	}
	return s.Get(ctx, event.EventID)
}

// Delete soft-deletes an event; its reports remain readable
func (s *EventService) Delete(ctx context.Context, eventID string) error {
	return s.setStatus(ctx, eventID, models.StatusDeleted)
}

// Restore brings a soft-deleted event back
func (s *EventService) Restore(ctx context.Context, eventID string) error {
	return s.setStatus(ctx, eventID, models.StatusActive)
}

func (s *EventService) setStatus(ctx context.Context, eventID string, statusID int) error {
	if err := s.repo.SetEventStatus(ctx, eventID, statusID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundf("event %s not found", eventID)
		}
		return err
	}
	return nil
}

// HardDelete permanently removes an event and everything under it
func (s *EventService) HardDelete(ctx context.Context, eventID string) error {
	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return errors.NotFoundf("event %s not found", eventID)
		}
		return err
	}
	s.log.Info("event hard-deleted", "event_id", eventID)
	return nil
}

// Reports lists all reports generated for an event
func (s *EventService) Reports(ctx context.Context, eventID string) ([]models.EventReport, error) {
	if _, err := s.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.repo.ListReportsByEvent(ctx, eventID)
}

// Report returns one report with its participation records
func (s *EventService) Report(ctx context.Context, reportID string) (*ReportDetail, error) {
	report, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("report %s not found", reportID)
		}
		return nil, err
	}
	participation, err := s.repo.ListParticipationByReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return &ReportDetail{Report: report, Participation: participation}, nil
}

func validateEvent(event *models.Event) error {
	if event.Name == "" {
		return errors.Validation("event name is required")
	}
	if event.EventTypeID == 0 {
		return errors.Validation("event type is required")
	}
	if event.StartDate != nil && event.EndDate != nil && event.EndDate.Before(*event.StartDate) {
		return errors.Validation("event end date is before its start date")
	}
	return nil
}
