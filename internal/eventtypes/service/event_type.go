package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	eventtypeserrors "eventdesk/internal/eventtypes/errors"
	"eventdesk/internal/eventtypes/repository"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/model"
	"eventdesk/pkg/sanitizer"
)

type EventTypeService interface {
	Create(ctx context.Context, eventType *model.EventType) error
	GetByID(ctx context.Context, id string) (*model.EventType, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*model.EventType, error)
	Update(ctx context.Context, id string, updates *model.EventTypeUpdate) error
	Delete(ctx context.Context, id string) error
}

type eventTypeService struct {
	repo     repository.EventTypeRepository
	validate *validator.Validate
	cfg      *config.Config
}

func NewEventTypeService(repo repository.EventTypeRepository, cfg *config.Config) EventTypeService {
	return &eventTypeService{
		repo:     repo,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *eventTypeService) Create(ctx context.Context, eventType *model.EventType) error {
	eventType.ID = ""
	eventType.Name = sanitizer.NormalizeName(eventType.Name)
	eventType.Description = sanitizer.TrimAndNormalize(eventType.Description)
	eventType.Active = true

	if err := s.validate.Struct(eventType); err != nil {
		s.cfg.Log.Warn("Event type validation failed", "error", err)
		return apperrors.Validation("Event type validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, eventType); err != nil {
		if errors.Is(err, eventtypeserrors.ErrDuplicateName) {
			return apperrors.Conflict("An event type with this name already exists")
		}
		s.cfg.Log.Error("Failed to create event type", "error", err)
		return apperrors.Internal("Failed to create event type", err)
	}

	s.cfg.Log.Info("Event type created successfully", "id", eventType.ID, "name", eventType.Name)
	return nil
}

func (s *eventTypeService) GetByID(ctx context.Context, id string) (*model.EventType, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Event type ID cannot be empty")
	}

	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventtypeserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Event type", id)
		}
		if errors.Is(err, eventtypeserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid event type ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve event type", err)
	}

	return eventType, nil
}

func (s *eventTypeService) GetAll(ctx context.Context, activeOnly bool) ([]*model.EventType, error) {
	eventTypes, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		s.cfg.Log.Error("Failed to list event types", "error", err)
		return nil, apperrors.Internal("Failed to retrieve event types", err)
	}

	return eventTypes, nil
}

func (s *eventTypeService) Update(ctx context.Context, id string, updates *model.EventTypeUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Event type ID cannot be empty")
	}
	if updates.IsEmpty() {
		return apperrors.InvalidInput("Update must contain at least one field")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	merged := *existing
	if updates.Name != nil {
		merged.Name = sanitizer.NormalizeName(*updates.Name)
	}
	if updates.Description != nil {
		merged.Description = sanitizer.TrimAndNormalize(*updates.Description)
	}
	if updates.BasePrice != nil {
		merged.BasePrice = *updates.BasePrice
	}
	if updates.Active != nil {
		merged.Active = *updates.Active
	}

	if err := s.validate.Struct(&merged); err != nil {
		return apperrors.Validation("Event type validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, &merged); err != nil {
		if errors.Is(err, eventtypeserrors.ErrDuplicateName) {
			return apperrors.Conflict("An event type with this name already exists")
		}
		s.cfg.Log.Error("Failed to update event type", "id", id, "error", err)
		return apperrors.Internal("Failed to update event type", err)
	}

	s.cfg.Log.Info("Event type updated successfully", "id", id)
	return nil
}

func (s *eventTypeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Event type ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventtypeserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Event type", id)
		}
		if errors.Is(err, eventtypeserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid event type ID format")
		}
		return apperrors.Internal("Failed to delete event type", err)
	}

	s.cfg.Log.Info("Event type deleted successfully", "id", id)
	return nil
}
