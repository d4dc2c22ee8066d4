package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Event, error)
	FindByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventService struct {
	repo          EventRepository
	eventTypeRepo EventTypeRepository
}

func NewEventService(repo EventRepository, eventTypeRepo EventTypeRepository) *EventService {
	return &EventService{
		repo:          repo,
		eventTypeRepo: eventTypeRepo,
	}
}

// GetEvents lists a space's events. With activeOnly set, only events whose
// date range covers now are returned; events without dates always qualify.
func (s *EventService) GetEvents(ctx context.Context, spaceID uuid.UUID, activeOnly bool) ([]domain.Event, error) {
	events, err := s.repo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
	}

	if !activeOnly {
		return events, nil
	}

	now := time.Now()
	active := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.IsActiveAt(now) {
			active = append(active, e)
		}
	}

	return active, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	eventType, err := s.eventTypeRepo.FindByID(ctx, event.EventTypeID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.eventTypeRepo.FindByID -> %w", err)
	}
	if eventType.SpaceID != event.SpaceID {
		return domain.Event{}, ErrEventTypeNotFound
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	current, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != event.SpaceID {
		return domain.Event{}, ErrEventNotFound
	}

	if event.EventTypeID != current.EventTypeID {
		eventType, err := s.eventTypeRepo.FindByID(ctx, event.EventTypeID)
		if err != nil {
			return domain.Event{}, fmt.Errorf("s.eventTypeRepo.FindByID -> %w", err)
		}
		if eventType.SpaceID != event.SpaceID {
			return domain.Event{}, ErrEventTypeNotFound
		}
	}

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, spaceID, id uuid.UUID) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if event.SpaceID != spaceID {
		return ErrEventNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
