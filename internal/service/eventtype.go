package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository"
)

var ErrEventTypeNotFound = repository.ErrEventTypeNotFound

type EventTypeRepository interface {
	Create(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.EventType, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.EventType, error)
	Update(ctx context.Context, eventType domain.EventType) (domain.EventType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventTypeService struct {
	repo EventTypeRepository
}

func NewEventTypeService(repo EventTypeRepository) *EventTypeService {
	return &EventTypeService{
		repo: repo,
	}
}

func (s *EventTypeService) GetEventTypes(ctx context.Context, spaceID uuid.UUID) ([]domain.EventType, error) {
	eventTypes, err := s.repo.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBySpaceID -> %w", err)
	}

	return eventTypes, nil
}

func (s *EventTypeService) GetEventType(ctx context.Context, id uuid.UUID) (domain.EventType, error) {
	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return eventType, nil
}

func (s *EventTypeService) CreateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	created, err := s.repo.Create(ctx, eventType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventTypeService) UpdateEventType(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	current, err := s.repo.FindByID(ctx, eventType.ID)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if current.SpaceID != eventType.SpaceID {
		return domain.EventType{}, ErrEventTypeNotFound
	}

	updated, err := s.repo.Update(ctx, eventType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventTypeService) DeleteEventType(ctx context.Context, spaceID, id uuid.UUID) error {
	eventType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if eventType.SpaceID != spaceID {
		return ErrEventTypeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
