package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pointspace/pointspace-api/internal/domain"
	"github.com/pointspace/pointspace-api/internal/repository/dao"
)

var (
	ErrEventTypeNotFound = dao.ErrEventTypeNotFound
	ErrEventNotFound     = dao.ErrEventNotFound
)

type EventTypeDAO interface {
	Insert(ctx context.Context, eventType dao.EventType) (dao.EventType, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.EventType, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.EventType, error)
	Update(ctx context.Context, eventType dao.EventType) (dao.EventType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventTypeRepository struct {
	dao EventTypeDAO
}

func NewEventTypeRepository(dao EventTypeDAO) *EventTypeRepository {
	return &EventTypeRepository{
		dao: dao,
	}
}

func (r *EventTypeRepository) Create(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	daoType, err := r.domainToDAO(eventType)
	if err != nil {
		return domain.EventType{}, err
	}

	created, err := r.dao.Insert(ctx, daoType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.EventType, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventTypeRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.EventType, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	eventTypes := make([]domain.EventType, 0, len(found))
	for _, t := range found {
		eventTypes = append(eventTypes, r.daoToDomain(t))
	}

	return eventTypes, nil
}

func (r *EventTypeRepository) Update(ctx context.Context, eventType domain.EventType) (domain.EventType, error) {
	daoType, err := r.domainToDAO(eventType)
	if err != nil {
		return domain.EventType{}, err
	}

	updated, err := r.dao.Update(ctx, daoType)
	if err != nil {
		return domain.EventType{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventTypeRepository) domainToDAO(t domain.EventType) (dao.EventType, error) {
	var extraPoints *string
	if len(t.ExtraPoints) > 0 {
		raw, err := json.Marshal(t.ExtraPoints)
		if err != nil {
			return dao.EventType{}, fmt.Errorf("json.Marshal -> %w", err)
		}
		s := string(raw)
		extraPoints = &s
	}

	return dao.EventType{
		ID:                t.ID,
		Name:              t.Name,
		Icon:              t.Icon,
		AttendancePoints:  t.AttendancePoints,
		AcceptsActivities: t.AcceptsActivities,
		ExtraPoints:       extraPoints,
		SpaceID:           t.SpaceID,
	}, nil
}

func (r *EventTypeRepository) daoToDomain(t dao.EventType) domain.EventType {
	return domain.EventType{
		ID:                t.ID,
		Name:              t.Name,
		Icon:              t.Icon,
		AttendancePoints:  t.AttendancePoints,
		AcceptsActivities: t.AcceptsActivities,
		ExtraPoints:       parseExtraPoints(t.ExtraPoints),
		SpaceID:           t.SpaceID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// parseExtraPoints fails closed: a malformed stored category list reads as
// "no bonus categories" rather than blocking every read of the event type.
func parseExtraPoints(raw *string) []domain.ExtraPointCategory {
	if raw == nil || *raw == "" {
		return nil
	}

	var categories []domain.ExtraPointCategory
	if err := json.Unmarshal([]byte(*raw), &categories); err != nil {
		return nil
	}

	return categories
}

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Event, error)
	FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]dao.Event, error)
	FindByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		Name:        event.Name,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		EventTypeID: event.EventTypeID,
		SpaceID:     event.SpaceID,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]domain.Event, error) {
	found, err := r.dao.FindBySpaceID(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindBySpaceID -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) FindByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]domain.Event, error) {
	found, err := r.dao.FindByEventTypeID(ctx, spaceID, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventTypeID -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, dao.Event{
		ID:          event.ID,
		Name:        event.Name,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		EventTypeID: event.EventTypeID,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		EventTypeID: e.EventTypeID,
		SpaceID:     e.SpaceID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
