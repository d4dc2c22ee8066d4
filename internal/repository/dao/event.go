package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrEventNotFound     = errors.New("event not found")
)

type EventType struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name              string `gorm:"not null"`
	Icon              string
	AttendancePoints  int `gorm:"not null;default:0"`
	AcceptsActivities bool
	// ExtraPoints holds the serialized category list, a JSON array of
	// {name, points, max_points} objects.
	ExtraPoints *string
	SpaceID     uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (EventType) TableName() string {
	return "event_types"
}

type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name        string `gorm:"not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	EventTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	SpaceID     uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventTypeDAO struct {
	db *gorm.DB
}

func NewEventTypeDAO(db *gorm.DB) *EventTypeDAO {
	return &EventTypeDAO{
		db: db,
	}
}

func (d *EventTypeDAO) Insert(ctx context.Context, eventType EventType) (EventType, error) {
	if eventType.ID == uuid.Nil {
		eventType.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&eventType)
	if result.Error != nil {
		return EventType{}, result.Error
	}

	return eventType, nil
}

func (d *EventTypeDAO) FindByID(ctx context.Context, id uuid.UUID) (EventType, error) {
	var eventType EventType

	result := d.db.WithContext(ctx).First(&eventType, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventType{}, ErrEventTypeNotFound
		}

		return EventType{}, result.Error
	}

	return eventType, nil
}

func (d *EventTypeDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]EventType, error) {
	var eventTypes []EventType

	result := d.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("name").Find(&eventTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return eventTypes, nil
}

func (d *EventTypeDAO) Update(ctx context.Context, eventType EventType) (EventType, error) {
	result := d.db.WithContext(ctx).
		Model(&EventType{}).
		Where("id = ?", eventType.ID).
		Updates(map[string]interface{}{
			"name":               eventType.Name,
			"icon":               eventType.Icon,
			"attendance_points":  eventType.AttendancePoints,
			"accepts_activities": eventType.AcceptsActivities,
			"extra_points":       eventType.ExtraPoints,
		})
	if result.Error != nil {
		return EventType{}, result.Error
	}
	if result.RowsAffected == 0 {
		return EventType{}, ErrEventTypeNotFound
	}

	return d.FindByID(ctx, eventType.ID)
}

func (d *EventTypeDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&EventType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventTypeNotFound
	}

	return nil
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uuid.UUID) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Where("space_id = ?", spaceID).Order("created_at").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByEventTypeID(ctx context.Context, spaceID, eventTypeID uuid.UUID) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("space_id = ? AND event_type_id = ?", spaceID, eventTypeID).
		Order("created_at").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":          event.Name,
			"start_date":    event.StartDate,
			"end_date":      event.EndDate,
			"event_type_id": event.EventTypeID,
		})
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
