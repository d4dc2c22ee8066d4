package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExtraPointCategory is a named bonus dimension of an event type, e.g.
// "homework" worth 2 points per unit, at most 3 units.
type ExtraPointCategory struct {
	Name       string `json:"name"`
	UnitPoints int    `json:"points"`
	MaxUnits   int    `json:"max_points"`
}

// EventType is the scoring template for events of one kind.
type EventType struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	Icon              string               `json:"icon"`
	AttendancePoints  int                  `json:"attendance_points"`
	AcceptsActivities bool                 `json:"accepts_activities"`
	ExtraPoints       []ExtraPointCategory `json:"extra_points"`
	SpaceID           uuid.UUID            `json:"space_id"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// FindExtraPointCategory looks up a bonus category by name. The second return
// is false for stale names left behind by a category edit.
func (t EventType) FindExtraPointCategory(name string) (ExtraPointCategory, bool) {
	for _, c := range t.ExtraPoints {
		if c.Name == name {
			return c, true
		}
	}

	return ExtraPointCategory{}, false
}

type Event struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	EventTypeID uuid.UUID  `json:"event_type_id"`
	SpaceID     uuid.UUID  `json:"space_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsActiveAt reports whether the event accepts attendance at t. An event
// without dates is always active; a single-sided range is open on the
// missing side.
func (e Event) IsActiveAt(t time.Time) bool {
	if e.StartDate != nil && t.Before(*e.StartDate) {
		return false
	}
	if e.EndDate != nil && t.After(*e.EndDate) {
		return false
	}

	return true
}
