package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an optional scored exercise attached to an event, e.g. a
// team game during a camp day.
type Activity struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id"`
	SpaceID     uuid.UUID  `json:"space_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ActivityGroup is one group's independently settable score for one
// activity. Pairs that were never scored read as 0.
type ActivityGroup struct {
	ActivityID uuid.UUID `json:"activity_id"`
	GroupID    uuid.UUID `json:"group_id"`
	Points     int       `json:"points"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ActivityGroupPoints is the listing view joining in the names.
type ActivityGroupPoints struct {
	ActivityID   uuid.UUID `json:"activity_id"`
	ActivityName string    `json:"activity_name"`
	GroupID      uuid.UUID `json:"group_id"`
	GroupName    string    `json:"group_name"`
	Points       int       `json:"points"`
}

// GroupTransaction is a ledger row on a group's account; activity-tied rows
// are replaced when the (activity, group) score is reset.
type GroupTransaction struct {
	ID         uuid.UUID  `json:"id"`
	GroupID    uuid.UUID  `json:"group_id"`
	ActivityID *uuid.UUID `json:"activity_id"`
	Points     int        `json:"points"`
	Comment    *string    `json:"comment"`
	ProfileID  uuid.UUID  `json:"profile_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
