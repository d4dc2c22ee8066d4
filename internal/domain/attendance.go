package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventStudent is the durable attendance record for one (student, event)
// pair: the presence flag, the total computed point delta, and the serialized
// extra-point selection behind it. Saved via an idempotent upsert, never
// duplicated per pair.
type EventStudent struct {
	StudentID   uuid.UUID `json:"student_id"`
	EventID     uuid.UUID `json:"event_id"`
	IsPresent   bool      `json:"is_present"`
	Points      int       `json:"points"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudentTransaction is one ledger row. EventID is nil for manual
// deposits/withdrawals; event-tied rows are replaced when attendance for the
// event is resaved.
type StudentTransaction struct {
	ID        uuid.UUID  `json:"id"`
	StudentID uuid.UUID  `json:"student_id"`
	Points    int        `json:"points"`
	Comment   *string    `json:"comment"`
	EventID   *uuid.UUID `json:"event_id"`
	ProfileID uuid.UUID  `json:"profile_id"`
	CreatedAt time.Time  `json:"created_at"`
}
