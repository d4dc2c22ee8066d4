package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	DOB       string     `json:"dob"`
	Gender    string     `json:"gender"`
	ImagePath string     `json:"image_path"`
	Embedding string     `json:"-"` // Opaque blob consumed by the recognition feature.
	GroupID   *uuid.UUID `json:"group_id"`
	MentorID  *uuid.UUID `json:"mentor_id"`
	SpaceID   uuid.UUID  `json:"space_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Missing is a dated absence note attached to a student, outside the
// event/points flow.
type Missing struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes"`
	Persons   string    `json:"persons"`
	SpaceID   uuid.UUID `json:"space_id"`
	CreatedAt time.Time `json:"created_at"`
}
