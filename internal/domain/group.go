package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a node in the organizational tree. ParentID is nil for roots.
type Group struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id"`
	SpaceID   uuid.UUID  `json:"space_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GroupPoints is the aggregate view of a group's ledger total.
type GroupPoints struct {
	GroupID     uuid.UUID `json:"id"`
	GroupName   string    `json:"name"`
	TotalPoints int       `json:"total_points"`
}
