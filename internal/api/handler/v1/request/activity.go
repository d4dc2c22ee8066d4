package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type ActivityRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id"`
}

func (req *ActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type SetActivityPointsRequest struct {
	ActivityID uuid.UUID `json:"activity_id" binding:"required"`
	GroupID    uuid.UUID `json:"group_id" binding:"required"`
	Points     int       `json:"points"`
	Comment    *string   `json:"comment"`
}

func (req *SetActivityPointsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, requiredUUID),
		validation.Field(&req.GroupID, requiredUUID),
	)
}
