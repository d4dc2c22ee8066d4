package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type EventRequest struct {
	Name        string     `json:"name" binding:"required"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	EventTypeID uuid.UUID  `json:"event_type_id" binding:"required"`
}

func (req *EventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.EventTypeID, requiredUUID),
	)
	if err != nil {
		return err
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return errors.New("end_date must not be before start_date")
	}

	return nil
}
